package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación de PlanRepository sobre PostgreSQL (usable con pool o tx).
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador de planes. Pasar pool o tx (Querier).
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

const planColumns = `id, name, max_branches, max_users, max_products, max_suppliers, price, created_at, updated_at`

// Create persiste un nuevo plan.
func (r *PlanRepo) Create(plan *entity.Plan) error {
	query := `
		INSERT INTO plans (` + planColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		plan.ID, plan.Name, plan.MaxBranches, plan.MaxUsers, plan.MaxProducts,
		plan.MaxSuppliers, plan.Price, plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

// GetByID obtiene un plan por ID.
func (r *PlanRepo) GetByID(id string) (*entity.Plan, error) {
	var p entity.Plan
	err := r.q.QueryRow(context.Background(),
		`SELECT `+planColumns+` FROM plans WHERE id = $1`, id).Scan(
		&p.ID, &p.Name, &p.MaxBranches, &p.MaxUsers, &p.MaxProducts,
		&p.MaxSuppliers, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return &p, nil
}

// Update actualiza un plan. Los nuevos límites rigen de inmediato para todas
// las empresas suscritas.
func (r *PlanRepo) Update(plan *entity.Plan) error {
	query := `
		UPDATE plans SET name = $2, max_branches = $3, max_users = $4, max_products = $5, max_suppliers = $6, price = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		plan.ID, plan.Name, plan.MaxBranches, plan.MaxUsers, plan.MaxProducts,
		plan.MaxSuppliers, plan.Price, plan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	return nil
}

// List lista todos los planes ordenados por precio ascendente.
func (r *PlanRepo) List() ([]*entity.Plan, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+planColumns+` FROM plans ORDER BY price ASC`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()
	var list []*entity.Plan
	for rows.Next() {
		var p entity.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.MaxBranches, &p.MaxUsers, &p.MaxProducts,
			&p.MaxSuppliers, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un plan por ID.
func (r *PlanRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}
