package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan representa un plan de suscripción con sus cupos por tipo de recurso.
// Las cuatro métricas viven como campos numéricos del plan; la antigua tabla
// estática por nombre de plan sobrevive solo como semilla de migración
// (ver cmd/seed_plans).
type Plan struct {
	ID           string
	Name         string // Básico, Estándar, Premium...
	MaxBranches  int
	MaxUsers     int
	MaxProducts  int
	MaxSuppliers int
	Price        decimal.Decimal // CLP, sin decimales
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
