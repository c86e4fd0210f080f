package entity

import "time"

// Subscription vincula una empresa con su plan vigente. Una fila por empresa:
// suscribirse de nuevo reemplaza el plan y reinicia la ventana de 30 días.
// Invariante de datos: EndDate >= StartDate (CHECK en la tabla).
// El flag IsActive es la única autoridad de vigencia; EndDate es informativo.
type Subscription struct {
	ID        string
	CompanyID string
	PlanID    string
	StartDate time.Time
	EndDate   time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
