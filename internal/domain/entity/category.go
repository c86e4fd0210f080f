package entity

import "time"

// Category agrupa productos dentro de una empresa (opcional en Product).
type Category struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
