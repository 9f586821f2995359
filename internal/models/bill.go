package models

import "time"

// Bill represents a recurring monthly obligation. DueDay is the nominal
// day-of-month (1-31); months shorter than DueDay clamp to their last day.
type Bill struct {
	Base
	Name     string  `gorm:"not null" json:"name"`
	Category string  `gorm:"not null;default:Other" json:"category"`
	Amount   float64 `gorm:"not null" json:"amount"`
	DueDay   int     `gorm:"not null" json:"due_day"`
	IsActive bool    `gorm:"default:true" json:"is_active"`

	// PaidThrough, when set, always equals a projected due date. A bill
	// whose PaidThrough is at or past its next due date is settled for
	// the current cycle.
	PaidThrough *time.Time `json:"paid_through,omitempty"`
}
