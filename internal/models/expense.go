package models

import "time"

// Expense represents a discrete spend imported through the CSV pipeline.
//
// Fingerprint is a pure function of (spent_date, amount, description),
// computed once at commit time and never recomputed. IsDuplicate is true iff
// a row with the same fingerprint already existed in storage when this row
// was inserted; DuplicateOfID then points at the earliest such row.
type Expense struct {
	Base
	SpentDate   time.Time `gorm:"not null" json:"spent_date"`
	Description string    `gorm:"not null" json:"description"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    string    `gorm:"not null;default:Uncategorized" json:"category"`

	Fingerprint   string `gorm:"size:64;not null;index" json:"fingerprint"`
	IsDuplicate   bool   `gorm:"default:false" json:"is_duplicate"`
	DuplicateOfID *uint  `json:"duplicate_of_id,omitempty"`
}
