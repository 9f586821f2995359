package models

import "time"

// Paycheck represents a single received (or expected) payment.
type Paycheck struct {
	Base
	Source  string    `gorm:"not null" json:"source"`
	Amount  float64   `gorm:"not null" json:"amount"`
	PayDate time.Time `gorm:"not null" json:"pay_date"`
}
