package models

import "time"

// PaySchedule anchors the bi-weekly pay cycle. Rows are append-only: saving
// a new anchor inserts a row and the most recently inserted one is active,
// leaving the older rows as an audit trail.
type PaySchedule struct {
	Base
	AnchorPayday time.Time `gorm:"not null" json:"anchor_payday"`
}
