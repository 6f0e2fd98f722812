package models

import (
	"time"
)

// Achievement is awarded at most once per (user, title); the composite
// unique index is what makes the lazy award path idempotent under races.
type Achievement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:uq_user_achievement" json:"user_id"`
	Title       string    `gorm:"size:100;not null;uniqueIndex:uq_user_achievement" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	EarnedAt    time.Time `gorm:"not null" json:"earned_at"`
}
