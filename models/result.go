package models

import (
	"time"
)

// Result is a single workout submission. Rows are immutable once written.
type Result struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Exercise  string    `gorm:"size:50;not null" json:"exercise"`
	Reps      int       `gorm:"not null" json:"reps"`
	VideoURL  string    `gorm:"size:255;not null" json:"video_url"`
	VideoHash string    `gorm:"size:64;not null;index" json:"video_hash"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}
