package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Age          int       `json:"age"`
	Location     string    `json:"location"`
	Sport        string    `json:"sport"`
	Bio          string    `gorm:"type:text" json:"bio"`
	AvatarURL    string    `gorm:"size:255" json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`

	Results      []Result      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Achievements []Achievement `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
