package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Shivam-2025/KhelSaksham/models"
)

type ResultService struct{ db *gorm.DB }

func NewResultService(db *gorm.DB) *ResultService { return &ResultService{db: db} }

func (s *ResultService) Create(userID uint, exercise string, reps int, videoURL, videoHash string, timestamp time.Time) error {
	if reps <= 0 {
		return E(KindValidation, "Reps must be greater than 0")
	}
	if strings.TrimSpace(exercise) == "" {
		return E(KindValidation, "Exercise name required")
	}
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	result := models.Result{
		UserID:    userID,
		Exercise:  exercise,
		Reps:      reps,
		VideoURL:  videoURL,
		VideoHash: videoHash,
		Timestamp: timestamp,
	}
	if err := s.db.Create(&result).Error; err != nil {
		return Wrap(KindUpstream, "Result save failed", err)
	}
	return nil
}

type HistoryItem struct {
	Exercise  string    `json:"exercise"`
	Reps      int       `json:"reps"`
	Timestamp time.Time `json:"timestamp"`
	VideoURL  string    `json:"video_url"`
}

func (s *ResultService) History(userID uint) ([]HistoryItem, error) {
	var items []HistoryItem
	err := s.db.Model(&models.Result{}).
		Select("exercise, reps, timestamp, video_url").
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Scan(&items).Error
	if err != nil {
		return nil, Wrap(KindUpstream, "History fetch failed", err)
	}
	if items == nil {
		items = []HistoryItem{}
	}
	return items, nil
}
