package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/Shivam-2025/KhelSaksham/models"
)

// StatsService serves the read-only dashboard aggregates.
type StatsService struct{ db *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

type ActivityItem struct {
	Exercise  string    `json:"exercise"`
	Reps      int       `json:"reps"`
	Timestamp time.Time `json:"timestamp"`
}

type TrendPoint struct {
	Day  string `json:"day"`
	Reps int    `json:"reps"`
}

type Dashboard struct {
	TotalReps      int            `json:"total_reps"`
	BestWorkout    int            `json:"best_workout"`
	RecentActivity []ActivityItem `json:"recent_activity"`
	WeeklyTrend    []TrendPoint   `json:"weekly_trend"`
}

func (s *StatsService) Dashboard(userID uint) (*Dashboard, error) {
	dash := Dashboard{
		RecentActivity: []ActivityItem{},
		WeeklyTrend:    []TrendPoint{},
	}

	err := s.db.Model(&models.Result{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(reps), 0)").
		Scan(&dash.TotalReps).Error
	if err != nil {
		return nil, Wrap(KindUpstream, "Dashboard fetch failed", err)
	}

	err = s.db.Model(&models.Result{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(reps), 0)").
		Scan(&dash.BestWorkout).Error
	if err != nil {
		return nil, Wrap(KindUpstream, "Dashboard fetch failed", err)
	}

	err = s.db.Model(&models.Result{}).
		Select("exercise, reps, timestamp").
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(5).
		Scan(&dash.RecentActivity).Error
	if err != nil {
		return nil, Wrap(KindUpstream, "Dashboard fetch failed", err)
	}

	var weekly []struct {
		Day  time.Time
		Reps int
	}
	err = s.db.Raw(`
		SELECT DATE(timestamp) AS day, SUM(reps) AS reps
		FROM results
		WHERE user_id = ? AND timestamp >= CURRENT_DATE - INTERVAL '6 day'
		GROUP BY day ORDER BY day`, userID).
		Scan(&weekly).Error
	if err != nil {
		return nil, Wrap(KindUpstream, "Dashboard fetch failed", err)
	}
	for _, row := range weekly {
		dash.WeeklyTrend = append(dash.WeeklyTrend, TrendPoint{
			Day:  row.Day.Format("2006-01-02"),
			Reps: row.Reps,
		})
	}

	if dash.RecentActivity == nil {
		dash.RecentActivity = []ActivityItem{}
	}
	return &dash, nil
}
