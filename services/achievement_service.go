package services

import (
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Shivam-2025/KhelSaksham/models"
)

type AchievementService struct{ db *gorm.DB }

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{db: db}
}

type AchievementStatus struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Points      int        `json:"points"`
	Earned      bool       `json:"earned"`
	Progress    float64    `json:"progress"`
	EarnedAt    *time.Time `json:"earned_at"`
}

type AchievementReport struct {
	UserID        uint                `json:"user_id"`
	TotalReps     int                 `json:"total_reps"`
	TotalSessions int                 `json:"total_sessions"`
	Achievements  []AchievementStatus `json:"achievements"`
}

// achievementInputs are the aggregates the catalog is evaluated over.
// Exercise names are compared lowercase throughout.
type achievementInputs struct {
	TotalReps         int
	ExerciseTotals    map[string]int
	DistinctExercises []string
	TotalSessions     int
	PersistedTitles   map[string]bool
}

type catalogEntry struct {
	Title       string
	Description string
	Points      int
	Earned      bool
	Progress    float64
}

func thresholdEntry(title, description string, points, total, threshold int) catalogEntry {
	return catalogEntry{
		Title:       title,
		Description: description,
		Points:      points,
		Earned:      total >= threshold,
		Progress:    minFloat(1.0, float64(total)/float64(threshold)),
	}
}

// evaluateCatalog computes the fixed rule set. Earned here is the freshly
// computed flag; the persisted state wins in the final response.
func evaluateCatalog(in achievementInputs) []catalogEntry {
	catalog := make([]catalogEntry, 0, 7)

	// Newcomer is only computable before the first session; once persisted
	// it stays earned.
	newcomer := in.TotalSessions == 0 || in.PersistedTitles["Newcomer"]
	catalog = append(catalog, catalogEntry{
		Title:       "Newcomer",
		Description: "Welcome to KhelSaksham!",
		Points:      20,
		Earned:      newcomer,
		Progress:    boolProgress(newcomer),
	})

	firstRecording := in.TotalSessions >= 1 || in.PersistedTitles["First Recording"]
	catalog = append(catalog, catalogEntry{
		Title:       "First Recording",
		Description: "Completed your first workout recording",
		Points:      50,
		Earned:      firstRecording,
		Progress:    boolProgress(firstRecording),
	})

	// 10 in Each is measured against every exercise anyone has logged.
	tenEachEarned := false
	tenEachProgress := 0.0
	if len(in.DistinctExercises) > 0 {
		met := 0
		for _, ex := range in.DistinctExercises {
			if in.ExerciseTotals[ex] >= 10 {
				met++
			}
		}
		tenEachProgress = float64(met) / float64(len(in.DistinctExercises))
		tenEachEarned = met == len(in.DistinctExercises)
	}
	catalog = append(catalog, catalogEntry{
		Title:       "10 in Each",
		Description: "Complete 10 reps in every exercise",
		Points:      120,
		Earned:      tenEachEarned,
		Progress:    minFloat(1.0, tenEachProgress),
	})

	catalog = append(catalog,
		thresholdEntry("Century Club", "Completed 100 total reps", 100, in.TotalReps, 100),
		thresholdEntry("Half K Hero", "Completed 500 total reps", 200, in.TotalReps, 500),
		thresholdEntry("K Legend", "Completed 1000 total reps", 500, in.TotalReps, 1000),
	)

	jumpCount := 0
	for name, total := range in.ExerciseTotals {
		if strings.Contains(name, "jump") {
			jumpCount += total
		}
	}
	catalog = append(catalog, thresholdEntry("Jump King", "Achieved 50 total jumps", 120, jumpCount, 50))

	return catalog
}

// Evaluate computes the catalog for the user, persists any newly earned
// titles, and reports earned state from the persisted rows.
func (s *AchievementService) Evaluate(userID uint) (*AchievementReport, error) {
	in, err := s.loadInputs(userID)
	if err != nil {
		return nil, err
	}
	catalog := evaluateCatalog(*in)

	var newlyEarned []models.Achievement
	now := time.Now().UTC()
	for _, entry := range catalog {
		if entry.Earned && !in.PersistedTitles[entry.Title] {
			newlyEarned = append(newlyEarned, models.Achievement{
				UserID:      userID,
				Title:       entry.Title,
				Description: entry.Description,
				EarnedAt:    now,
			})
		}
	}

	if len(newlyEarned) > 0 {
		// A concurrent request may have raced us to the same title; the
		// unique index turns the loser's insert into a no-op.
		err := s.db.
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&newlyEarned).Error
		if err != nil {
			return nil, Wrap(KindUpstream, "Achievement save failed", err)
		}
	}

	persisted, err := s.persistedFor(userID)
	if err != nil {
		return nil, err
	}

	statuses := make([]AchievementStatus, 0, len(catalog))
	for _, entry := range catalog {
		status := AchievementStatus{
			Title:       entry.Title,
			Description: entry.Description,
			Points:      entry.Points,
			Earned:      false,
			Progress:    entry.Progress,
		}
		if row, ok := persisted[entry.Title]; ok {
			status.Earned = true
			earnedAt := row.EarnedAt
			status.EarnedAt = &earnedAt
		}
		statuses = append(statuses, status)
	}

	return &AchievementReport{
		UserID:        userID,
		TotalReps:     in.TotalReps,
		TotalSessions: in.TotalSessions,
		Achievements:  statuses,
	}, nil
}

func (s *AchievementService) loadInputs(userID uint) (*achievementInputs, error) {
	in := achievementInputs{
		ExerciseTotals:  map[string]int{},
		PersistedTitles: map[string]bool{},
	}

	err := s.db.Model(&models.Result{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(reps), 0)").
		Scan(&in.TotalReps).Error
	if err != nil {
		return nil, Wrap(KindUpstream, "Achievements fetch failed", err)
	}

	var perExercise []struct {
		Exercise string
		Total    int
	}
	err = s.db.Model(&models.Result{}).
		Select("exercise, COALESCE(SUM(reps), 0) AS total").
		Where("user_id = ?", userID).
		Group("exercise").
		Scan(&perExercise).Error
	if err != nil {
		return nil, Wrap(KindUpstream, "Achievements fetch failed", err)
	}
	for _, row := range perExercise {
		in.ExerciseTotals[strings.ToLower(row.Exercise)] += row.Total
	}

	var distinct []string
	err = s.db.Model(&models.Result{}).
		Distinct("exercise").
		Pluck("exercise", &distinct).Error
	if err != nil {
		return nil, Wrap(KindUpstream, "Achievements fetch failed", err)
	}
	for _, ex := range distinct {
		in.DistinctExercises = append(in.DistinctExercises, strings.ToLower(ex))
	}

	var sessions int64
	err = s.db.Model(&models.Result{}).
		Where("user_id = ?", userID).
		Count(&sessions).Error
	if err != nil {
		return nil, Wrap(KindUpstream, "Achievements fetch failed", err)
	}
	in.TotalSessions = int(sessions)

	persisted, err := s.persistedFor(userID)
	if err != nil {
		return nil, err
	}
	for title := range persisted {
		in.PersistedTitles[title] = true
	}
	return &in, nil
}

func (s *AchievementService) persistedFor(userID uint) (map[string]models.Achievement, error) {
	var rows []models.Achievement
	err := s.db.Where("user_id = ?", userID).Find(&rows).Error
	if err != nil {
		return nil, Wrap(KindUpstream, "Achievements fetch failed", err)
	}
	persisted := make(map[string]models.Achievement, len(rows))
	for _, row := range rows {
		persisted[row.Title] = row
	}
	return persisted, nil
}

func boolProgress(earned bool) float64 {
	if earned {
		return 1.0
	}
	return 0.0
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
