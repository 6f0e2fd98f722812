package services

import (
	"gorm.io/gorm"
)

type LeaderboardService struct{ db *gorm.DB }

func NewLeaderboardService(db *gorm.DB) *LeaderboardService { return &LeaderboardService{db: db} }

type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	UserID        uint   `json:"user_id"`
	Username      string `json:"username"`
	AvatarURL     string `json:"avatar_url"`
	Location      string `json:"location"`
	Sport         string `json:"sport"`
	Best          int    `json:"best"`
	IsCurrentUser bool   `json:"is_current_user"`
}

type Leaderboard struct {
	Top         []LeaderboardEntry `json:"top"`
	CurrentUser *LeaderboardEntry  `json:"current_user"`
}

type leaderboardRow struct {
	ID        uint
	Username  string
	AvatarURL string
	Location  string
	Sport     string
	Best      int
}

const leaderboardTopSize = 20

// Get returns the top entries plus the caller's own entry wherever it
// lands. The exercise filter lives inside the join so users with no
// results still appear with best=0.
func (s *LeaderboardService) Get(currentUserID uint, exercise string) (*Leaderboard, error) {
	query := `
		SELECT u.id, u.username, u.avatar_url, u.location, u.sport, COALESCE(MAX(r.reps), 0) AS best
		FROM users u
		LEFT JOIN results r ON r.user_id = u.id`
	var args []interface{}
	if exercise != "" {
		query += " AND r.exercise = ?"
		args = append(args, exercise)
	}
	query += `
		GROUP BY u.id, u.username, u.avatar_url, u.location, u.sport
		ORDER BY best DESC`

	var rows []leaderboardRow
	if err := s.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, Wrap(KindUpstream, "Leaderboard fetch failed", err)
	}

	entries, current := assignRanks(rows, currentUserID)
	top := entries
	if len(top) > leaderboardTopSize {
		top = top[:leaderboardTopSize]
	}
	return &Leaderboard{Top: top, CurrentUser: current}, nil
}

// assignRanks walks rows already sorted by best descending. The rank only
// advances on a strict decrease, so ties share a rank and the rank after a
// tie run skips ahead to the row index.
func assignRanks(rows []leaderboardRow, currentUserID uint) ([]LeaderboardEntry, *LeaderboardEntry) {
	entries := make([]LeaderboardEntry, 0, len(rows))
	var current *LeaderboardEntry

	rank := 1
	prevBest := 0
	for i, r := range rows {
		if i > 0 && r.Best < prevBest {
			rank = i + 1
		}
		entry := LeaderboardEntry{
			Rank:          rank,
			UserID:        r.ID,
			Username:      r.Username,
			AvatarURL:     r.AvatarURL,
			Location:      r.Location,
			Sport:         r.Sport,
			Best:          r.Best,
			IsCurrentUser: r.ID == currentUserID,
		}
		entries = append(entries, entry)
		if entry.IsCurrentUser {
			c := entry
			current = &c
		}
		prevBest = r.Best
	}
	return entries, current
}
