// Package arena contains the pure business logic for the gaming domain:
// match lifecycle, appearance tracking, and standings. Standings are
// recomputed from played matches on every read; teams carry no win/loss
// counters that could drift. No I/O.
package arena

import (
	"time"

	"github.com/example/clerk/internal/store"
)

// Team is a competing team.
type Team struct {
	store.Meta
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

// Player belongs to exactly one team.
type Player struct {
	store.Meta
	TeamID int    `json:"team_id"`
	Handle string `json:"handle"`
}

// Match is a fixture between two distinct teams. Scores are meaningful
// only once the status is played.
type Match struct {
	store.Meta
	HomeTeamID int         `json:"home_team_id"`
	AwayTeamID int         `json:"away_team_id"`
	HomeScore  int         `json:"home_score"`
	AwayScore  int         `json:"away_score"`
	Status     MatchStatus `json:"status"`
	PlayedAt   *time.Time  `json:"played_at,omitempty"`
}

// Appearance records that a player actually took part in a match. Player
// statistics join through here rather than being estimated.
type Appearance struct {
	store.Meta
	MatchID  int `json:"match_id"`
	PlayerID int `json:"player_id"`
	Goals    int `json:"goals"`
}

// MatchStatus represents the possible states of a match.
type MatchStatus string

const (
	MatchScheduled MatchStatus = "scheduled"
	MatchPlayed    MatchStatus = "played"
	MatchCancelled MatchStatus = "cancelled"
)

// matchTransitions is the allow-list of match status changes. Played and
// cancelled are terminal.
var matchTransitions = map[MatchStatus][]MatchStatus{
	MatchScheduled: {MatchPlayed, MatchCancelled},
}

// InitialMatchStatus returns the status assigned to a new match.
func InitialMatchStatus() MatchStatus {
	return MatchScheduled
}

// CanTransitionMatch reports whether a match status change is allowed.
func CanTransitionMatch(from, to MatchStatus) bool {
	for _, allowed := range matchTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
