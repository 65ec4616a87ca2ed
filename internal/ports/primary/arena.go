package primary

import (
	"context"

	"github.com/example/clerk/internal/core/arena"
)

// ArenaService defines the primary port for the gaming domain.
type ArenaService interface {
	// AddTeam registers a new team.
	AddTeam(ctx context.Context, name, tag string) (*arena.Team, error)

	// SignPlayer registers a player on a team.
	SignPlayer(ctx context.Context, teamID int, handle string) (*arena.Player, error)

	// ScheduleMatch creates a fixture between two distinct teams.
	ScheduleMatch(ctx context.Context, homeTeamID, awayTeamID int) (*arena.Match, error)

	// RecordResult moves a scheduled match to played with its final score.
	RecordResult(ctx context.Context, matchID, homeScore, awayScore int) error

	// CancelMatch cancels a scheduled match.
	CancelMatch(ctx context.Context, matchID int) error

	// RecordAppearance records that a player took part in a played match.
	// One appearance per (match, player) pair.
	RecordAppearance(ctx context.Context, matchID, playerID, goals int) error

	// GetMatch retrieves an active match by id.
	GetMatch(ctx context.Context, matchID int) (*arena.Match, error)

	// ListTeams lists active teams in insertion order.
	ListTeams(ctx context.Context) ([]*arena.Team, error)

	// Standings computes the league table from played matches.
	Standings(ctx context.Context) ([]arena.Standing, error)

	// PlayerStats computes per-player appearances and goals from the
	// appearance join table.
	PlayerStats(ctx context.Context) ([]arena.PlayerLine, error)
}

// PersistenceService defines the primary port for bulk persistence: whole
// ledger snapshots and the sqlite archive.
type PersistenceService interface {
	// SaveAll snapshots every collection, one document per entity kind.
	SaveAll(ctx context.Context) error

	// LoadAll restores every collection from snapshots. All-or-nothing:
	// any failure leaves the live ledger untouched.
	LoadAll(ctx context.Context) error

	// ExportArchive copies every collection into the sqlite archive.
	ExportArchive(ctx context.Context) error

	// ImportArchive restores every collection from the sqlite archive.
	// All-or-nothing, like LoadAll.
	ImportArchive(ctx context.Context) error
}
