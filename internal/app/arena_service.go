package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/clerk/internal/core/arena"
	"github.com/example/clerk/internal/store"
)

// ArenaServiceImpl implements the ArenaService interface over the ledger.
// Player statistics join through real appearance records; nothing is
// simulated or cached.
type ArenaServiceImpl struct {
	ledger *Ledger
	now    func() time.Time
}

// NewArenaService creates a new ArenaService backed by the given ledger.
func NewArenaService(ledger *Ledger) *ArenaServiceImpl {
	return &ArenaServiceImpl{ledger: ledger, now: time.Now}
}

// AddTeam registers a new team.
func (s *ArenaServiceImpl) AddTeam(ctx context.Context, name, tag string) (*arena.Team, error) {
	if name == "" {
		return nil, fmt.Errorf("team name is required: %w", store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()

	team := &arena.Team{Name: name, Tag: tag}
	if _, err := s.ledger.Teams.Add(team); err != nil {
		return nil, err
	}
	return team, nil
}

// SignPlayer registers a player on a team.
func (s *ArenaServiceImpl) SignPlayer(ctx context.Context, teamID int, handle string) (*arena.Player, error) {
	if handle == "" {
		return nil, fmt.Errorf("player handle is required: %w", store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()

	if !s.ledger.Teams.Has(teamID) {
		return nil, fmt.Errorf("team %d: %w", teamID, store.ErrReferentialViolation)
	}

	player := &arena.Player{TeamID: teamID, Handle: handle}
	if _, err := s.ledger.Players.Add(player); err != nil {
		return nil, err
	}
	return player, nil
}

// ScheduleMatch creates a fixture between two distinct teams.
func (s *ArenaServiceImpl) ScheduleMatch(ctx context.Context, homeTeamID, awayTeamID int) (*arena.Match, error) {
	if homeTeamID == awayTeamID {
		return nil, fmt.Errorf("a team cannot play itself: %w", store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()

	if !s.ledger.Teams.Has(homeTeamID) {
		return nil, fmt.Errorf("home team %d: %w", homeTeamID, store.ErrReferentialViolation)
	}
	if !s.ledger.Teams.Has(awayTeamID) {
		return nil, fmt.Errorf("away team %d: %w", awayTeamID, store.ErrReferentialViolation)
	}

	match := &arena.Match{
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		Status:     arena.InitialMatchStatus(),
	}
	if _, err := s.ledger.Matches.Add(match); err != nil {
		return nil, err
	}
	return match, nil
}

// RecordResult moves a scheduled match to played with its final score.
func (s *ArenaServiceImpl) RecordResult(ctx context.Context, matchID, homeScore, awayScore int) error {
	if homeScore < 0 || awayScore < 0 {
		return fmt.Errorf("scores must not be negative: %w", store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()

	match, err := s.ledger.Matches.Get(matchID)
	if err != nil {
		return err
	}
	if !arena.CanTransitionMatch(match.Status, arena.MatchPlayed) {
		return fmt.Errorf("match %d: %s -> %s: %w", matchID, match.Status, arena.MatchPlayed, store.ErrInvalidTransition)
	}

	now := s.now()
	match.Status = arena.MatchPlayed
	match.HomeScore = homeScore
	match.AwayScore = awayScore
	match.PlayedAt = &now
	return nil
}

// CancelMatch cancels a scheduled match.
func (s *ArenaServiceImpl) CancelMatch(ctx context.Context, matchID int) error {
	s.ledger.Lock()
	defer s.ledger.Unlock()

	match, err := s.ledger.Matches.Get(matchID)
	if err != nil {
		return err
	}
	if !arena.CanTransitionMatch(match.Status, arena.MatchCancelled) {
		return fmt.Errorf("match %d: %s -> %s: %w", matchID, match.Status, arena.MatchCancelled, store.ErrInvalidTransition)
	}
	match.Status = arena.MatchCancelled
	return nil
}

// RecordAppearance records that a player took part in a played match.
func (s *ArenaServiceImpl) RecordAppearance(ctx context.Context, matchID, playerID, goals int) error {
	if goals < 0 {
		return fmt.Errorf("goals must not be negative: %w", store.ErrInvalidInput)
	}

	s.ledger.Lock()
	defer s.ledger.Unlock()

	match, err := s.ledger.Matches.Get(matchID)
	if err != nil {
		return fmt.Errorf("match %d: %w", matchID, store.ErrReferentialViolation)
	}
	if match.Status != arena.MatchPlayed {
		return fmt.Errorf("match %d is %s, not played: %w", matchID, match.Status, store.ErrInvalidInput)
	}
	if !s.ledger.Players.Has(playerID) {
		return fmt.Errorf("player %d: %w", playerID, store.ErrReferentialViolation)
	}

	duplicate := false
	s.ledger.Appearances.EachActive(func(a *arena.Appearance) bool {
		if a.MatchID == matchID && a.PlayerID == playerID {
			duplicate = true
			return false
		}
		return true
	})
	if duplicate {
		return fmt.Errorf("player %d already appeared in match %d: %w", playerID, matchID, store.ErrInvalidInput)
	}

	appearance := &arena.Appearance{MatchID: matchID, PlayerID: playerID, Goals: goals}
	_, err = s.ledger.Appearances.Add(appearance)
	return err
}

// GetMatch retrieves an active match by id.
func (s *ArenaServiceImpl) GetMatch(ctx context.Context, matchID int) (*arena.Match, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()
	return s.ledger.Matches.Get(matchID)
}

// ListTeams lists active teams in insertion order.
func (s *ArenaServiceImpl) ListTeams(ctx context.Context) ([]*arena.Team, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()

	var teams []*arena.Team
	s.ledger.Teams.EachActive(func(t *arena.Team) bool {
		teams = append(teams, t)
		return true
	})
	return teams, nil
}

// Standings computes the league table from played matches.
func (s *ArenaServiceImpl) Standings(ctx context.Context) ([]arena.Standing, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()
	return arena.BuildStandings(s.ledger.Teams.Records(), s.ledger.Matches.Records()), nil
}

// PlayerStats computes per-player appearances and goals.
func (s *ArenaServiceImpl) PlayerStats(ctx context.Context) ([]arena.PlayerLine, error) {
	s.ledger.Lock()
	defer s.ledger.Unlock()
	return arena.BuildPlayerLines(s.ledger.Players.Records(), s.ledger.Appearances.Records()), nil
}
