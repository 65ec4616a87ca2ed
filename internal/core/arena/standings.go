package arena

import "sort"

// Standing is one row of the league table.
type Standing struct {
	TeamID int
	Played int
	Wins   int
	Draws  int
	Losses int
	For    int
	Against int
	Points int // 3 per win, 1 per draw
}

// GoalDifference returns goals for minus goals against.
func (s Standing) GoalDifference() int { return s.For - s.Against }

// BuildStandings folds played matches into a ranked league table, sorted
// by points, then goal difference, then goals for, then team id for a
// stable order.
func BuildStandings(teams []*Team, matches []*Match) []Standing {
	rows := make(map[int]*Standing, len(teams))
	for _, team := range teams {
		if !team.Active {
			continue
		}
		rows[team.ID] = &Standing{TeamID: team.ID}
	}

	for _, m := range matches {
		if !m.Active || m.Status != MatchPlayed {
			continue
		}
		home, away := rows[m.HomeTeamID], rows[m.AwayTeamID]
		if home == nil || away == nil {
			continue
		}

		home.Played++
		away.Played++
		home.For += m.HomeScore
		home.Against += m.AwayScore
		away.For += m.AwayScore
		away.Against += m.HomeScore

		switch {
		case m.HomeScore > m.AwayScore:
			home.Wins++
			home.Points += 3
			away.Losses++
		case m.HomeScore < m.AwayScore:
			away.Wins++
			away.Points += 3
			home.Losses++
		default:
			home.Draws++
			away.Draws++
			home.Points++
			away.Points++
		}
	}

	table := make([]Standing, 0, len(rows))
	for _, row := range rows {
		table = append(table, *row)
	}

	sort.Slice(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference() != b.GoalDifference() {
			return a.GoalDifference() > b.GoalDifference()
		}
		if a.For != b.For {
			return a.For > b.For
		}
		return a.TeamID < b.TeamID
	})
	return table
}

// PlayerLine is one row of the player statistics report, joined through
// real appearance records.
type PlayerLine struct {
	PlayerID    int
	Appearances int
	Goals       int
}

// BuildPlayerLines counts matches played and goals per player from the
// appearance join table, ranked by goals then appearances.
func BuildPlayerLines(players []*Player, appearances []*Appearance) []PlayerLine {
	rows := make(map[int]*PlayerLine, len(players))
	for _, p := range players {
		if !p.Active {
			continue
		}
		rows[p.ID] = &PlayerLine{PlayerID: p.ID}
	}

	for _, a := range appearances {
		if !a.Active {
			continue
		}
		row := rows[a.PlayerID]
		if row == nil {
			continue
		}
		row.Appearances++
		row.Goals += a.Goals
	}

	lines := make([]PlayerLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, *row)
	}

	sort.Slice(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if a.Goals != b.Goals {
			return a.Goals > b.Goals
		}
		if a.Appearances != b.Appearances {
			return a.Appearances > b.Appearances
		}
		return a.PlayerID < b.PlayerID
	})
	return lines
}
