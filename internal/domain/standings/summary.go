// Package standings folds played matches into win/draw/loss, goal and point
// summaries for a single team. The functions are pure and never fail;
// malformed rows are skipped rather than rejected.
package standings

import (
	"strings"
	"time"
)

const (
	pointsForWin  = 3
	pointsForDraw = 1
)

// Venue is the side a team played on in a fixture.
type Venue string

const (
	VenueHome Venue = "home"
	VenueAway Venue = "away"
)

// ParseVenue accepts "home" or "away" in any case.
func ParseVenue(value string) (Venue, bool) {
	switch Venue(strings.ToLower(strings.TrimSpace(value))) {
	case VenueHome:
		return VenueHome, true
	case VenueAway:
		return VenueAway, true
	default:
		return "", false
	}
}

// Summary is a team's record over a set of played matches.
// Played == Won+Drawn+Lost and Points == 3*Won+Drawn always hold.
type Summary struct {
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
}

// Split partitions a record by venue. Overall is the field-wise sum of Home and Away.
type Split struct {
	Overall Summary
	Home    Summary
	Away    Summary
}

// RecentForm holds the last-N summaries used for current form indicators.
type RecentForm struct {
	Overall       Summary
	VenueSpecific Summary
}

// Scope selects which matches count toward a team's record.
// Cutoff is exclusive; a zero Cutoff places no upper bound.
type Scope struct {
	TeamID        string
	SeasonID      string
	CompetitionID string
	Cutoff        time.Time
}

// ForTeam returns a copy of the scope narrowed to teamID.
func (s Scope) ForTeam(teamID string) Scope {
	s.TeamID = teamID
	return s
}

func (s Scope) incomplete() bool {
	return strings.TrimSpace(s.TeamID) == "" ||
		strings.TrimSpace(s.SeasonID) == "" ||
		strings.TrimSpace(s.CompetitionID) == ""
}

// Sum returns the field-wise sum of two summaries.
func Sum(a, b Summary) Summary {
	return Summary{
		Played:       a.Played + b.Played,
		Won:          a.Won + b.Won,
		Drawn:        a.Drawn + b.Drawn,
		Lost:         a.Lost + b.Lost,
		GoalsFor:     a.GoalsFor + b.GoalsFor,
		GoalsAgainst: a.GoalsAgainst + b.GoalsAgainst,
		Points:       a.Points + b.Points,
	}
}

// GoalDifference is GoalsFor minus GoalsAgainst.
func GoalDifference(s Summary) int {
	return s.GoalsFor - s.GoalsAgainst
}

func record(s *Summary, own, opponent int) {
	s.Played++
	s.GoalsFor += own
	s.GoalsAgainst += opponent

	switch {
	case own > opponent:
		s.Won++
		s.Points += pointsForWin
	case own == opponent:
		s.Drawn++
		s.Points += pointsForDraw
	default:
		s.Lost++
	}
}
