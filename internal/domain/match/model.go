package match

import (
	"strings"
	"time"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusFinished  = "FINISHED"
)

// Match is one historical or scheduled fixture inside a competition season.
type Match struct {
	ID            string
	CompetitionID string
	SeasonID      string
	Gameweek      int
	HomeTeamID    string
	AwayTeamID    string
	HomeTeam      string
	AwayTeam      string
	KickoffAt     time.Time
	HomeScore     *int
	AwayScore     *int
	Status        string
}

// IsPlayed reports whether both scores are recorded. A row with only one
// score is neither played nor upcoming and callers skip it.
func (m Match) IsPlayed() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// IsUpcoming reports whether neither score is recorded.
func (m Match) IsUpcoming() bool {
	return m.HomeScore == nil && m.AwayScore == nil
}

// Involves reports whether teamID is the home or the away side.
func (m Match) Involves(teamID string) bool {
	return teamID != "" && (m.HomeTeamID == teamID || m.AwayTeamID == teamID)
}

// NormalizeStatus upper-cases a provider status, defaulting to scheduled.
func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}
