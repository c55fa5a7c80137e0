package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	PublicID      string        `db:"public_id"`
	CompetitionID string        `db:"competition_public_id"`
	SeasonID      string        `db:"season_public_id"`
	Gameweek      int           `db:"gameweek"`
	HomeTeamID    string        `db:"home_team_public_id"`
	AwayTeamID    string        `db:"away_team_public_id"`
	HomeTeam      string        `db:"home_team"`
	AwayTeam      string        `db:"away_team"`
	KickoffAt     time.Time     `db:"kickoff_at"`
	HomeScore     sql.NullInt64 `db:"home_score"`
	AwayScore     sql.NullInt64 `db:"away_score"`
	Status        string        `db:"status"`
}

var matchColumns = []string{
	"public_id",
	"competition_public_id",
	"season_public_id",
	"gameweek",
	"home_team_public_id",
	"away_team_public_id",
	"home_team",
	"away_team",
	"kickoff_at",
	"home_score",
	"away_score",
	"status",
}
