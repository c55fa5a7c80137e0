package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchday-standings/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the in-memory seed into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM competitions WHERE deleted_at IS NULL`); err != nil {
		return crerr.Wrap(err, "count competitions for bootstrap seed")
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, c := range memory.SeedCompetitions() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO competitions (public_id, name, country_code, country_name, current_season, is_default)
VALUES (:public_id, :name, :country_code, :country_name, :current_season, :is_default)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":      c.ID,
			"name":           c.Name,
			"country_code":   c.CountryCode,
			"country_name":   c.CountryName,
			"current_season": c.CurrentSeason,
			"is_default":     c.IsDefault,
		})
		if err != nil {
			return crerr.Wrapf(err, "bind seed competition %s query", c.ID)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return crerr.Wrapf(err, "seed competition %s", c.ID)
		}
	}

	for _, m := range memory.SeedMatches() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO matches (
	public_id, competition_public_id, season_public_id, gameweek,
	home_team_public_id, away_team_public_id, home_team, away_team,
	kickoff_at, home_score, away_score, status
)
VALUES (
	:public_id, :competition_public_id, :season_public_id, :gameweek,
	:home_team_public_id, :away_team_public_id, :home_team, :away_team,
	:kickoff_at, :home_score, :away_score, :status
)
ON CONFLICT (competition_public_id, public_id) DO NOTHING`, map[string]any{
			"public_id":             m.ID,
			"competition_public_id": m.CompetitionID,
			"season_public_id":      m.SeasonID,
			"gameweek":              m.Gameweek,
			"home_team_public_id":   m.HomeTeamID,
			"away_team_public_id":   m.AwayTeamID,
			"home_team":             m.HomeTeam,
			"away_team":             m.AwayTeam,
			"kickoff_at":            m.KickoffAt,
			"home_score":            intPtrToNullInt64(m.HomeScore),
			"away_score":            intPtrToNullInt64(m.AwayScore),
			"status":                m.Status,
		})
		if err != nil {
			return crerr.Wrapf(err, "bind seed match %s query", m.ID)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return crerr.Wrapf(err, "seed match %s", m.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit seed tx")
	}

	return nil
}
