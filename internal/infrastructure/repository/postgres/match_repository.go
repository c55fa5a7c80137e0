package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/matchday-standings/internal/domain/match"
	qb "github.com/riskibarqy/matchday-standings/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListByCompetitionSeason(ctx context.Context, competitionID, seasonID string) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(
			qb.Eq("competition_public_id", competitionID),
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select matches by season query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		if retryable(err) {
			return r.listByCompetitionSeasonSingleParam(ctx, competitionID, seasonID)
		}
		return nil, crerr.Wrapf(err, "select matches competition=%s season=%s", competitionID, seasonID)
	}

	return matchesFromRows(rows), nil
}

// listByCompetitionSeasonSingleParam binds both keys through one text array
// so poolers that mishandle multi-parameter unnamed statements still serve it.
func (r *MatchRepository) listByCompetitionSeasonSingleParam(ctx context.Context, competitionID, seasonID string) ([]match.Match, error) {
	query, _, err := qb.Select(matchColumns...).From("matches").
		Where(
			qb.Expr("competition_public_id = ($1::text[])[1]"),
			qb.Expr("season_public_id = ($1::text[])[2]"),
			qb.IsNull("deleted_at"),
		).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select matches single param fallback query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array([]string{competitionID, seasonID})); err != nil {
		return nil, crerr.Wrapf(err, "select matches fallback competition=%s season=%s", competitionID, seasonID)
	}

	return matchesFromRows(rows), nil
}

func matchesFromRows(rows []matchTableModel) []match.Match {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out
}

func (r *MatchRepository) GetByID(ctx context.Context, competitionID, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(
			qb.Eq("competition_public_id", competitionID),
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, crerr.Wrap(err, "build get match by id query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, crerr.Wrapf(err, "get match by id %s", matchID)
	}

	return matchFromRow(row), true, nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:            row.PublicID,
		CompetitionID: row.CompetitionID,
		SeasonID:      row.SeasonID,
		Gameweek:      row.Gameweek,
		HomeTeamID:    row.HomeTeamID,
		AwayTeamID:    row.AwayTeamID,
		HomeTeam:      row.HomeTeam,
		AwayTeam:      row.AwayTeam,
		KickoffAt:     row.KickoffAt,
		HomeScore:     nullInt64ToIntPtr(row.HomeScore),
		AwayScore:     nullInt64ToIntPtr(row.AwayScore),
		Status:        match.NormalizeStatus(row.Status),
	}
}
