package resilient

import (
	"context"

	"github.com/riskibarqy/matchday-standings/internal/domain/competition"
	"github.com/riskibarqy/matchday-standings/internal/domain/match"
	"github.com/riskibarqy/matchday-standings/internal/platform/resilience"
)

type competitionLookup struct {
	item   competition.Competition
	exists bool
}

type matchLookup struct {
	item   match.Match
	exists bool
}

// CompetitionRepository short-circuits catalog reads while the store is failing.
type CompetitionRepository struct {
	next    competition.Repository
	breaker *resilience.Breaker
}

func NewCompetitionRepository(next competition.Repository, breaker *resilience.Breaker) *CompetitionRepository {
	return &CompetitionRepository{next: next, breaker: breaker}
}

func (r *CompetitionRepository) List(ctx context.Context) ([]competition.Competition, error) {
	return resilience.Do(ctx, r.breaker, r.next.List)
}

func (r *CompetitionRepository) GetByID(ctx context.Context, competitionID string) (competition.Competition, bool, error) {
	out, err := resilience.Do(ctx, r.breaker, func(ctx context.Context) (competitionLookup, error) {
		item, exists, err := r.next.GetByID(ctx, competitionID)
		return competitionLookup{item: item, exists: exists}, err
	})
	return out.item, out.exists, err
}

// MatchRepository short-circuits match reads while the store is failing.
type MatchRepository struct {
	next    match.Repository
	breaker *resilience.Breaker
}

func NewMatchRepository(next match.Repository, breaker *resilience.Breaker) *MatchRepository {
	return &MatchRepository{next: next, breaker: breaker}
}

func (r *MatchRepository) ListByCompetitionSeason(ctx context.Context, competitionID, seasonID string) ([]match.Match, error) {
	return resilience.Do(ctx, r.breaker, func(ctx context.Context) ([]match.Match, error) {
		return r.next.ListByCompetitionSeason(ctx, competitionID, seasonID)
	})
}

func (r *MatchRepository) GetByID(ctx context.Context, competitionID, matchID string) (match.Match, bool, error) {
	out, err := resilience.Do(ctx, r.breaker, func(ctx context.Context) (matchLookup, error) {
		item, exists, err := r.next.GetByID(ctx, competitionID, matchID)
		return matchLookup{item: item, exists: exists}, err
	})
	return out.item, out.exists, err
}
