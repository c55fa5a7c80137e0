package cache

import (
	"context"

	"github.com/riskibarqy/matchday-standings/internal/domain/competition"
	"github.com/riskibarqy/matchday-standings/internal/domain/match"
	basecache "github.com/riskibarqy/matchday-standings/internal/platform/cache"
)

// CompetitionEntry is the cached value for both competition lookups.
type CompetitionEntry struct {
	items  []competition.Competition
	item   competition.Competition
	exists bool
}

type CompetitionRepository struct {
	next  competition.Repository
	cache *basecache.Store[CompetitionEntry]
}

func NewCompetitionRepository(next competition.Repository, cache *basecache.Store[CompetitionEntry]) *CompetitionRepository {
	return &CompetitionRepository{next: next, cache: cache}
}

func (r *CompetitionRepository) List(ctx context.Context) ([]competition.Competition, error) {
	v, err := r.cache.GetOrLoad(ctx, "competition:list", func(ctx context.Context) (CompetitionEntry, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return CompetitionEntry{}, err
		}
		return CompetitionEntry{items: append([]competition.Competition(nil), items...)}, nil
	})
	if err != nil {
		return nil, err
	}

	return append([]competition.Competition(nil), v.items...), nil
}

func (r *CompetitionRepository) GetByID(ctx context.Context, competitionID string) (competition.Competition, bool, error) {
	key := "competition:id:" + competitionID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (CompetitionEntry, error) {
		item, exists, err := r.next.GetByID(ctx, competitionID)
		if err != nil {
			return CompetitionEntry{}, err
		}
		return CompetitionEntry{item: item, exists: exists}, nil
	})
	if err != nil {
		return competition.Competition{}, false, err
	}

	return v.item, v.exists, nil
}

// InvalidateCompetition drops the catalog list and the competition's own entry.
func (r *CompetitionRepository) InvalidateCompetition(ctx context.Context, competitionID string) {
	r.cache.Delete(ctx, "competition:list")
	r.cache.Delete(ctx, "competition:id:"+competitionID)
}

// MatchEntry is the cached value for both match lookups.
type MatchEntry struct {
	items  []match.Match
	item   match.Match
	exists bool
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store[MatchEntry]
}

func NewMatchRepository(next match.Repository, cache *basecache.Store[MatchEntry]) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) ListByCompetitionSeason(ctx context.Context, competitionID, seasonID string) ([]match.Match, error) {
	key := "match:list:" + competitionID + ":" + seasonID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (MatchEntry, error) {
		items, err := r.next.ListByCompetitionSeason(ctx, competitionID, seasonID)
		if err != nil {
			return MatchEntry{}, err
		}
		return MatchEntry{items: append([]match.Match(nil), items...)}, nil
	})
	if err != nil {
		return nil, err
	}

	return append([]match.Match(nil), v.items...), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, competitionID, matchID string) (match.Match, bool, error) {
	key := "match:id:" + competitionID + ":" + matchID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (MatchEntry, error) {
		item, exists, err := r.next.GetByID(ctx, competitionID, matchID)
		if err != nil {
			return MatchEntry{}, err
		}
		return MatchEntry{item: item, exists: exists}, nil
	})
	if err != nil {
		return match.Match{}, false, err
	}

	return v.item, v.exists, nil
}

// InvalidateCompetition drops every cached match lookup of a competition.
func (r *MatchRepository) InvalidateCompetition(ctx context.Context, competitionID string) {
	r.cache.DeletePrefix(ctx, "match:list:"+competitionID+":")
	r.cache.DeletePrefix(ctx, "match:id:"+competitionID+":")
}
