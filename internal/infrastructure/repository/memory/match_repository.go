package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/matchday-standings/internal/domain/match"
)

type MatchRepository struct {
	mu       sync.RWMutex
	bySeason map[string][]match.Match
	byID     map[string]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	bySeason := make(map[string][]match.Match)
	byID := make(map[string]match.Match, len(matches))
	for _, item := range matches {
		key := seasonKey(item.CompetitionID, item.SeasonID)
		bySeason[key] = append(bySeason[key], item)
		byID[matchKey(item.CompetitionID, item.ID)] = item
	}

	return &MatchRepository{bySeason: bySeason, byID: byID}
}

func (r *MatchRepository) ListByCompetitionSeason(_ context.Context, competitionID, seasonID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.bySeason[seasonKey(competitionID, seasonID)]
	out := make([]match.Match, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, competitionID, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[matchKey(competitionID, matchID)]
	return item, ok, nil
}

func seasonKey(competitionID, seasonID string) string {
	return competitionID + "|" + seasonID
}

func matchKey(competitionID, matchID string) string {
	return competitionID + "#" + matchID
}
