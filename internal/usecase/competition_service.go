package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/matchday-standings/internal/domain/competition"
)

// CurrentSeasonAlias resolves to the competition's current season id.
const CurrentSeasonAlias = "current"

type CompetitionService struct {
	repo competition.Repository
}

func NewCompetitionService(repo competition.Repository) *CompetitionService {
	return &CompetitionService{repo: repo}
}

func (s *CompetitionService) List(ctx context.Context) ([]competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, wrapRepoErr("list competitions", err)
	}

	out := append([]competition.Competition(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsDefault != out[j].IsDefault {
			return out[i].IsDefault
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (s *CompetitionService) Get(ctx context.Context, competitionID string) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Get", scopeAttributes(competitionID, "", "")...)
	defer span.End()

	return lookupCompetition(ctx, s.repo, competitionID)
}

func lookupCompetition(ctx context.Context, repo competition.Repository, competitionID string) (competition.Competition, error) {
	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return competition.Competition{}, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, competitionID)
	if err != nil {
		return competition.Competition{}, wrapRepoErr("get competition", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
	}

	return item, nil
}

// resolveSeason maps an empty or "current" season to the competition's current season.
func resolveSeason(item competition.Competition, seasonID string) string {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" || strings.EqualFold(seasonID, CurrentSeasonAlias) {
		return item.CurrentSeason
	}
	return seasonID
}
