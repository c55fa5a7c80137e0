package match

import "context"

// Repository exposes match read operations.
type Repository interface {
	ListByCompetitionSeason(ctx context.Context, competitionID, seasonID string) ([]Match, error)
	GetByID(ctx context.Context, competitionID, matchID string) (Match, bool, error)
}
