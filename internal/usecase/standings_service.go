package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/matchday-standings/internal/domain/competition"
	"github.com/riskibarqy/matchday-standings/internal/domain/match"
	"github.com/riskibarqy/matchday-standings/internal/domain/standings"
	"github.com/riskibarqy/matchday-standings/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

const defaultTableWorkers = 8

type StandingsOptions struct {
	FormLimit    int
	FormLength   int
	TableWorkers int
}

func (o StandingsOptions) withDefaults() StandingsOptions {
	if o.FormLimit <= 0 {
		o.FormLimit = standings.DefaultFormLimit
	}
	if o.FormLength <= 0 {
		o.FormLength = standings.DefaultFormLength
	}
	if o.TableWorkers <= 0 {
		o.TableWorkers = defaultTableWorkers
	}
	return o
}

type TeamStandingsQuery struct {
	CompetitionID string
	SeasonID      string
	TeamID        string
	Before        time.Time
}

type TeamStandings struct {
	CompetitionID  string
	SeasonID       string
	TeamID         string
	Before         time.Time
	Record         standings.Split
	GoalDifference int
	Form           string
	LikelyFavorite bool
}

type RecentFormQuery struct {
	CompetitionID string
	SeasonID      string
	TeamID        string
	Before        time.Time
	Limit         int
	Venue         standings.Venue
}

type RecentForm struct {
	CompetitionID string
	SeasonID      string
	TeamID        string
	Before        time.Time
	Limit         int
	Venue         standings.Venue
	Form          standings.RecentForm
}

type LeagueTableQuery struct {
	CompetitionID string
	SeasonID      string
	Before        time.Time
}

type LeagueTable struct {
	CompetitionID string
	SeasonID      string
	Before        time.Time
	Rows          []standings.TableRow
}

// PreviewSide is one team's standing going into a fixture.
type PreviewSide struct {
	TeamID         string
	TeamName       string
	Record         standings.Split
	Recent         standings.RecentForm
	Form           string
	LikelyFavorite bool
}

type FixturePreview struct {
	Match match.Match
	Home  PreviewSide
	Away  PreviewSide
}

// ComputeInput aggregates a caller-supplied match list without touching storage.
type ComputeInput struct {
	Matches []match.Match
	Scope   standings.Scope
	Limit   int
	Venue   standings.Venue
}

type ComputeResult struct {
	Record         standings.Split
	Recent         standings.RecentForm
	Form           string
	LikelyFavorite bool
}

type StandingsService struct {
	competitionRepo competition.Repository
	matchRepo       match.Repository
	options         StandingsOptions
	logger          *logging.Logger
}

func NewStandingsService(
	competitionRepo competition.Repository,
	matchRepo match.Repository,
	options StandingsOptions,
	logger *logging.Logger,
) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StandingsService{
		competitionRepo: competitionRepo,
		matchRepo:       matchRepo,
		options:         options.withDefaults(),
		logger:          logger,
	}
}

func (s *StandingsService) TeamStandings(ctx context.Context, query TeamStandingsQuery) (TeamStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.TeamStandings",
		scopeAttributes(query.CompetitionID, query.SeasonID, query.TeamID)...)
	defer span.End()

	teamID := strings.TrimSpace(query.TeamID)
	if teamID == "" {
		return TeamStandings{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, seasonID, matches, err := s.loadSeason(ctx, query.CompetitionID, query.SeasonID)
	if err != nil {
		return TeamStandings{}, err
	}

	scope := standings.Scope{
		TeamID:        teamID,
		SeasonID:      seasonID,
		CompetitionID: item.ID,
		Cutoff:        query.Before,
	}
	row := standings.BuildRow(matches, scope, s.options.FormLength)

	return TeamStandings{
		CompetitionID:  item.ID,
		SeasonID:       seasonID,
		TeamID:         teamID,
		Before:         query.Before,
		Record:         row.Record,
		GoalDifference: row.GoalDifference,
		Form:           row.Form,
		LikelyFavorite: row.LikelyFavorite,
	}, nil
}

func (s *StandingsService) RecentForm(ctx context.Context, query RecentFormQuery) (RecentForm, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.RecentForm",
		scopeAttributes(query.CompetitionID, query.SeasonID, query.TeamID)...)
	defer span.End()

	teamID := strings.TrimSpace(query.TeamID)
	if teamID == "" {
		return RecentForm{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	venue := query.Venue
	if venue == "" {
		venue = standings.VenueHome
	}
	if _, ok := standings.ParseVenue(string(venue)); !ok {
		return RecentForm{}, fmt.Errorf("%w: venue must be home or away", ErrInvalidInput)
	}
	limit := query.Limit
	if limit <= 0 {
		limit = s.options.FormLimit
	}

	item, seasonID, matches, err := s.loadSeason(ctx, query.CompetitionID, query.SeasonID)
	if err != nil {
		return RecentForm{}, err
	}

	scope := standings.Scope{
		TeamID:        teamID,
		SeasonID:      seasonID,
		CompetitionID: item.ID,
		Cutoff:        query.Before,
	}

	return RecentForm{
		CompetitionID: item.ID,
		SeasonID:      seasonID,
		TeamID:        teamID,
		Before:        query.Before,
		Limit:         limit,
		Venue:         venue,
		Form:          standings.ComputeRecentForm(matches, scope, limit, venue),
	}, nil
}

// LeagueTable builds one row per team on a worker pool, then ranks the rows.
func (s *StandingsService) LeagueTable(ctx context.Context, query LeagueTableQuery) (LeagueTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.LeagueTable",
		scopeAttributes(query.CompetitionID, query.SeasonID, "")...)
	defer span.End()

	item, seasonID, matches, err := s.loadSeason(ctx, query.CompetitionID, query.SeasonID)
	if err != nil {
		return LeagueTable{}, err
	}

	scope := standings.Scope{
		SeasonID:      seasonID,
		CompetitionID: item.ID,
		Cutoff:        query.Before,
	}
	teamIDs := standings.TeamIDs(matches, scope)
	rows := make([]standings.TableRow, len(teamIDs))

	if len(teamIDs) > 0 {
		workerCount := min(s.options.TableWorkers, len(teamIDs))
		workers, err := ants.NewPool(workerCount)
		if err != nil {
			return LeagueTable{}, fmt.Errorf("create worker pool: %w", err)
		}
		defer workers.Release()

		var wg sync.WaitGroup
		for i, teamID := range teamIDs {
			if err := ctx.Err(); err != nil {
				wg.Wait()
				return LeagueTable{}, err
			}

			wg.Add(1)
			if err := workers.Submit(func() {
				defer wg.Done()
				rows[i] = standings.BuildRow(matches, scope.ForTeam(teamID), s.options.FormLength)
			}); err != nil {
				wg.Done()
				wg.Wait()
				return LeagueTable{}, fmt.Errorf("submit table row to worker pool: %w", err)
			}
		}
		wg.Wait()
	}

	s.logger.DebugContext(ctx, "league table built",
		"competition_id", item.ID,
		"season_id", seasonID,
		"teams", len(rows),
	)

	return LeagueTable{
		CompetitionID: item.ID,
		SeasonID:      seasonID,
		Before:        query.Before,
		Rows:          standings.RankTable(rows),
	}, nil
}

// FixturePreview reports both sides' standings as of the fixture's kickoff.
func (s *StandingsService) FixturePreview(ctx context.Context, competitionID, matchID string) (FixturePreview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.FixturePreview",
		append(scopeAttributes(competitionID, "", ""), attribute.String("standings.match_id", matchID))...)
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return FixturePreview{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, err := lookupCompetition(ctx, s.competitionRepo, competitionID)
	if err != nil {
		return FixturePreview{}, err
	}

	fixture, exists, err := s.matchRepo.GetByID(ctx, item.ID, matchID)
	if err != nil {
		return FixturePreview{}, wrapRepoErr("get match", err)
	}
	if !exists {
		return FixturePreview{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	matches, err := s.matchRepo.ListByCompetitionSeason(ctx, item.ID, fixture.SeasonID)
	if err != nil {
		return FixturePreview{}, wrapRepoErr("list matches", err)
	}

	scope := standings.Scope{
		SeasonID:      fixture.SeasonID,
		CompetitionID: item.ID,
		Cutoff:        fixture.KickoffAt,
	}

	preview := FixturePreview{Match: fixture}
	sides := pool.New().WithMaxGoroutines(2)
	sides.Go(func() {
		preview.Home = s.previewSide(matches, scope.ForTeam(fixture.HomeTeamID), fixture.HomeTeam, standings.VenueHome)
	})
	sides.Go(func() {
		preview.Away = s.previewSide(matches, scope.ForTeam(fixture.AwayTeamID), fixture.AwayTeam, standings.VenueAway)
	})
	sides.Wait()

	return preview, nil
}

// Compute runs the aggregator over matches supplied by the caller.
func (s *StandingsService) Compute(ctx context.Context, input ComputeInput) (ComputeResult, error) {
	_, span := startUsecaseSpan(ctx, "usecase.StandingsService.Compute",
		append(
			scopeAttributes(input.Scope.CompetitionID, input.Scope.SeasonID, input.Scope.TeamID),
			attribute.Int("standings.match_count", len(input.Matches)),
		)...)
	defer span.End()

	scope := input.Scope
	scope.TeamID = strings.TrimSpace(scope.TeamID)
	scope.SeasonID = strings.TrimSpace(scope.SeasonID)
	scope.CompetitionID = strings.TrimSpace(scope.CompetitionID)
	if scope.TeamID == "" || scope.SeasonID == "" || scope.CompetitionID == "" {
		return ComputeResult{}, fmt.Errorf("%w: team, season and competition ids are required", ErrInvalidInput)
	}

	venue := input.Venue
	if venue == "" {
		venue = standings.VenueHome
	}
	limit := input.Limit
	if limit <= 0 {
		limit = s.options.FormLimit
	}

	record := standings.Compute(input.Matches, scope)
	return ComputeResult{
		Record:         record,
		Recent:         standings.ComputeRecentForm(input.Matches, scope, limit, venue),
		Form:           standings.FormString(input.Matches, scope, s.options.FormLength),
		LikelyFavorite: standings.IsLikelyFavorite(record.Overall),
	}, nil
}

func (s *StandingsService) previewSide(matches []match.Match, scope standings.Scope, teamName string, venue standings.Venue) PreviewSide {
	record := standings.Compute(matches, scope)
	return PreviewSide{
		TeamID:         scope.TeamID,
		TeamName:       teamName,
		Record:         record,
		Recent:         standings.ComputeRecentForm(matches, scope, s.options.FormLimit, venue),
		Form:           standings.FormString(matches, scope, s.options.FormLength),
		LikelyFavorite: standings.IsLikelyFavorite(record.Overall),
	}
}

func (s *StandingsService) loadSeason(ctx context.Context, competitionID, seasonID string) (competition.Competition, string, []match.Match, error) {
	item, err := lookupCompetition(ctx, s.competitionRepo, competitionID)
	if err != nil {
		return competition.Competition{}, "", nil, err
	}

	seasonID = resolveSeason(item, seasonID)
	if seasonID == "" {
		return competition.Competition{}, "", nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	matches, err := s.matchRepo.ListByCompetitionSeason(ctx, item.ID, seasonID)
	if err != nil {
		return competition.Competition{}, "", nil, wrapRepoErr("list matches", err)
	}

	return item, seasonID, matches, nil
}
