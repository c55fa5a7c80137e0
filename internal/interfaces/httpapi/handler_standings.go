package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/matchday-standings/internal/domain/match"
	"github.com/riskibarqy/matchday-standings/internal/domain/standings"
	"github.com/riskibarqy/matchday-standings/internal/usecase"
)

type recentFormQuery struct {
	Limit int    `validate:"gte=0,lte=50"`
	Venue string `validate:"omitempty,oneof=home away"`
}

type computeStandingsRequest struct {
	CompetitionID string              `json:"competition_id" validate:"required"`
	SeasonID      string              `json:"season_id" validate:"required"`
	TeamID        string              `json:"team_id" validate:"required"`
	Before        *time.Time          `json:"before"`
	Limit         int                 `json:"limit" validate:"gte=0,lte=50"`
	Venue         string              `json:"venue" validate:"omitempty,oneof=home away"`
	Matches       []computeMatchInput `json:"matches" validate:"max=5000"`
}

// computeMatchInput fields are not validated. The aggregator skips malformed rows.
type computeMatchInput struct {
	ID            string    `json:"id"`
	CompetitionID string    `json:"competition_id"`
	SeasonID      string    `json:"season_id"`
	HomeTeamID    string    `json:"home_team_id"`
	AwayTeamID    string    `json:"away_team_id"`
	KickoffAt     time.Time `json:"kickoff_at"`
	HomeScore     *int      `json:"home_score"`
	AwayScore     *int      `json:"away_score"`
}

func (h *Handler) GetLeagueTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueTable")
	defer span.End()

	competitionID := strings.TrimSpace(r.PathValue("competitionID"))
	seasonID := strings.TrimSpace(r.PathValue("seasonID"))
	before, err := parseCutoff(r.URL.Query().Get("before"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.standingsService.LeagueTable(ctx, usecase.LeagueTableQuery{
		CompetitionID: competitionID,
		SeasonID:      seasonID,
		Before:        before,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get league table failed", "competition_id", competitionID, "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueTableToDTO(table))
}

func (h *Handler) GetTeamStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStandings")
	defer span.End()

	competitionID := strings.TrimSpace(r.PathValue("competitionID"))
	seasonID := strings.TrimSpace(r.PathValue("seasonID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))
	before, err := parseCutoff(r.URL.Query().Get("before"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.standingsService.TeamStandings(ctx, usecase.TeamStandingsQuery{
		CompetitionID: competitionID,
		SeasonID:      seasonID,
		TeamID:        teamID,
		Before:        before,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get team standings failed", "competition_id", competitionID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamStandingsToDTO(item))
}

func (h *Handler) GetTeamForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamForm")
	defer span.End()

	competitionID := strings.TrimSpace(r.PathValue("competitionID"))
	seasonID := strings.TrimSpace(r.PathValue("seasonID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))
	query := r.URL.Query()

	before, err := parseCutoff(query.Get("before"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	params := recentFormQuery{Venue: strings.ToLower(strings.TrimSpace(query.Get("venue")))}
	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput))
			return
		}
		params.Limit = v
	}
	if err := h.validateRequest(ctx, params); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.standingsService.RecentForm(ctx, usecase.RecentFormQuery{
		CompetitionID: competitionID,
		SeasonID:      seasonID,
		TeamID:        teamID,
		Before:        before,
		Limit:         params.Limit,
		Venue:         standings.Venue(params.Venue),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get team form failed", "competition_id", competitionID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recentFormToDTO(item))
}

func (h *Handler) GetFixturePreview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixturePreview")
	defer span.End()

	competitionID := strings.TrimSpace(r.PathValue("competitionID"))
	matchID := strings.TrimSpace(r.PathValue("matchID"))

	preview, err := h.standingsService.FixturePreview(ctx, competitionID, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture preview failed", "competition_id", competitionID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixturePreviewToDTO(preview))
}

func (h *Handler) ComputeStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComputeStandings")
	defer span.End()

	var req computeStandingsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	req.Venue = strings.ToLower(strings.TrimSpace(req.Venue))
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matches := make([]match.Match, 0, len(req.Matches))
	for _, item := range req.Matches {
		matches = append(matches, match.Match{
			ID:            item.ID,
			CompetitionID: item.CompetitionID,
			SeasonID:      item.SeasonID,
			HomeTeamID:    item.HomeTeamID,
			AwayTeamID:    item.AwayTeamID,
			KickoffAt:     item.KickoffAt,
			HomeScore:     item.HomeScore,
			AwayScore:     item.AwayScore,
		})
	}

	scope := standings.Scope{
		TeamID:        req.TeamID,
		SeasonID:      req.SeasonID,
		CompetitionID: req.CompetitionID,
	}
	if req.Before != nil {
		scope.Cutoff = req.Before.UTC()
	}

	result, err := h.standingsService.Compute(ctx, usecase.ComputeInput{
		Matches: matches,
		Scope:   scope,
		Limit:   req.Limit,
		Venue:   standings.Venue(req.Venue),
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, computeResultToDTO(result))
}
