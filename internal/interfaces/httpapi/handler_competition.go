package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/matchday-standings/internal/usecase"
)

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	items, err := h.competitionService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list competitions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]competitionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, competitionToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCompetition")
	defer span.End()

	competitionID := strings.TrimSpace(r.PathValue("competitionID"))
	item, err := h.competitionService.Get(ctx, competitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get competition failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, competitionToDTO(item))
}

func (h *Handler) InvalidateCompetitionCache(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.InvalidateCompetitionCache")
	defer span.End()

	if h.cacheInvalidator == nil {
		writeError(ctx, w, fmt.Errorf("%w: cache is disabled", usecase.ErrDependencyUnavailable))
		return
	}

	competitionID := strings.TrimSpace(r.PathValue("competitionID"))
	if _, err := h.competitionService.Get(ctx, competitionID); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.cacheInvalidator.InvalidateCompetition(ctx, competitionID)
	h.logger.InfoContext(ctx, "competition cache invalidated", "competition_id", competitionID)

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"competition_id": competitionID, "status": "invalidated"})
}
