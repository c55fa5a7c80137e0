package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/matchday-standings/internal/platform/logging"
	"github.com/riskibarqy/matchday-standings/internal/usecase"
)

const maxRequestBodyBytes = 4 << 20

// CacheInvalidator drops cached reads for a competition.
type CacheInvalidator interface {
	InvalidateCompetition(ctx context.Context, competitionID string)
}

type Handler struct {
	competitionService *usecase.CompetitionService
	standingsService   *usecase.StandingsService
	cacheInvalidator   CacheInvalidator
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	competitionService *usecase.CompetitionService,
	standingsService *usecase.StandingsService,
	cacheInvalidator CacheInvalidator,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		competitionService: competitionService,
		standingsService:   standingsService,
		cacheInvalidator:   cacheInvalidator,
		logger:             logger,
		validator:          validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := sonic.ConfigStd.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// parseCutoff accepts RFC3339 timestamps or plain dates. Empty means no cutoff.
func parseCutoff(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if v, err := time.Parse(time.RFC3339, raw); err == nil {
		return v.UTC(), nil
	}
	if v, err := time.Parse(time.DateOnly, raw); err == nil {
		return v.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: before must be RFC3339 or YYYY-MM-DD", usecase.ErrInvalidInput)
}
