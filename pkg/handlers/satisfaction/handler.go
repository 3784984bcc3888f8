package satisfaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ht-tools/housing-atlas/pkg/models/api"
	"github.com/ht-tools/housing-atlas/pkg/models/domain"
	"github.com/ht-tools/housing-atlas/pkg/services/report"
	"github.com/ht-tools/housing-atlas/pkg/store/geojson"
	"github.com/rs/zerolog"
)

type Handler struct {
	reports report.Controller
}

func NewHandler(reports report.Controller) *Handler {
	return &Handler{reports: reports}
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	overview, err := h.reports.Overview(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build overview")
		http.Error(w, "failed to build overview", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, toAPIOverview(overview))
}

func (h *Handler) GetCrossTab(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	dimension := r.URL.Query().Get("dimension")

	var levels []domain.SatisfactionLevel
	if raw := r.URL.Query().Get("levels"); raw != "" {
		for _, level := range strings.Split(raw, ",") {
			levels = append(levels, domain.SatisfactionLevel(strings.TrimSpace(level)))
		}
	}

	ct, err := h.reports.CrossTab(ctx, dimension, levels)
	if errors.Is(err, report.ErrUnknownDimension) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("dimension", dimension).Msg("failed to build cross tab")
		http.Error(w, "failed to build cross tab", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, toAPICrossTab(ct))
}

func (h *Handler) GetReasons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	top := 0
	if raw := r.URL.Query().Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "top must be a non-negative integer", http.StatusBadRequest)
			return
		}
		top = n
	}

	counts, err := h.reports.Reasons(ctx, top)
	if err != nil {
		logger.Error().Err(err).Msg("failed to rank reasons")
		http.Error(w, "failed to rank reasons", http.StatusInternalServerError)
		return
	}

	response := make([]api.ReasonCount, 0, len(counts))
	for _, c := range counts {
		response = append(response, api.ReasonCount{ID: c.ID, Label: c.Label, Count: c.Count})
	}
	writeJSON(w, logger, response)
}

func (h *Handler) GetGroups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	dimension := r.URL.Query().Get("key")

	summary, err := h.reports.Groups(ctx, dimension)
	if errors.Is(err, report.ErrUnknownDimension) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("key", dimension).Msg("failed to build group summary")
		http.Error(w, "failed to build group summary", http.StatusInternalServerError)
		return
	}

	response := make([]api.GroupStat, 0, len(summary))
	for _, stat := range summary {
		response = append(response, api.GroupStat{Key: stat.Key, Mean: stat.Mean, Count: stat.Count})
	}
	writeJSON(w, logger, response)
}

func (h *Handler) GetDistricts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	join, err := h.reports.Districts(ctx)
	if errors.Is(err, geojson.ErrBoundaryUnavailable) {
		logger.Error().Err(err).Msg("boundary dataset unavailable")
		http.Error(w, "boundary dataset unavailable", http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to join districts")
		http.Error(w, "failed to join districts", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, toAPIDistrictMap(join))
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
