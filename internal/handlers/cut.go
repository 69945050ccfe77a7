package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/JCaesar45/Cut-a-rectangle/internal/config"
	"github.com/JCaesar45/Cut-a-rectangle/internal/rectcut"
	"github.com/JCaesar45/Cut-a-rectangle/internal/repository"
)

// CutHandler serves the two engine operations over HTTP, streams
// solutions over WebSocket, and keeps a record of finished computations
// when a repository is attached (nil repo disables recording).
type CutHandler struct {
	logger *slog.Logger
	query  *rectcut.Query
	repo   *repository.Queries
	ws     *config.WebSocket
}

func NewCutHandler(
	logger *slog.Logger,
	query *rectcut.Query,
	repo *repository.Queries,
	ws *config.WebSocket,
) *CutHandler {
	return &CutHandler{
		logger: logger,
		query:  query,
		repo:   repo,
		ws:     ws,
	}
}

// statusFor maps engine errors onto response codes. Invalid input is
// the caller's fault; a too-large grid is a refusal, not a failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, rectcut.ErrInvalidDimensions):
		return http.StatusBadRequest
	case errors.Is(err, rectcut.ErrSearchSpaceTooLarge):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *CutHandler) Count(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseDimensionsDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	start := time.Now()
	count, err := h.query.Count(r.Context(), dto.Rows, dto.Cols)
	if err != nil {
		status := statusFor(err)
		w.WriteHeader(status)
		if status == http.StatusInternalServerError {
			h.logger.Error("count failed", "error", err)
			return
		}
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	h.record(r.Context(), dto, count, time.Since(start))
	sendJSONOrLog(w, h.logger, CountDTO{Rows: dto.Rows, Cols: dto.Cols, Count: count})
}

func (h *CutHandler) Solutions(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseDimensionsDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	start := time.Now()
	solutions, err := h.query.Solutions(r.Context(), dto.Rows, dto.Cols)
	if err != nil {
		status := statusFor(err)
		w.WriteHeader(status)
		if status == http.StatusInternalServerError {
			h.logger.Error("enumeration failed", "error", err)
			return
		}
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	h.record(r.Context(), dto, len(solutions), time.Since(start))
	sendJSONOrLog(w, h.logger, NewSolutionsDTO(dto.Rows, dto.Cols, solutions))
}

// ConnectWS upgrades the connection and streams every solution as its
// own frame, closing with a summary. Useful for rendering layers that
// want to draw cuts as they arrive instead of buffering the full set.
func (h *CutHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseDimensionsDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	conn, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	solutions, err := h.query.Solutions(r.Context(), dto.Rows, dto.Cols)
	if err != nil {
		conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()),
			time.Now().Add(time.Second),
		)
		return
	}

	for _, p := range solutions {
		frame := SolutionFrameDTO{Type: "solution", Labels: p.Labels()}
		if err := conn.WriteJSON(frame); err != nil {
			h.logger.Debug("solutions stream dropped", "error", err)
			return
		}
	}

	count := len(solutions)
	if err := conn.WriteJSON(SolutionFrameDTO{Type: "summary", Count: &count}); err != nil {
		h.logger.Debug("solutions stream dropped", "error", err)
		return
	}

	conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
}

func (h *CutHandler) Records(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	dto, err := ParseRecordsFilterDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	records, err := h.repo.ListComputations(
		r.Context(),
		repository.ComputationFilter{GridRows: dto.Rows, GridCols: dto.Cols},
		dto.Limit,
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to list computations", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, records)
}

func (h *CutHandler) record(
	ctx context.Context, dto DimensionsDTO, count int, elapsed time.Duration,
) {
	if h.repo == nil {
		return
	}
	_, err := h.repo.CreateComputation(ctx, repository.CreateComputationParams{
		GridRows:      dto.Rows,
		GridCols:      dto.Cols,
		SolutionCount: count,
		DurationMs:    float64(elapsed) / float64(time.Millisecond),
	})
	if err != nil {
		h.logger.Error("unable to record computation", "error", err)
	}
}
