package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/internal/metrics"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
	"golang.org/x/sync/errgroup"
)

// Pinger probes one dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// HealthCheck is a named readiness probe.
type HealthCheck struct {
	Name   string
	Pinger Pinger
}

// Handler handles HTTP requests for the API.
type Handler struct {
	trust            store.TrustStore
	progress         store.ProgressStore
	ranges           store.RangeStore
	checks           []HealthCheck
	readinessTimeout time.Duration
	log              *logger.Logger
}

// NewHandler creates a new API handler.
func NewHandler(
	trust store.TrustStore,
	progress store.ProgressStore,
	ranges store.RangeStore,
	checks []HealthCheck,
	readinessTimeout time.Duration,
	log *logger.Logger,
) *Handler {
	return &Handler{
		trust:            trust,
		progress:         progress,
		ranges:           ranges,
		checks:           checks,
		readinessTimeout: readinessTimeout,
		log:              log,
	}
}

// Live reports that the process is up.
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} LivenessResponse
// @Router /health/live [get]
func (h *Handler) Live(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, LivenessResponse{Status: "ok"})
}

// Ready runs every dependency check concurrently.
// @Summary Readiness probe
// @Description Checks the chain node, the database, the message bus and the company registry
// @Tags Health
// @Produce json
// @Success 200 {object} ReadinessResponse "All dependencies reachable"
// @Failure 503 {object} ReadinessResponse "At least one dependency failed"
// @Router /health/ready [get]
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.readinessTimeout)
	defer cancel()

	results := make([]CheckResult, len(h.checks))

	var (
		mu      sync.Mutex
		healthy = true
	)

	// checks never return an error to the group so one failure does not cancel the others
	g, gctx := errgroup.WithContext(ctx)
	for i, check := range h.checks {
		g.Go(func() error {
			started := time.Now()
			err := check.Pinger.Ping(gctx)

			result := CheckResult{
				Name:      check.Name,
				Status:    checkStatusOK,
				LatencyMS: time.Since(started).Milliseconds(),
			}
			if err != nil {
				result.Status = checkStatusError
				result.Error = err.Error()

				mu.Lock()
				healthy = false
				mu.Unlock()

				h.log.Warnw("readiness check failed", "check", check.Name, "error", err)
			}

			metrics.ComponentHealthSet(check.Name, err == nil)
			results[i] = result

			return nil
		})
	}
	_ = g.Wait()

	response := ReadinessResponse{
		Status:    checkStatusOK,
		Timestamp: time.Now().UTC(),
		Checks:    results,
	}

	status := http.StatusOK
	if !healthy {
		response.Status = checkStatusError
		status = http.StatusServiceUnavailable
	}

	respondJSON(w, status, response)
}

// GetContract returns the trust record of an address.
// @Summary Get the trust record of a contract
// @Tags Trust
// @Produce json
// @Param address path string true "Contract address"
// @Success 200 {object} ContractResponse
// @Failure 400 {object} ErrorResponse "Invalid address"
// @Failure 404 {object} ErrorResponse "Address never classified"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/contracts/{address} [get]
func (h *Handler) GetContract(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")

	normalized, err := store.NormalizeAddress(address)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.trust.GetRecord(r.Context(), normalized.Hex())
	if err != nil {
		var invalid *store.InvalidAddressError
		if errors.As(err, &invalid) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		h.log.Errorw("failed to read trust record", "address", normalized.Hex(), "error", err)
		respondError(w, http.StatusInternalServerError, "failed to read trust record")
		return
	}
	if record == nil {
		respondError(w, http.StatusNotFound, fmt.Sprintf("address %s is unknown", normalized.Hex()))
		return
	}

	respondJSON(w, http.StatusOK, ContractResponse{
		Address:   record.Address.Hex(),
		Status:    record.Status.String(),
		TxHash:    record.TxHash,
		UpdatedAt: time.Unix(record.UpdatedAt, 0).UTC(),
	})
}

// GetProgress returns the processing cursor.
// @Summary Get the processing cursor
// @Tags Progress
// @Produce json
// @Success 200 {object} ProgressResponse
// @Failure 404 {object} ErrorResponse "Cursor not seeded yet"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/progress [get]
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	cursor, err := h.progress.GetLast(r.Context())
	if err != nil {
		h.log.Errorw("failed to read progress cursor", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to read progress cursor")
		return
	}
	if cursor == nil {
		respondError(w, http.StatusNotFound, "no progress recorded yet")
		return
	}

	respondJSON(w, http.StatusOK, ProgressResponse{
		BlockNumber:     cursor.BlockNumber,
		TransactionHash: cursor.TransactionHash,
		LogIndex:        cursor.LogIndex,
	})
}

// GetAutoWhitelist returns the back-scan range.
// @Summary Get the auto-whitelist back-scan range
// @Tags Progress
// @Produce json
// @Success 200 {object} AutoWhitelistResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/auto-whitelist [get]
func (h *Handler) GetAutoWhitelist(w http.ResponseWriter, r *http.Request) {
	start, err := h.ranges.GetStart(r.Context())
	if err != nil {
		h.log.Errorw("failed to read auto-whitelist start", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to read auto-whitelist range")
		return
	}

	stop, err := h.ranges.GetStop(r.Context())
	if err != nil {
		h.log.Errorw("failed to read auto-whitelist stop", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to read auto-whitelist range")
		return
	}

	respondJSON(w, http.StatusOK, AutoWhitelistResponse{
		Start:    start,
		Stop:     stop,
		Complete: stop != nil && (*stop < 0 || start > uint64(*stop)), //nolint:gosec
	})
}

// respondJSON encodes before writing the status so an encoding failure can still become a 500.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")

	encoded, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(encoded)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
