// Package api exposes the batch ingest handler for both the managed
// gateway and the local HTTP server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"example.com/tasktracker/internal/domain"
)

// Handler coordinates request decoding, validation, and persistence.
type Handler struct {
	service *domain.Service
	logger  *log.Logger
}

// Option configures optional behaviour for the Handler.
type Option func(*Handler)

// WithLogger overrides the logger used to report server-side failures.
func WithLogger(logger *log.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service, opts ...Option) *Handler {
	h := &Handler{
		service: service,
		logger:  log.New(log.Writer(), "[api] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SaveBatchRequest is the payload for a batch submission.
type SaveBatchRequest struct {
	Date      string        `json:"date"`
	Timestamp string        `json:"timestamp"`
	Tasks     []domain.Task `json:"tasks"`
}

// Handle processes one gateway invocation. It never returns an error to
// the runtime; every failure becomes a well-formed JSON envelope.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	status, env := h.process(ctx, []byte(req.Body))
	return gatewayResponse(status, env)
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/batches", h.batches)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) batches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorEnvelope("unsupported method"))
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorEnvelope("unable to read body"))
		return
	}

	status, env := h.process(r.Context(), body)
	writeJSON(w, status, env)
}

// process runs the shared pipeline: normalise, validate, persist.
func (h *Handler) process(ctx context.Context, raw []byte) (int, envelope) {
	req, err := decodeSaveBatchRequest(raw)
	if err != nil {
		var malformed *MalformedInputError
		if errors.As(err, &malformed) {
			return http.StatusBadRequest, errorEnvelope(malformed.Error())
		}
		h.logger.Printf("decode request: %v", err)
		return http.StatusInternalServerError, errorEnvelope("Internal server error: " + err.Error())
	}

	if req.Date == "" || len(req.Tasks) == 0 {
		return http.StatusBadRequest, errorEnvelope(ErrMissingFields.Error())
	}

	batch, err := h.service.SaveBatch(ctx, domain.SaveBatchInput{
		Date:      req.Date,
		Timestamp: req.Timestamp,
		Tasks:     req.Tasks,
	})
	if err != nil {
		h.logger.Printf("save batch: %v", err)
		return http.StatusInternalServerError, errorEnvelope("Internal server error: " + err.Error())
	}

	message := fmt.Sprintf("Successfully saved %d tasks for %s", batch.TaskCount, batch.Date)
	return http.StatusOK, successEnvelope(message, batchReceipt{
		Date:      batch.Date,
		TaskCount: batch.TaskCount,
		Timestamp: batch.Timestamp,
	})
}

// decodeSaveBatchRequest normalises the two body shapes the transport
// may deliver: a JSON object, or a JSON string that itself contains the
// encoded object. An empty body decodes to the zero request, which the
// validation step rejects as missing fields.
func decodeSaveBatchRequest(raw []byte) (SaveBatchRequest, error) {
	var req SaveBatchRequest

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return req, nil
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return req, &MalformedInputError{Err: err}
		}
		trimmed = []byte(inner)
	}

	if err := json.Unmarshal(trimmed, &req); err != nil {
		return req, &MalformedInputError{Err: err}
	}
	return req, nil
}
