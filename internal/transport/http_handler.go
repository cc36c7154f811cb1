// Package transport exposes the ledger over HTTP, Server-Sent Events and gRPC health.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/ledger"
	"github.com/goodnatureofminers/arogya-ledger-backend/internal/seed"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// simulateRequest is the body accepted by the simulate endpoints. Unused
// fields are ignored per operation.
type simulateRequest struct {
	RecordID    string `json:"recordId"`
	PatientName string `json:"patientName"`
	Condition   string `json:"condition"`
}

// Handler serves the dashboard REST API and the event stream.
type Handler struct {
	logger  *zap.Logger
	ledger  Ledger
	events  Events
	records Records
	audit   AuditTrail
}

// NewHandler constructs a Handler. audit may be nil when the archive is disabled.
func NewHandler(l Ledger, events Events, records Records, audit AuditTrail, logger *zap.Logger) (*Handler, error) {
	if l == nil {
		return nil, errors.New("ledger is required")
	}
	if events == nil {
		return nil, errors.New("events is required")
	}
	if records == nil {
		return nil, errors.New("records is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		logger:  logger.Named("http"),
		ledger:  l,
		events:  events,
		records: records,
		audit:   audit,
	}, nil
}

// RegisterRoutes registers the API routes with mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.HandleFunc("GET /api/stats", h.handleStats)
	mux.HandleFunc("GET /api/transactions", h.handleTransactions)
	mux.HandleFunc("GET /api/records", h.handleListRecords)
	mux.HandleFunc("GET /api/records/{id}", h.handleGetRecord)
	mux.HandleFunc("GET /api/records/{id}/audit", h.handleAuditTrail)
	mux.HandleFunc("POST /api/simulate/add-record", h.handleAddRecord)
	mux.HandleFunc("POST /api/simulate/verify-record", h.handleVerifyRecord)
	mux.HandleFunc("POST /api/simulate/decrypt-record", h.handleDecryptRecord)
	mux.HandleFunc("GET /api/events", h.handleEvents)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Stats())
}

func (h *Handler) handleTransactions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Transactions())
}

func (h *Handler) handleListRecords(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.records.List())
}

func (h *Handler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.records.Get(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, seed.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Record not found")
			return
		}
		h.logger.Error("get record", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to load record")
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) handleAuditTrail(w http.ResponseWriter, r *http.Request) {
	if h.audit == nil {
		writeError(w, http.StatusServiceUnavailable, "Archive disabled")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	txs, err := h.audit.TransactionsByRecord(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		h.logger.Error("load audit trail", zap.String("record", r.PathValue("id")), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to load audit trail")
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func (h *Handler) handleAddRecord(w http.ResponseWriter, r *http.Request) {
	h.simulate(w, r, func(req simulateRequest) ledger.Input {
		return ledger.AddRecordInput(req.RecordID, req.PatientName, req.Condition)
	})
}

func (h *Handler) handleVerifyRecord(w http.ResponseWriter, r *http.Request) {
	h.simulate(w, r, func(req simulateRequest) ledger.Input {
		return ledger.VerifyRecordInput(req.RecordID)
	})
}

func (h *Handler) handleDecryptRecord(w http.ResponseWriter, r *http.Request) {
	h.simulate(w, r, func(req simulateRequest) ledger.Input {
		return ledger.DecryptRecordInput(req.RecordID)
	})
}

func (h *Handler) simulate(w http.ResponseWriter, r *http.Request, input func(simulateRequest) ledger.Input) {
	var req simulateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := h.ledger.Record(input(req))
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("record transaction", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to record transaction")
		return
	}
	writeJSON(w, http.StatusOK, tx)
}
