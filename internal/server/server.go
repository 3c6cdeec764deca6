// Package server exposes the tracker as a JSON HTTP API.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/finance-tracker/internal/record"
	"github.com/iwvelando/finance-tracker/internal/tracker"
	"github.com/iwvelando/finance-tracker/pkg/budget"
	"github.com/iwvelando/finance-tracker/pkg/constants"
	"github.com/iwvelando/finance-tracker/pkg/datetime"
	"github.com/iwvelando/finance-tracker/pkg/goals"
	"github.com/iwvelando/finance-tracker/pkg/output"
	"github.com/iwvelando/finance-tracker/pkg/validation"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Options tunes the handler.
type Options struct {
	MaxUploadSize      int64
	Version            string
	RecentTransactions int
}

type handler struct {
	logger  *zap.Logger
	metrics *metrics

	// mu serialises access to the tracker, which is not safe for concurrent use.
	mu      sync.Mutex
	tracker *tracker.Tracker

	maxUploadSize int64
	version       string
	recent        int
}

// NewHandler constructs the router serving the tracker API and /metrics.
func NewHandler(logger *zap.Logger, tr *tracker.Tracker, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxUploadSize <= 0 {
		opts.MaxUploadSize = constants.DefaultMaxUploadSizeBytes
	}
	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}
	if opts.RecentTransactions <= 0 {
		opts.RecentTransactions = constants.DefaultRecentTransactions
	}

	h := &handler{
		logger:        logger,
		metrics:       newMetrics(),
		tracker:       tr,
		maxUploadSize: opts.MaxUploadSize,
		version:       version,
		recent:        opts.RecentTransactions,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.metrics.instrument)

	r.Route("/api", func(api chi.Router) {
		api.Get("/version", h.handleVersion)
		api.Get("/summary", h.handleSummary)

		api.Get("/record", h.handleExport)
		api.Post("/record/import", h.handleImport)

		api.Put("/salary", h.handleSetSalary)

		api.Put("/budgets", h.handleSetBudgets)
		api.Post("/budgets/allocate", h.handleAllocate)
		api.Get("/budgets/presets", h.handlePresets)

		api.Get("/transactions", h.handleListTransactions)
		api.Post("/transactions", h.handleAddTransaction)

		api.Get("/goals", h.handleListGoals)
		api.Post("/goals", h.handleAddGoal)
		api.Post("/goals/preview", h.handlePreviewGoal)
	})
	r.Handle("/metrics", h.metrics.handler())

	return r
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully.
func Serve(ctx context.Context, logger *zap.Logger, cfg *Config, handler http.Handler) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("op", "server.Serve"),
			zap.String("address", cfg.Address),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
	defer cancel()

	logger.Info("shutting down server", zap.String("op", "server.Serve"))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

type salaryRequest struct {
	Salary decimal.Decimal `json:"salary"`
}

type budgetRequest struct {
	Preset  string `json:"preset,omitempty"`
	Needs   *int   `json:"needs,omitempty"`
	Wants   *int   `json:"wants,omitempty"`
	Savings *int   `json:"savings,omitempty"`
}

// split starts from base, applies the preset if any, then the explicit
// percentages.
func (b budgetRequest) split(base budget.Split) (budget.Split, error) {
	split := base
	if b.Preset != "" {
		var ok bool
		split, ok = budget.ApplyPreset(split, b.Preset)
		if !ok {
			return base, fmt.Errorf("unknown budget preset %q", b.Preset)
		}
	}
	for _, field := range []struct {
		value *int
		dst   *int
	}{
		{b.Needs, &split.Needs},
		{b.Wants, &split.Wants},
		{b.Savings, &split.Savings},
	} {
		if field.value == nil {
			continue
		}
		if *field.value < 0 || *field.value > constants.PercentTotal {
			return base, fmt.Errorf("%w: %d", validation.ErrInvalidPercent, *field.value)
		}
		*field.dst = *field.value
	}
	return split, nil
}

type transactionRequest struct {
	Type     string          `json:"type"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
	Date     string          `json:"date"`
}

// goalRequest takes rates as percentages, as the goal form does.
type goalRequest struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	TargetAmount   float64 `json:"targetAmount"`
	Years          float64 `json:"years"`
	InflationRate  float64 `json:"inflationRate"`
	ExpectedReturn float64 `json:"expectedReturn"`
}

func (g goalRequest) input() validation.GoalInput {
	return validation.GoalInput{
		Name:           g.Name,
		Kind:           g.Type,
		TargetAmount:   strconv.FormatFloat(g.TargetAmount, 'f', -1, 64),
		Years:          strconv.FormatFloat(g.Years, 'f', -1, 64),
		InflationRate:  strconv.FormatFloat(g.InflationRate, 'f', -1, 64),
		ExpectedReturn: strconv.FormatFloat(g.ExpectedReturn, 'f', -1, 64),
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	recent, err := h.limitParam(r, "recent")
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleSummary")
		return
	}

	h.mu.Lock()
	summary := h.tracker.Summary(recent)
	h.mu.Unlock()

	h.writeJSON(w, http.StatusOK, summary)
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	rec := h.tracker.Record()
	h.mu.Unlock()

	exportFormat := r.URL.Query().Get("format")
	contentType := "application/json"
	if exportFormat == output.ExportYAML {
		contentType = "application/yaml"
	}

	var body strings.Builder
	if err := output.ExportRecord(&body, rec, exportFormat); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleExport")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFileName(exportFormat)))
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, body.String())
}

func (h *handler) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("import exceeds maximum size of %d bytes", h.maxUploadSize), "server.handleImport")
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to read import: %v", err), "server.handleImport")
		return
	}

	h.mu.Lock()
	err = h.tracker.Import(data)
	var summary record.Summary
	if err == nil {
		summary = h.tracker.Summary(h.recent)
	}
	h.mu.Unlock()

	if err != nil {
		h.respondTrackerError(w, err, "server.handleImport")
		return
	}
	h.metrics.recordMutation("import")
	h.writeJSON(w, http.StatusOK, summary)
}

func (h *handler) handleSetSalary(w http.ResponseWriter, r *http.Request) {
	var req salaryRequest
	if !h.decode(w, r, &req, "server.handleSetSalary") {
		return
	}

	h.mu.Lock()
	err := h.tracker.SetSalary(req.Salary)
	var view output.BudgetView
	if err == nil {
		rec := h.tracker.Record()
		view = output.NewBudgetView(rec, rec.Budgets)
	}
	h.mu.Unlock()

	if err != nil {
		h.respondTrackerError(w, err, "server.handleSetSalary")
		return
	}
	h.metrics.recordMutation("salary")
	h.writeJSON(w, http.StatusOK, view)
}

func (h *handler) handleSetBudgets(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if !h.decode(w, r, &req, "server.handleSetBudgets") {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	rec := h.tracker.Record()
	split, err := req.split(rec.Budgets)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleSetBudgets")
		return
	}

	if _, err := h.tracker.SetBudgets(split); err != nil {
		h.respondTrackerError(w, err, "server.handleSetBudgets")
		return
	}
	h.metrics.recordMutation("budgets")
	h.writeJSON(w, http.StatusOK, output.NewBudgetView(h.tracker.Record(), split))
}

func (h *handler) handleAllocate(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if !h.decode(w, r, &req, "server.handleAllocate") {
		return
	}

	h.mu.Lock()
	rec := h.tracker.Record()
	h.mu.Unlock()

	split, err := req.split(rec.Budgets)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleAllocate")
		return
	}
	h.writeJSON(w, http.StatusOK, output.NewBudgetView(rec, split))
}

func (h *handler) handlePresets(w http.ResponseWriter, r *http.Request) {
	presets := make(map[string]budget.Split, len(budget.PresetNames()))
	for _, name := range budget.PresetNames() {
		presets[name], _ = budget.Preset(name)
	}
	h.writeJSON(w, http.StatusOK, presets)
}

func (h *handler) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	limit, err := h.limitParam(r, "limit")
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleListTransactions")
		return
	}

	h.mu.Lock()
	rec := h.tracker.Record()
	h.mu.Unlock()

	txs := rec.Transactions
	if month := r.URL.Query().Get("month"); month != "" {
		if !datetime.ValidMonth(month) {
			h.respondErrorWithOp(w, http.StatusBadRequest,
				fmt.Sprintf("month must be formatted as YYYY-MM, got %q", month), "server.handleListTransactions")
			return
		}
		txs = rec.TransactionsInMonth(month)
	}
	if r.URL.Query().Get("limit") != "" && limit < len(txs) {
		txs = txs[:limit]
	}
	if txs == nil {
		txs = []record.Transaction{}
	}
	h.writeJSON(w, http.StatusOK, txs)
}

func (h *handler) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if !h.decode(w, r, &req, "server.handleAddTransaction") {
		return
	}

	txType, err := validation.ParseTransactionType(req.Type)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleAddTransaction")
		return
	}

	h.mu.Lock()
	tx, err := h.tracker.AddTransaction(tracker.TransactionInput{
		Type:     txType,
		Category: req.Category,
		Amount:   req.Amount,
		Note:     req.Note,
		Date:     req.Date,
	})
	h.mu.Unlock()

	if err != nil {
		h.respondTrackerError(w, err, "server.handleAddTransaction")
		return
	}
	h.metrics.recordMutation("transaction")
	h.writeJSON(w, http.StatusCreated, tx)
}

func (h *handler) handleListGoals(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	rec := h.tracker.Record()
	h.mu.Unlock()

	goalList := rec.Goals
	if goalList == nil {
		goalList = []record.Goal{}
	}
	h.writeJSON(w, http.StatusOK, goalList)
}

func (h *handler) handleAddGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if !h.decode(w, r, &req, "server.handleAddGoal") {
		return
	}

	spec, err := validation.ParseGoalSpec(req.input())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleAddGoal")
		return
	}

	h.mu.Lock()
	goal, err := h.tracker.AddGoal(spec)
	h.mu.Unlock()

	if err != nil {
		h.respondTrackerError(w, err, "server.handleAddGoal")
		return
	}
	h.metrics.recordMutation("goal")
	h.writeJSON(w, http.StatusCreated, goal)
}

func (h *handler) handlePreviewGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if !h.decode(w, r, &req, "server.handlePreviewGoal") {
		return
	}

	spec := validation.PreviewGoalSpec(req.input())
	h.writeJSON(w, http.StatusOK, output.GoalPreview{Spec: spec, Projection: goals.Project(spec)})
}

func (h *handler) limitParam(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return h.recent, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", name, raw)
	}
	return n, nil
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst any, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

// respondTrackerError maps validation failures to 400 and anything else,
// such as a failed save, to 500.
func (h *handler) respondTrackerError(w http.ResponseWriter, err error, op string) {
	status := http.StatusInternalServerError
	for _, target := range []error{
		validation.ErrInvalidSalary,
		validation.ErrInvalidAmount,
		validation.ErrInvalidPercent,
		validation.ErrInvalidGoalKind,
		validation.ErrInvalidTransactionType,
		validation.ErrInvalidDate,
		validation.ErrGoalFields,
		validation.ErrInvalidRate,
		tracker.ErrInvalidSplit,
		record.ErrInvalidImport,
	} {
		if errors.Is(err, target) {
			status = http.StatusBadRequest
			break
		}
	}
	h.respondErrorWithOp(w, status, err.Error(), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("op", op), zap.Int("status", status), zap.String("error", msg))
	} else {
		h.logger.Warn("request rejected", zap.String("op", op), zap.Int("status", status), zap.String("error", msg))
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

// writeJSON encodes payload before writing the status so an encoding failure
// can still be reported as a 500.
func (h *handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.String("op", "server.writeJSON"), zap.Error(err))
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(map[string]string{"error": "failed to encode response"})
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("failed to write response", zap.String("op", "server.writeJSON"), zap.Error(err))
	}
}

func exportFileName(exportFormat string) string {
	if exportFormat == output.ExportYAML {
		return strings.TrimSuffix(constants.ExportFileName, ".json") + ".yaml"
	}
	return constants.ExportFileName
}
