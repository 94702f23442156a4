package server

import (
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/mfarrow/cyclecast/internal/calculation"
	"github.com/mfarrow/cyclecast/internal/domain"
)

const maxUpcomingCycles = 120

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, errorResponse{Error: fmt.Sprintf(format, args...)})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return false
	}
	return true
}

// resolveToday defaults a missing request date to the system clock.
func resolveToday(d domain.Date) domain.Date {
	if d.IsZero() {
		return domain.Today()
	}
	return d
}

type nextCyclesRequest struct {
	Cycle domain.CycleConfig `json:"cycle"`
	Today domain.Date        `json:"today,omitempty"`
	Count int                `json:"count,omitempty"`
}

type nextCyclesResponse struct {
	Current domain.CycleRange   `json:"current"`
	Next    []domain.CycleRange `json:"next"`
}

func (s *Server) handleNextCycles(w http.ResponseWriter, r *http.Request) {
	var req nextCyclesRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Cycle.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid cycle config: %v", err)
		return
	}

	count := req.Count
	if count <= 0 {
		count = 1
	}
	if count > maxUpcomingCycles {
		count = maxUpcomingCycles
	}

	current := calculation.CurrentCycle(req.Cycle, resolveToday(req.Today))
	next := make([]domain.CycleRange, 0, count)
	prev := current
	for i := 0; i < count; i++ {
		prev = calculation.NextCycleDates(req.Cycle, prev.End)
		next = append(next, prev)
	}

	writeJSON(w, http.StatusOK, nextCyclesResponse{Current: current, Next: next})
}

type incomeEventsRequest struct {
	Sources    []domain.IncomeSource `json:"sources"`
	From       domain.Date           `json:"from"`
	To         domain.Date           `json:"to"`
	JointRatio decimal.Decimal       `json:"jointRatio,omitempty"`
}

type incomeEventsResponse struct {
	Events []domain.IncomeEvent `json:"events"`
	Totals domain.IncomeSummary `json:"totals"`
}

func (s *Server) handleIncomeEvents(w http.ResponseWriter, r *http.Request) {
	var req incomeEventsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.From.IsZero() || req.To.IsZero() || req.To.Before(req.From) {
		writeError(w, http.StatusBadRequest, "from and to must form a valid range")
		return
	}
	for _, src := range req.Sources {
		if err := src.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, "invalid income source: %v", err)
			return
		}
	}

	rng := domain.CycleRange{Start: req.From, End: req.To}
	events := s.engine.IncomeEventsForRange(req.Sources, req.From, req.To)
	totals := s.engine.ProjectIncomeForCycle(rng, req.Sources, req.JointRatio)
	if events == nil {
		events = []domain.IncomeEvent{}
	}

	writeJSON(w, http.StatusOK, incomeEventsResponse{Events: events, Totals: totals})
}

type savingsProjectionRequest struct {
	Current        decimal.Decimal    `json:"current"`
	Target         decimal.Decimal    `json:"target"`
	AmountPerCycle decimal.Decimal    `json:"amountPerCycle"`
	Cycle          domain.CycleConfig `json:"cycle"`
	Today          domain.Date        `json:"today,omitempty"`
	MaxCycles      int                `json:"maxCycles,omitempty"`
}

type projectionResponse struct {
	Points []domain.ProjectionPoint `json:"points"`
}

func (s *Server) handleSavingsProjection(w http.ResponseWriter, r *http.Request) {
	var req savingsProjectionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Cycle.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid cycle config: %v", err)
		return
	}

	cycleStart := calculation.CycleStartDate(req.Cycle, resolveToday(req.Today))
	points := s.engine.ProjectSavingsOverTime(req.Current, req.Target, req.AmountPerCycle, cycleStart, req.Cycle, req.MaxCycles)
	writeJSON(w, http.StatusOK, projectionResponse{Points: points})
}

type repaymentProjectionRequest struct {
	Balance           decimal.Decimal    `json:"balance"`
	AmountPerCycle    decimal.Decimal    `json:"amountPerCycle"`
	Cycle             domain.CycleConfig `json:"cycle"`
	Today             domain.Date        `json:"today,omitempty"`
	IncludeInterest   bool               `json:"includeInterest,omitempty"`
	AnnualRatePercent decimal.Decimal    `json:"annualRatePercent,omitempty"`
	MaxCycles         int                `json:"maxCycles,omitempty"`
}

type repaymentProjectionResponse struct {
	Points []domain.ProjectionPoint `json:"points"`
	Cost   domain.RepaymentCost     `json:"cost"`
}

func (s *Server) handleRepaymentProjection(w http.ResponseWriter, r *http.Request) {
	var req repaymentProjectionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Cycle.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid cycle config: %v", err)
		return
	}

	cycleStart := calculation.CycleStartDate(req.Cycle, resolveToday(req.Today))
	points := s.engine.ProjectRepaymentOverTime(req.Balance, req.AmountPerCycle, cycleStart, req.Cycle, calculation.RepaymentOptions{
		IncludeInterest:   req.IncludeInterest,
		AnnualRatePercent: req.AnnualRatePercent,
		MaxCycles:         req.MaxCycles,
	})
	costOpts := calculation.CostOptions{MaxCycles: req.MaxCycles}
	if req.IncludeInterest {
		costOpts.AnnualRatePercent = req.AnnualRatePercent
	}
	cost := s.engine.TotalRepaymentCost(req.Balance, req.AmountPerCycle, cycleStart, req.Cycle, costOpts)

	writeJSON(w, http.StatusOK, repaymentProjectionResponse{Points: points, Cost: cost})
}

type savingsSuggestionRequest struct {
	Current    decimal.Decimal    `json:"current"`
	Target     decimal.Decimal    `json:"target"`
	TargetDate domain.Date        `json:"targetDate"`
	Cycle      domain.CycleConfig `json:"cycle"`
	Today      domain.Date        `json:"today,omitempty"`
}

type suggestionResponse struct {
	Amount *decimal.Decimal `json:"amount"`
}

func (s *Server) handleSavingsSuggestion(w http.ResponseWriter, r *http.Request) {
	var req savingsSuggestionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Cycle.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid cycle config: %v", err)
		return
	}
	if req.TargetDate.IsZero() {
		writeError(w, http.StatusBadRequest, "target date is required")
		return
	}

	today := resolveToday(req.Today)
	cycleStart := calculation.CycleStartDate(req.Cycle, today)
	amount := s.engine.SuggestedSavingsAmount(req.Current, req.Target, cycleStart, &req.TargetDate, req.Cycle.Type, today)
	writeJSON(w, http.StatusOK, suggestionResponse{Amount: amount})
}

type repaymentSuggestionRequest struct {
	Balance           decimal.Decimal    `json:"balance"`
	TargetDate        domain.Date        `json:"targetDate"`
	Cycle             domain.CycleConfig `json:"cycle"`
	Today             domain.Date        `json:"today,omitempty"`
	AnnualRatePercent decimal.Decimal    `json:"annualRatePercent,omitempty"`
}

func (s *Server) handleRepaymentSuggestion(w http.ResponseWriter, r *http.Request) {
	var req repaymentSuggestionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Cycle.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid cycle config: %v", err)
		return
	}
	if req.TargetDate.IsZero() {
		writeError(w, http.StatusBadRequest, "target date is required")
		return
	}

	today := resolveToday(req.Today)
	cycleStart := calculation.CycleStartDate(req.Cycle, today)

	if req.AnnualRatePercent.IsPositive() {
		amount, err := s.engine.SolveRepaymentAmount(req.Balance, cycleStart, req.TargetDate, req.Cycle, req.AnnualRatePercent, today, calculation.DefaultSolveOptions())
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "could not solve repayment amount: %v", err)
			return
		}
		writeJSON(w, http.StatusOK, suggestionResponse{Amount: &amount})
		return
	}

	amount := s.engine.SuggestedRepaymentAmount(req.Balance, cycleStart, &req.TargetDate, req.Cycle.Type, today)
	writeJSON(w, http.StatusOK, suggestionResponse{Amount: amount})
}
