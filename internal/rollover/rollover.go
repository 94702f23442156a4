package rollover

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/mfarrow/cyclecast/internal/calculation"
	"github.com/mfarrow/cyclecast/internal/domain"
)

// DefaultSchedule runs the rollover scan nightly at 02:00.
const DefaultSchedule = "0 2 * * *"

// HouseholdState is the slice of a household the rollover job tracks: its
// cycle configuration and the cycle it currently sits in.
type HouseholdState struct {
	ID           string             `json:"id"`
	Cycle        domain.CycleConfig `json:"cycle"`
	CurrentCycle domain.CycleRange  `json:"currentCycle"`
}

// Store holds household cycle state between rollover scans.
type Store interface {
	List(ctx context.Context) ([]HouseholdState, error)
	Save(ctx context.Context, state HouseholdState) error
}

// MemoryStore is an in-process Store keyed by household ID.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]HouseholdState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]HouseholdState)}
}

func (m *MemoryStore) List(ctx context.Context) ([]HouseholdState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	states := make([]HouseholdState, 0, len(m.states))
	for _, st := range m.states {
		states = append(states, st)
	}
	sort.Slice(states, func(i, j int) bool { return states[i].ID < states[j].ID })
	return states, nil
}

func (m *MemoryStore) Save(ctx context.Context, state HouseholdState) error {
	if state.ID == "" {
		return fmt.Errorf("household state needs an ID")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[state.ID] = state
	return nil
}

// Runner advances stored households into their current pay cycle on a cron
// schedule.
type Runner struct {
	store    Store
	logger   *logrus.Logger
	schedule string
	now      func() domain.Date
}

// NewRunner creates a runner. A nil logger gets a default logrus logger;
// an empty schedule gets DefaultSchedule.
func NewRunner(store Store, logger *logrus.Logger, schedule string) *Runner {
	if logger == nil {
		logger = logrus.New()
	}
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &Runner{
		store:    store,
		logger:   logger,
		schedule: schedule,
		now:      domain.Today,
	}
}

// RollOver performs one scan: every household whose cycle end has passed
// is advanced cycle by cycle until its range contains today.
func (r *Runner) RollOver(ctx context.Context) error {
	today := r.now()
	states, err := r.store.List(ctx)
	if err != nil {
		return fmt.Errorf("listing households: %w", err)
	}

	for _, st := range states {
		advanced := 0
		for today.After(st.CurrentCycle.End) {
			st.CurrentCycle = calculation.NextCycleDates(st.Cycle, st.CurrentCycle.End)
			advanced++
		}
		if advanced == 0 {
			continue
		}
		if err := r.store.Save(ctx, st); err != nil {
			return fmt.Errorf("saving household %s: %w", st.ID, err)
		}
		r.logger.WithFields(logrus.Fields{
			"household": st.ID,
			"cycles":    advanced,
			"start":     st.CurrentCycle.Start.String(),
			"end":       st.CurrentCycle.End.String(),
		}).Info("rolled household into current cycle")
	}
	return nil
}

// Run schedules rollover scans and blocks until ctx is cancelled. One scan
// runs immediately so a freshly started daemon does not wait for the first
// cron tick.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.RollOver(ctx); err != nil {
		return err
	}

	c := cron.New()
	_, err := c.AddFunc(r.schedule, func() {
		if err := r.RollOver(ctx); err != nil {
			r.logger.WithError(err).Error("rollover scan failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", r.schedule, err)
	}

	c.Start()
	<-ctx.Done()
	stopCtx := c.Stop()
	<-stopCtx.Done()
	return ctx.Err()
}
