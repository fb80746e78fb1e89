package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"comercial_moveis/internal/domain/budget"
	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/infrastructure/metrics"
	"comercial_moveis/internal/usecase/interfaces"
)

var (
	ErrSessionNotFound  = errors.New("simulation session not found")
	ErrInvalidSessionID = errors.New("invalid session_id")
)

// ISimulationUseCase manages budget simulation sessions.
//
// Each session owns one budget.Simulator. Setters replace a whole input and
// return the recomputed summary; invalid input leaves the session unchanged.
type ISimulationUseCase interface {
	Start(ctx context.Context) (string, budget.Summary, error)
	SetClient(ctx context.Context, sessionID string, client *entities.ClientRef) (budget.Summary, error)
	SetEnvironments(ctx context.Context, sessionID string, list []entities.Environment) (budget.Summary, error)
	SetPaymentMethods(ctx context.Context, sessionID string, list []entities.PaymentMethod) (budget.Summary, error)
	SetDiscount(ctx context.Context, sessionID string, percent decimal.Decimal) (budget.Summary, error)
	Summary(ctx context.Context, sessionID string) (budget.Summary, error)
	End(ctx context.Context, sessionID string) error
}

type SimulationUseCase struct {
	store interfaces.ISessionStore
	opts  []budget.Option
	locks keyedMutex
}

var _ ISimulationUseCase = (*SimulationUseCase)(nil)

func NewSimulationUseCase(store interfaces.ISessionStore, opts ...budget.Option) *SimulationUseCase {
	return &SimulationUseCase{store: store, opts: opts}
}

func (u *SimulationUseCase) Start(ctx context.Context) (string, budget.Summary, error) {
	id := uuid.NewString()
	sim := budget.NewSimulator(u.opts...)
	if err := u.store.Save(ctx, id, sim.State()); err != nil {
		log.Printf("[simulation][usecase] start failed err=%v", err)
		return "", budget.Summary{}, err
	}
	metrics.SimulationsStarted.Inc()
	log.Printf("[simulation][usecase] start session_id=%s", id)
	return id, sim.Summary(), nil
}

func (u *SimulationUseCase) SetClient(ctx context.Context, sessionID string, client *entities.ClientRef) (budget.Summary, error) {
	return u.edit(ctx, "set-client", sessionID, func(s *budget.Simulator) error {
		s.SetClient(client)
		return nil
	})
}

func (u *SimulationUseCase) SetEnvironments(ctx context.Context, sessionID string, list []entities.Environment) (budget.Summary, error) {
	return u.edit(ctx, "set-environments", sessionID, func(s *budget.Simulator) error {
		return s.SetEnvironments(list)
	})
}

// SetPaymentMethods fills the present value of financed methods sent without one.
func (u *SimulationUseCase) SetPaymentMethods(ctx context.Context, sessionID string, list []entities.PaymentMethod) (budget.Summary, error) {
	return u.edit(ctx, "set-payment-methods", sessionID, func(s *budget.Simulator) error {
		return s.SetPaymentMethods(budget.FillPresentValues(list))
	})
}

func (u *SimulationUseCase) SetDiscount(ctx context.Context, sessionID string, percent decimal.Decimal) (budget.Summary, error) {
	return u.edit(ctx, "set-discount", sessionID, func(s *budget.Simulator) error {
		return s.SetDiscount(percent)
	})
}

func (u *SimulationUseCase) Summary(ctx context.Context, sessionID string) (budget.Summary, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return budget.Summary{}, ErrInvalidSessionID
	}

	unlock := u.locks.Lock(sessionID)
	defer unlock()

	sim, err := u.load(ctx, sessionID)
	if err != nil {
		return budget.Summary{}, err
	}
	return sim.Summary(), nil
}

func (u *SimulationUseCase) End(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}

	unlock := u.locks.Lock(sessionID)
	defer unlock()

	if _, found, err := u.store.Load(ctx, sessionID); err != nil {
		return err
	} else if !found {
		return ErrSessionNotFound
	}
	if err := u.store.Delete(ctx, sessionID); err != nil {
		log.Printf("[simulation][usecase] end failed session_id=%s err=%v", sessionID, err)
		return err
	}
	metrics.SimulationsEnded.Inc()
	log.Printf("[simulation][usecase] end session_id=%s", sessionID)
	return nil
}

// edit runs fn against the stored session under the session lock and saves the
// result only when fn succeeds.
func (u *SimulationUseCase) edit(ctx context.Context, action, sessionID string, fn func(*budget.Simulator) error) (budget.Summary, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return budget.Summary{}, ErrInvalidSessionID
	}

	unlock := u.locks.Lock(sessionID)
	defer unlock()

	sim, err := u.load(ctx, sessionID)
	if err != nil {
		return budget.Summary{}, err
	}
	if err := fn(sim); err != nil {
		log.Printf("[simulation][usecase] %s rejected session_id=%s err=%v", action, sessionID, err)
		return budget.Summary{}, err
	}
	if err := u.store.Save(ctx, sessionID, sim.State()); err != nil {
		log.Printf("[simulation][usecase] %s save failed session_id=%s err=%v", action, sessionID, err)
		return budget.Summary{}, err
	}

	summary := sim.Summary()
	log.Printf("[simulation][usecase] %s session_id=%s total=%s negotiated=%s remaining=%s", action, sessionID, summary.Total, summary.Negotiated, summary.Remaining)
	return summary, nil
}

func (u *SimulationUseCase) load(ctx context.Context, sessionID string) (*budget.Simulator, error) {
	st, found, err := u.store.Load(ctx, sessionID)
	if err != nil {
		log.Printf("[simulation][usecase] load failed session_id=%s err=%v", sessionID, err)
		return nil, err
	}
	if !found {
		return nil, ErrSessionNotFound
	}
	return budget.Restore(st, u.opts...)
}

// keyedMutex serializes work per key and forgets keys nobody holds.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func (k *keyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*refMutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
