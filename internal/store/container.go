// Package store holds the client-side mirrors of server data, one container
// per entity family, each with its own request lifecycle.
package store

import (
	"context"
	"errors"
	"sync"

	apperrors "jobmarket-client/internal/common/errors"
	"jobmarket-client/internal/common/logger"
	"jobmarket-client/internal/common/metrics"
	"jobmarket-client/internal/models"
)

// Status is the request lifecycle of a container.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// ErrSuperseded is returned by Run when a newer Run on the same container
// started before this one finished. Its result was discarded.
var ErrSuperseded = errors.New("SUPERSEDED")

// State is an immutable view of a container. Data is shared with the
// container and must not be modified by callers.
type State[T any] struct {
	Status Status
	Data   T
	Err    string
	Fields []apperrors.FieldError
	Page   *models.Pagination
}

// Result is what a request hands back to Run. A nil Page leaves the held
// pagination untouched.
type Result[T any] struct {
	Data T
	Page *models.Pagination
}

// Resetter is anything that can drop back to its initial state, used on sign-out.
type Resetter interface {
	Reset()
}

// Container mirrors one piece of server state.
type Container[T any] struct {
	name   string
	logger logger.Logger

	mu        sync.Mutex
	state     State[T]
	gen       uint64
	cancel    context.CancelFunc
	listeners map[int]func(State[T])
	nextID    int
}

func NewContainer[T any](name string, log logger.Logger) *Container[T] {
	return &Container[T]{
		name:      name,
		logger:    log.WithFields(map[string]interface{}{"container": name}),
		state:     State[T]{Status: StatusIdle},
		listeners: make(map[int]func(State[T])),
	}
}

// Name identifies the container in logs and metrics.
func (c *Container[T]) Name() string {
	return c.name
}

// Snapshot returns the current state.
func (c *Container[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyState()
}

// Subscribe registers fn for every state change. fn runs on the goroutine
// that caused the change, after the container lock is released.
func (c *Container[T]) Subscribe(fn func(State[T])) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Run dispatches fn. The container moves to loading, then to succeeded with
// fn's data or to failed with a readable message and the old data kept.
// Starting a new Run cancels the context of the one in flight; whatever the
// older fn returns afterwards is dropped and reported as ErrSuperseded.
func (c *Container[T]) Run(ctx context.Context, fn func(ctx context.Context) (Result[T], error)) (State[T], error) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	if c.cancel != nil {
		c.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.state.Status = StatusLoading
	loading := c.copyState()
	listeners := c.listenerList()
	c.mu.Unlock()

	c.transitioned(loading, listeners)

	res, err := fn(runCtx)

	c.mu.Lock()
	if gen != c.gen {
		current := c.copyState()
		c.mu.Unlock()
		cancel()
		c.logger.Debug("dropping superseded result", map[string]interface{}{"generation": gen})
		return current, ErrSuperseded
	}
	c.cancel = nil
	cancel()

	if err != nil {
		c.state.Status = StatusFailed
		c.state.Err = apperrors.Message(err)
		c.state.Fields = apperrors.Fields(err)
	} else {
		c.state.Status = StatusSucceeded
		c.state.Data = res.Data
		c.state.Err = ""
		c.state.Fields = nil
		if res.Page != nil {
			page := *res.Page
			c.state.Page = &page
		}
	}
	final := c.copyState()
	listeners = c.listenerList()
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("request failed", map[string]interface{}{"error": err.Error()})
	}
	c.transitioned(final, listeners)

	return final, err
}

// Mutate applies a local edit to the held data without changing the status,
// e.g. to reflect a mutation confirmed by another container.
func (c *Container[T]) Mutate(fn func(T) T) {
	c.mu.Lock()
	c.state.Data = fn(c.state.Data)
	snapshot := c.copyState()
	listeners := c.listenerList()
	c.mu.Unlock()

	c.notify(snapshot, listeners)
}

// Reset cancels any request in flight and returns to idle with zero data.
func (c *Container[T]) Reset() {
	c.mu.Lock()
	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state = State[T]{Status: StatusIdle}
	snapshot := c.copyState()
	listeners := c.listenerList()
	c.mu.Unlock()

	c.transitioned(snapshot, listeners)
}

func (c *Container[T]) copyState() State[T] {
	s := c.state
	if s.Page != nil {
		page := *s.Page
		s.Page = &page
	}
	if s.Fields != nil {
		s.Fields = append([]apperrors.FieldError(nil), s.Fields...)
	}
	return s
}

func (c *Container[T]) listenerList() []func(State[T]) {
	out := make([]func(State[T]), 0, len(c.listeners))
	for _, fn := range c.listeners {
		out = append(out, fn)
	}
	return out
}

func (c *Container[T]) transitioned(s State[T], listeners []func(State[T])) {
	metrics.StoreTransitions.WithLabelValues(c.name, string(s.Status)).Inc()
	c.logger.Debug("state transition", map[string]interface{}{"status": s.Status})
	c.notify(s, listeners)
}

func (c *Container[T]) notify(s State[T], listeners []func(State[T])) {
	for _, fn := range listeners {
		fn(s)
	}
}
