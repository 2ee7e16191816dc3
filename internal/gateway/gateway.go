// Package gateway exposes every storage operation under a kebab-case name.
// Callers hand in a JSON payload and get back an Envelope, so the CLI, the
// HTTP server and tests all drive the same table of operations.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/bidbook/internal/service"
	"github.com/google/uuid"
)

// ErrUnknownOperation is returned for an operation name with no handler.
var ErrUnknownOperation = errors.New("unknown operation")

// Envelope is the uniform reply: data on success, message on failure.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success wraps data in a successful envelope.
func Success(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Failure wraps err in a failed envelope.
func Failure(err error) Envelope {
	return Envelope{Success: false, Message: err.Error()}
}

// Services are the use cases the gateway dispatches to.
type Services struct {
	Schema       service.SchemaService
	Users        service.UserService
	Todos        service.TodoService
	Leads        service.LeadService
	Features     service.FeatureService
	Quotes       service.QuoteService
	Projects     service.ProjectService
	ProjectTasks service.ProjectTaskService
	Timesheets   service.TimesheetService
}

type handler func(ctx context.Context, payload json.RawMessage) (any, error)

type Gateway struct {
	handlers map[string]handler
	observer Observer
}

type Option func(*Gateway)

// WithObserver sets the observer notified after each invocation.
func WithObserver(o Observer) Option {
	return func(g *Gateway) {
		if o != nil {
			g.observer = o
		}
	}
}

// New builds the operation table. Every field of svc must be set.
func New(svc Services, opts ...Option) *Gateway {
	g := &Gateway{observer: NoopObserver{}}
	g.handlers = routes(svc)
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Operations returns the registered operation names in sorted order.
func (g *Gateway) Operations() []string {
	names := make([]string, 0, len(g.handlers))
	for name := range g.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs one operation and returns its result or error unwrapped,
// for callers that map errors to their own status codes.
func (g *Gateway) Dispatch(ctx context.Context, operation string, payload json.RawMessage) (any, error) {
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
		ctx = WithRequestID(ctx, requestID)
	}

	start := time.Now()
	var (
		data any
		err  error
	)
	h, ok := g.handlers[operation]
	if !ok {
		err = fmt.Errorf("%w: %q", ErrUnknownOperation, operation)
	} else {
		data, err = h(ctx, payload)
	}

	g.observer.Observe(ctx, Event{
		Operation: operation,
		RequestID: requestID,
		StartedAt: start,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
	})
	return data, err
}

// Invoke runs one operation and folds the outcome into an Envelope.
func (g *Gateway) Invoke(ctx context.Context, operation string, payload json.RawMessage) Envelope {
	data, err := g.Dispatch(ctx, operation, payload)
	if err != nil {
		return Failure(err)
	}
	return Success(data)
}
