package mocks

import (
	"context"
	"sync"

	"hotelinv/infras/otel"
)

// Otel hands out scopes that record nothing except the errors traced on them.
type Otel struct {
	mu     sync.Mutex
	errors []error
}

func NewOtel() *Otel {
	return &Otel{}
}

func (o *Otel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, &scope{owner: o}
}

func (o *Otel) Shutdown(context.Context) error {
	return nil
}

// Errors returns every error traced so far.
func (o *Otel) Errors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]error(nil), o.errors...)
}

func (o *Otel) record(err error) {
	if err == nil {
		return
	}

	o.mu.Lock()
	o.errors = append(o.errors, err)
	o.mu.Unlock()
}

type scope struct {
	owner *Otel
}

func (s *scope) End() {}
func (s *scope) AddEvent(string) {}
func (s *scope) SetAttribute(string, any) {}
func (s *scope) SetAttributes(map[string]any) {}
func (s *scope) TraceError(err error) { s.owner.record(err) }
func (s *scope) TraceIfError(err *error) {
	if err != nil {
		s.owner.record(*err)
	}
}
