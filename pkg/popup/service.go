package popup

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoProvider is returned by Await when the service cannot show dialogs.
var ErrNoProvider = errors.New("popup: no provider")

// Service raises modal dialogs. Operations return immediately; the outcome
// arrives later through the request's callbacks.
type Service interface {
	Alert(Alert)
	Confirm(Confirm)
	Prompt(Prompt)
	Remove(Remove)
}

// Nop is a Service that drops every request.
type Nop struct{}

func (Nop) Alert(Alert)     {}
func (Nop) Confirm(Confirm) {}
func (Nop) Prompt(Prompt)   {}
func (Nop) Remove(Remove)   {}

// Discard is the Service used when nothing else is available.
var Discard Service = Nop{}

type serviceKey struct{}

// NewContext returns a copy of ctx carrying svc.
func NewContext(ctx context.Context, svc Service) context.Context {
	return context.WithValue(ctx, serviceKey{}, svc)
}

// FromContext returns the Service attached to ctx, or Discard.
func FromContext(ctx context.Context) Service {
	if svc, ok := ctx.Value(serviceKey{}).(Service); ok && svc != nil {
		return svc
	}
	return Discard
}

// Show dispatches req to the matching Service operation.
func Show(svc Service, req Request) {
	switch r := req.(type) {
	case Alert:
		svc.Alert(r)
	case Confirm:
		svc.Confirm(r)
	case Prompt:
		svc.Prompt(r)
	case Remove:
		svc.Remove(r)
	}
}

// Dismiss resolves req as aborted without showing it: its OnAbort, if any,
// runs immediately. Hosts use it to turn away requests they will not show.
func Dismiss(req Request) {
	if req == nil {
		return
	}
	if fn := req.abortFunc(); fn != nil {
		fn()
	}
}

// Await shows req and blocks until the user resolves it or ctx is done.
// The request's own callbacks still run first. Await must not be called
// from the goroutine running the Bubble Tea program; use a Messenger.
//
// A request overwritten by a later one before the user acts never
// resolves, so callers should always pass a cancellable ctx.
func Await(ctx context.Context, svc Service, req Request) (Result, error) {
	if _, ok := svc.(Nop); svc == nil || ok {
		return Result{}, ErrNoProvider
	}

	done := make(chan Result, 1)
	resolve := func(res Result, fn func()) func() {
		return func() {
			if fn != nil {
				fn()
			}
			done <- res
		}
	}

	switch r := req.(type) {
	case Alert:
		r.OnAbort = resolve(Result{Kind: KindAlert}, r.OnAbort)
		svc.Alert(r)
	case Confirm:
		r.OnConfirm = resolve(Result{Kind: KindConfirm, Confirmed: true}, r.OnConfirm)
		r.OnAbort = resolve(Result{Kind: KindConfirm}, r.OnAbort)
		svc.Confirm(r)
	case Remove:
		r.OnConfirm = resolve(Result{Kind: KindRemove, Confirmed: true}, r.OnConfirm)
		r.OnAbort = resolve(Result{Kind: KindRemove}, r.OnAbort)
		svc.Remove(r)
	case Prompt:
		onConfirm := r.OnConfirm
		r.OnConfirm = func(value string) {
			if onConfirm != nil {
				onConfirm(value)
			}
			done <- Result{Kind: KindPrompt, Confirmed: true, Value: value}
		}
		r.OnAbort = resolve(Result{Kind: KindPrompt}, r.OnAbort)
		svc.Prompt(r)
	default:
		return Result{}, fmt.Errorf("popup: unsupported request %T", req)
	}

	select {
	case res := <-done:
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
