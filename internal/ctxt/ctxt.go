// Package ctxt stores values in a context keyed by their type, so a window, the
// preferences or a list can be handed down the widget tree without extra parameters.
package ctxt

import (
	"context"
	"fmt"
)

type key[T any] struct{}

// With returns a copy of ctx carrying v. A later With of the same type shadows it.
func With[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, key[T]{}, v)
}

func From[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(key[T]{}).(T)
	return v, ok
}

// MustFrom is From for values every caller can rely on, such as the parent window.
func MustFrom[T any](ctx context.Context) T {
	v, ok := From[T](ctx)
	if !ok {
		panic(fmt.Sprintf("ctxt: no %T in context", v))
	}
	return v
}
