package pubsub

import (
	"context"
	"sync"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/google/uuid"
)

type EventHandler[T any] func(T)

// Dispatcher runs fn on the goroutine that owns the widgets.
type Dispatcher func(fn func())

// MainLoop queues handlers on the GLib main loop.
func MainLoop(fn func()) {
	glib.IdleAdd(fn)
}

type Topic[T any] interface {
	Pub(value T)
	Sub(ctx context.Context, fn EventHandler[T])
}

func NewTopic[T any]() Topic[T] {
	return NewTopicWith[T](MainLoop)
}

func NewTopicWith[T any](dispatch Dispatcher) Topic[T] {
	return &topic[T]{dispatch: dispatch}
}

type topic[T any] struct {
	mutex    sync.RWMutex
	dispatch Dispatcher
	subs     map[string]EventHandler[T]
}

// Sub registers fn until ctx is done.
func (t *topic[T]) Sub(ctx context.Context, fn EventHandler[T]) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	uid := uuid.NewString()
	if t.subs == nil {
		t.subs = map[string]EventHandler[T]{}
	}
	t.subs[uid] = fn
	go func() {
		<-ctx.Done()
		t.mutex.Lock()
		defer t.mutex.Unlock()
		delete(t.subs, uid)
	}()
}

func (t *topic[T]) Pub(value T) {
	t.mutex.RLock()
	handlers := make([]EventHandler[T], 0, len(t.subs))
	for _, ev := range t.subs {
		handlers = append(handlers, ev)
	}
	t.mutex.RUnlock()

	for _, ev := range handlers {
		t.dispatch(func() {
			ev(value)
		})
	}
}

func (t *topic[T]) len() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return len(t.subs)
}

type Property[T any] interface {
	Pub(value T)
	Sub(ctx context.Context, fn EventHandler[T])
	Value() T
}

func NewProperty[T any](value T) Property[T] {
	return NewPropertyWith(value, MainLoop)
}

func NewPropertyWith[T any](value T, dispatch Dispatcher) Property[T] {
	return &property[T]{
		topic: topic[T]{dispatch: dispatch},
		value: value,
	}
}

type property[T any] struct {
	topic[T]
	value T
}

// Sub registers fn and calls it with the current value right away.
func (p *property[T]) Sub(ctx context.Context, fn EventHandler[T]) {
	p.topic.Sub(ctx, fn)
	fn(p.Value())
}

func (p *property[T]) Pub(value T) {
	p.mutex.Lock()
	p.value = value
	p.mutex.Unlock()
	p.topic.Pub(value)
}

func (p *property[T]) Value() T {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.value
}
