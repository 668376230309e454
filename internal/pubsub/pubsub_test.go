package pubsub

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func immediate(fn func()) { fn() }

func TestTopic(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp := NewTopicWith[int](immediate)
	var got []int
	tp.Sub(ctx, func(v int) { got = append(got, v) })

	tp.Pub(1)
	tp.Pub(2)
	assert.Equal(t, []int{1, 2}, got)
}

func TestTopicUnsubscribes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tp := NewTopicWith[string](immediate).(*topic[string])

	var mu sync.Mutex
	var got []string
	tp.Sub(ctx, func(v string) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, v)
	})
	tp.Pub("a")
	cancel()
	require.Eventually(t, func() bool { return tp.len() == 0 }, time.Second, time.Millisecond)
	tp.Pub("b")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"a"}, got)
}

func TestTopicDispatches(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var queued []func()
	tp := NewTopicWith[int](func(fn func()) { queued = append(queued, fn) })
	var got int
	tp.Sub(ctx, func(v int) { got = v })

	tp.Pub(7)
	assert.Zero(t, got, "handlers only run through the dispatcher")
	require.Len(t, queued, 1)
	queued[0]()
	assert.Equal(t, 7, got)
}

func TestProperty(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	prop := NewPropertyWith("initial", immediate)
	var got []string
	prop.Sub(ctx, func(v string) { got = append(got, v) })
	assert.Equal(t, []string{"initial"}, got)

	prop.Pub("next")
	assert.Equal(t, "next", prop.Value())
	assert.Equal(t, []string{"initial", "next"}, got)
}
