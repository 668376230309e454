package ctxt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type window struct{ title string }

func TestWith(t *testing.T) {
	ctx := With(context.Background(), &window{title: "main"})
	ctx = With(ctx, 42)

	w, ok := From[*window](ctx)
	assert.True(t, ok)
	assert.Equal(t, "main", w.title)
	assert.Equal(t, 42, MustFrom[int](ctx))

	ctx = With(ctx, &window{title: "dialog"})
	assert.Equal(t, "dialog", MustFrom[*window](ctx).title)

	_, ok = From[string](ctx)
	assert.False(t, ok)
	assert.Panics(t, func() { MustFrom[string](ctx) })
}
