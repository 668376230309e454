package virtuallist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolReuse(t *testing.T) {
	host := newFakeHost(constExtent(10))
	p := NewPool(host)
	var created int
	factory := func() Surface {
		created++
		return host.create()
	}

	a := p.GetOrCreate(host, factory)
	b := p.GetOrCreate(host, factory)
	assert.Equal(t, 2, created)
	assert.Equal(t, PoolStats{Idle: 0, Active: 2, Total: 2}, p.Stats())

	p.Return(a)
	assert.Equal(t, PoolStats{Idle: 1, Active: 1, Total: 2}, p.Stats())

	c := p.GetOrCreate(host, factory)
	assert.Equal(t, 2, created)
	assert.Equal(t, a.ID(), c.ID())
	assert.NotEqual(t, b.ID(), c.ID())
}

func TestPoolConservation(t *testing.T) {
	host := newFakeHost(constExtent(10))
	p := NewPool(host)
	factory := func() Surface { return host.create() }

	var leased []Surface
	for i := 0; i < 5; i++ {
		leased = append(leased, p.GetOrCreate(host, factory))
	}
	p.Return(leased[0])
	p.Return(leased[1])
	before := p.Stats()

	s := p.GetOrCreate(host, factory)
	p.Return(s)
	assert.Equal(t, before, p.Stats())

	// returning twice or returning a foreign surface is a no-op
	p.Return(leased[0])
	p.Return(host.create())
	st := p.Stats()
	assert.Equal(t, before, st)
	assert.Equal(t, st.Total, st.Idle+st.Active)
}

func TestPoolClearAll(t *testing.T) {
	host := newFakeHost(constExtent(10))
	p := NewPool(host)
	factory := func() Surface { return host.create() }

	a := p.GetOrCreate(host, factory)
	b := p.GetOrCreate(host, factory)
	p.Return(a)
	p.ClearAll()

	assert.True(t, a.(*fakeSurface).destroyed)
	assert.True(t, b.(*fakeSurface).destroyed)
	assert.Equal(t, PoolStats{}, p.Stats())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Store(1, 10, "ten")
	r.Store(2, 20, "twenty")

	ctx, ok := r.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, PanelContext{Index: 10, Data: "ten"}, ctx)

	r.Store(1, 30, "thirty")
	ctx, _ = r.Lookup(1)
	assert.Equal(t, 30, ctx.Index)

	r.Remove(1)
	_, ok = r.Lookup(1)
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())

	r.Clear()
	assert.Zero(t, r.Len())
}
