package virtuallist

// Pool owns every surface the list ever created. A surface is either idle in the pool or
// leased to an item; the pool never touches visibility or content.
type Pool struct {
	host   Host
	idle   []Surface
	leased map[SurfaceID]Surface
	all    map[SurfaceID]Surface
}

func NewPool(host Host) *Pool {
	return &Pool{
		host:   host,
		leased: map[SurfaceID]Surface{},
		all:    map[SurfaceID]Surface{},
	}
}

// GetOrCreate leases an idle surface, or a new one built by factory when none is idle.
func (p *Pool) GetOrCreate(parent Host, factory func() Surface) Surface {
	var s Surface
	if n := len(p.idle); n > 0 {
		s = p.idle[n-1]
		p.idle[n-1] = nil
		p.idle = p.idle[:n-1]
	} else {
		s = factory()
		p.all[s.ID()] = s
	}
	p.leased[s.ID()] = s
	return s
}

// Return marks s idle. Surfaces the pool does not lease are ignored.
func (p *Pool) Return(s Surface) {
	if _, ok := p.leased[s.ID()]; !ok {
		return
	}
	delete(p.leased, s.ID())
	p.idle = append(p.idle, s)
}

// ClearAll destroys every surface, idle or leased.
func (p *Pool) ClearAll() {
	for _, s := range p.all {
		p.host.Destroy(s)
	}
	p.idle = nil
	p.leased = map[SurfaceID]Surface{}
	p.all = map[SurfaceID]Surface{}
}

func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Idle:   len(p.idle),
		Active: len(p.leased),
		Total:  len(p.all),
	}
}
