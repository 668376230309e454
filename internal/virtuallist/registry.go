package virtuallist

// Registry maps active surfaces to the item they currently show. Event handlers attached
// to a recycled surface must resolve their item here when they fire.
type Registry struct {
	contexts map[SurfaceID]PanelContext
}

func NewRegistry() *Registry {
	return &Registry{contexts: map[SurfaceID]PanelContext{}}
}

func (r *Registry) Store(id SurfaceID, index int, data any) {
	r.contexts[id] = PanelContext{Index: index, Data: data}
}

func (r *Registry) Remove(id SurfaceID) {
	delete(r.contexts, id)
}

func (r *Registry) Lookup(id SurfaceID) (PanelContext, bool) {
	ctx, ok := r.contexts[id]
	return ctx, ok
}

func (r *Registry) Clear() {
	clear(r.contexts)
}

func (r *Registry) Len() int {
	return len(r.contexts)
}
