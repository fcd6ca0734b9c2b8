package widget

// observers keeps callbacks in registration order, addressable by id.
type observers[F any] struct {
	next int
	ids  []int
	fns  []F
}

func (o *observers[F]) add(fn F) int {
	id := o.next
	o.next++
	o.ids = append(o.ids, id)
	o.fns = append(o.fns, fn)
	return id
}

func (o *observers[F]) remove(id int) bool {
	for i, cur := range o.ids {
		if cur == id {
			o.ids = append(o.ids[:i], o.ids[i+1:]...)
			o.fns = append(o.fns[:i], o.fns[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot lets a callback disconnect itself without disturbing iteration.
func (o *observers[F]) snapshot() []F {
	out := make([]F, len(o.fns))
	copy(out, o.fns)
	return out
}
