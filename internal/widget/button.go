package widget

type Button struct {
	Label string

	observers observers[func()]
}

func NewButton(label string) *Button {
	return &Button{Label: label}
}

func (b *Button) OnClicked(fn func()) int {
	return b.observers.add(fn)
}

func (b *Button) Disconnect(id int) bool {
	return b.observers.remove(id)
}

// Click runs every registered callback in order.
func (b *Button) Click() {
	for _, fn := range b.observers.snapshot() {
		fn()
	}
}
