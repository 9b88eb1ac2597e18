package ast

import "fortio.org/safecast"

// Arena stores values addressed by 1-based ids of type ID; the zero id is "none".
// Pointers from Get stay valid only until the next Allocate.
type Arena[ID ~uint32, T any] struct {
	items []T
}

func NewArena[ID ~uint32, T any](capHint uint) *Arena[ID, T] {
	return &Arena[ID, T]{items: make([]T, 0, capHint)}
}

func (a *Arena[ID, T]) Allocate(value T) ID {
	a.items = append(a.items, value)
	return a.Len()
}

func (a *Arena[ID, T]) Get(id ID) *T {
	if id == 0 || int(id) > len(a.items) {
		return nil
	}
	return &a.items[id-1]
}

func (a *Arena[ID, T]) Len() ID {
	n, err := safecast.Conv[uint32](len(a.items))
	if err != nil {
		panic("ast: too many nodes")
	}
	return ID(n)
}
