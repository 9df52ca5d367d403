// Package sparse provides a generic arena that hands out dense,
// permanent integer ids.
//
// Elements are stored in insertion order. An id assigned by Add stays
// valid for the lifetime of the collection; there is no removal.
package sparse

import (
	"fmt"

	"fortio.org/safecast"
)

// Collection is an arena of T addressed by dense int32 ids.
// The zero value is ready to use.
type Collection[T any] struct {
	items []T
}

// Add stores item and returns its permanent id.
func (c *Collection[T]) Add(item T) int32 {
	id, err := safecast.Conv[int32](len(c.items))
	if err != nil {
		panic(fmt.Errorf("sparse: id overflow: %w", err))
	}
	c.items = append(c.items, item)
	return id
}

// At returns a pointer to the element with the given id.
// Ids not produced by Add are a caller bug.
func (c *Collection[T]) At(id int32) *T {
	if id < 0 || int(id) >= len(c.items) {
		panic(fmt.Errorf("sparse: id %d out of range (len %d)", id, len(c.items)))
	}
	return &c.items[id]
}

// Len reports the number of stored elements.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Each calls f for every element in id order.
func (c *Collection[T]) Each(f func(id int32, item *T)) {
	for i := range c.items {
		f(int32(i), &c.items[i])
	}
}
