package sparse_test

import (
	"testing"

	"ember/internal/sparse"
)

func TestAddAssignsDenseIDs(t *testing.T) {
	var c sparse.Collection[string]

	if got := c.Add("a"); got != 0 {
		t.Fatalf("first id = %d, want 0", got)
	}
	if got := c.Add("b"); got != 1 {
		t.Fatalf("second id = %d, want 1", got)
	}
	if c.Len() != 2 {
		t.Fatalf("len = %d, want 2", c.Len())
	}
}

func TestAtReturnsMutableElement(t *testing.T) {
	var c sparse.Collection[int]
	id := c.Add(10)

	*c.At(id) = 42
	if got := *c.At(id); got != 42 {
		t.Fatalf("element = %d, want 42", got)
	}
}

func TestEachVisitsInIDOrder(t *testing.T) {
	var c sparse.Collection[string]
	c.Add("x")
	c.Add("y")
	c.Add("z")

	var ids []int32
	var items []string
	c.Each(func(id int32, item *string) {
		ids = append(ids, id)
		items = append(items, *item)
	})

	wantIDs := []int32{0, 1, 2}
	wantItems := []string{"x", "y", "z"}
	for i := range wantIDs {
		if ids[i] != wantIDs[i] || items[i] != wantItems[i] {
			t.Fatalf("visit %d = (%d, %q), want (%d, %q)", i, ids[i], items[i], wantIDs[i], wantItems[i])
		}
	}
}

func TestAtOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("At on empty collection did not panic")
		}
	}()
	var c sparse.Collection[int]
	c.At(0)
}
