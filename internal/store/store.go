// Package store implements the bounded in-memory collection that every
// domain in clerk builds on: sequential integer ids, an id index for O(1)
// lookup, soft deletion via an active flag, and insertion-order iteration
// for reports. Collections are owned by the Ledger and mutated only through
// the service layer.
package store

import "fmt"

// Meta is the header embedded in every record. Ids are assigned by the
// collection, start at 1, and are never reused; deletion only clears the
// active flag.
type Meta struct {
	ID     int  `json:"id"`
	Active bool `json:"active"`
}

// Header exposes the embedded Meta so the generic collection can assign ids
// and flip the active flag without knowing the concrete record type.
func (m *Meta) Header() *Meta { return m }

// Entity is satisfied by any record that embeds Meta.
type Entity interface {
	Header() *Meta
}

// Collection holds records of one entity kind in insertion order. The id
// index makes lookups O(1); iteration stays ordered for reports and
// persistence. A capacity of zero means unbounded.
type Collection[T Entity] struct {
	kind     string
	capacity int
	records  []T
	index    map[int]int
}

// NewCollection creates an empty collection for the given entity kind.
func NewCollection[T Entity](kind string, capacity int) *Collection[T] {
	return &Collection[T]{
		kind:     kind,
		capacity: capacity,
		index:    make(map[int]int),
	}
}

// Kind returns the entity kind name used for persistence files and tables.
func (c *Collection[T]) Kind() string { return c.kind }

// Capacity returns the configured ceiling, zero meaning unbounded.
func (c *Collection[T]) Capacity() int { return c.capacity }

// Len returns the number of records ever stored, including inactive ones.
func (c *Collection[T]) Len() int { return len(c.records) }

// ActiveLen returns the number of records that have not been soft-deleted.
func (c *Collection[T]) ActiveLen() int {
	n := 0
	for _, rec := range c.records {
		if rec.Header().Active {
			n++
		}
	}
	return n
}

// Add assigns the next id, marks the record active, and appends it.
// The new id is always the previous count plus one.
func (c *Collection[T]) Add(rec T) (int, error) {
	if c.capacity > 0 && len(c.records) >= c.capacity {
		return 0, fmt.Errorf("%s: %w (capacity %d)", c.kind, ErrCapacityExceeded, c.capacity)
	}

	id := len(c.records) + 1
	h := rec.Header()
	h.ID = id
	h.Active = true

	c.records = append(c.records, rec)
	c.index[id] = len(c.records) - 1
	return id, nil
}

// Get returns the active record with the given id. Ids that were never
// issued and ids whose record was soft-deleted both report ErrNotFound.
func (c *Collection[T]) Get(id int) (T, error) {
	var zero T
	pos, ok := c.index[id]
	if !ok || !c.records[pos].Header().Active {
		return zero, fmt.Errorf("%s %d: %w", c.kind, id, ErrNotFound)
	}
	return c.records[pos], nil
}

// GetAny returns the record with the given id regardless of the active
// flag. Reports and persistence use it to reach soft-deleted records.
func (c *Collection[T]) GetAny(id int) (T, error) {
	var zero T
	pos, ok := c.index[id]
	if !ok {
		return zero, fmt.Errorf("%s %d: %w", c.kind, id, ErrNotFound)
	}
	return c.records[pos], nil
}

// Has reports whether id resolves to an active record. Foreign-key checks
// go through here.
func (c *Collection[T]) Has(id int) bool {
	pos, ok := c.index[id]
	return ok && c.records[pos].Header().Active
}

// SoftDelete clears the active flag of the record with the given id. The
// record keeps its slot; space is never reclaimed and dependents are not
// cascaded. Already-inactive records report ErrNotFound.
func (c *Collection[T]) SoftDelete(id int) error {
	pos, ok := c.index[id]
	if !ok || !c.records[pos].Header().Active {
		return fmt.Errorf("%s %d: %w", c.kind, id, ErrNotFound)
	}
	c.records[pos].Header().Active = false
	return nil
}

// Each calls fn for every record in insertion order, inactive ones
// included. Iteration stops when fn returns false.
func (c *Collection[T]) Each(fn func(T) bool) {
	for _, rec := range c.records {
		if !fn(rec) {
			return
		}
	}
}

// EachActive calls fn for every active record in insertion order.
func (c *Collection[T]) EachActive(fn func(T) bool) {
	for _, rec := range c.records {
		if !rec.Header().Active {
			continue
		}
		if !fn(rec) {
			return
		}
	}
}

// Records returns the backing slice in insertion order for persistence.
// Callers must treat the result as read-only.
func (c *Collection[T]) Records() []T { return c.records }

// Replace swaps in records restored from a snapshot. Ids must be exactly
// 1..n in order: clerk never reuses or physically removes slots, so any
// other shape means the snapshot was produced by something else and the
// whole load is rejected.
func (c *Collection[T]) Replace(records []T) error {
	if c.capacity > 0 && len(records) > c.capacity {
		return fmt.Errorf("%s: %w (capacity %d, snapshot has %d)", c.kind, ErrCapacityExceeded, c.capacity, len(records))
	}

	index := make(map[int]int, len(records))
	for pos, rec := range records {
		id := rec.Header().ID
		if id != pos+1 {
			return fmt.Errorf("%s: %w: record at position %d has id %d", c.kind, ErrInvalidInput, pos, id)
		}
		index[id] = pos
	}

	c.records = records
	c.index = index
	return nil
}
