package optimistic

import "sync"

type viewItem[T any] struct {
	id    string
	value T
}

// ViewList is the ordered collection a screen renders: confirmed rows
// first, then optimistic entries appended as they are submitted. Replace
// keeps the slot, Remove closes the gap.
type ViewList[T any] struct {
	mu    sync.Mutex
	items []viewItem[T]
}

func NewViewList[T any]() *ViewList[T] {
	return &ViewList[T]{}
}

// Reset replaces the whole list, e.g. after an initial fetch. Ids must be
// unique within the list.
func (v *ViewList[T]) Reset(ids []string, values []T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = v.items[:0]
	for i := range ids {
		v.items = append(v.items, viewItem[T]{id: ids[i], value: values[i]})
	}
}

func (v *ViewList[T]) Append(id string, value T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = append(v.items, viewItem[T]{id: id, value: value})
}

// Replace swaps the value stored under id without moving it.
func (v *ViewList[T]) Replace(id string, value T) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.items {
		if v.items[i].id == id {
			v.items[i].value = value
			return true
		}
	}
	return false
}

// Rekey renames an entry in place, used when a temp id is confirmed under
// the server-assigned id.
func (v *ViewList[T]) Rekey(oldID, newID string, value T) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.items {
		if v.items[i].id == oldID {
			v.items[i].id = newID
			v.items[i].value = value
			return true
		}
	}
	return false
}

func (v *ViewList[T]) Remove(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.items {
		if v.items[i].id == id {
			v.items = append(v.items[:i], v.items[i+1:]...)
			return true
		}
	}
	return false
}

func (v *ViewList[T]) Contains(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.items {
		if v.items[i].id == id {
			return true
		}
	}
	return false
}

// IndexOf returns the current position of id, or -1.
func (v *ViewList[T]) IndexOf(id string) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.items {
		if v.items[i].id == id {
			return i
		}
	}
	return -1
}

func (v *ViewList[T]) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.items)
}

// Snapshot returns ids and values in render order.
func (v *ViewList[T]) Snapshot() ([]string, []T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	ids := make([]string, len(v.items))
	values := make([]T, len(v.items))
	for i, it := range v.items {
		ids[i] = it.id
		values[i] = it.value
	}
	return ids, values
}
