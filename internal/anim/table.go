package anim

import "sort"

// Table maps effect id to accumulated elapsed seconds. Values only grow, and
// only through Advance.
type Table struct {
	elapsed map[int]float64
}

func NewTable(ids ...int) *Table {
	t := &Table{elapsed: make(map[int]float64, len(ids))}
	for _, id := range ids {
		t.elapsed[id] = 0
	}
	return t
}

// Elapsed returns the seconds accumulated for id, 0 if never advanced.
func (t *Table) Elapsed(id int) float64 {
	return t.elapsed[id]
}

// Advance adds delta seconds to id and returns the new value. Negative
// deltas count as zero.
func (t *Table) Advance(id int, delta float64) float64 {
	if delta > 0 {
		t.elapsed[id] += delta
	}
	return t.elapsed[id]
}

// Snapshot copies the table.
func (t *Table) Snapshot() map[int]float64 {
	out := make(map[int]float64, len(t.elapsed))
	for k, v := range t.elapsed {
		out[k] = v
	}
	return out
}

// IDs returns the known ids in ascending order.
func (t *Table) IDs() []int {
	ids := make([]int, 0, len(t.elapsed))
	for id := range t.elapsed {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
