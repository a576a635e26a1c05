package engine

import (
	"cmp"
	"slices"
)

// QueryableStore is the type-erased view of a Store used by queries
type QueryableStore interface {
	Entities() []Entity
	Has(e Entity) bool
	Count() int
}

// QueryBuilder finds entities present in every store added with With
// Results follow the insertion order of the smallest store
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	executed bool
	results  []Entity
}

// Query starts a component intersection query
//
//	placed := world.Query().
//	    With(world.Snails).
//	    With(world.Positions()).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a store to the filter
// Panics if called after Execute
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns the entities held by all stores; repeated calls return the cached result
func (qb *QueryBuilder) Execute() []Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = []Entity{}
		return qb.results
	}

	// Smallest store first minimizes Has checks; stable keeps ties in call order
	slices.SortStableFunc(qb.stores, func(a, b QueryableStore) int {
		return cmp.Compare(a.Count(), b.Count())
	})

	candidates := qb.stores[0].Entities()
	for _, store := range qb.stores[1:] {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}
