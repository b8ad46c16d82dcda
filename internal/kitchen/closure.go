package kitchen

import "sort"

// IDSet is a set of definition ids.
type IDSet map[string]struct{}

func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s IDSet) Add(id string) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s IDSet) Equal(other IDSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Closure expands seed with every id reachable through produces, slicing
// and process edges. Each id enters the worklist at most once, so the walk
// ends after at most len(catalog) steps. Ids missing from the catalog stay
// in the set but contribute no edges.
func Closure(seed IDSet, catalog *Catalog) IDSet {
	out := make(IDSet, len(seed))
	work := make([]string, 0, len(seed))
	for _, id := range seed.Sorted() {
		if out.Add(id) {
			work = append(work, id)
		}
	}
	for len(work) > 0 {
		id := work[len(work)-1]
		work = work[:len(work)-1]
		def, ok := catalog.Lookup(id)
		if !ok {
			continue
		}
		for _, next := range def.closureEdges() {
			if out.Add(next) {
				work = append(work, next)
			}
		}
	}
	return out
}

// OrderableItems returns every order-eligible definition that is either a
// base item or has at least one ancestor inside available.
func OrderableItems(catalog *Catalog, available IDSet) IDSet {
	out := make(IDSet)
	for _, def := range catalog.All() {
		if def.Order == nil {
			continue
		}
		ancestors := catalog.Ancestors(def.ID)
		if len(ancestors) == 0 {
			out.Add(def.ID)
			continue
		}
		for _, a := range ancestors {
			if available.Has(a) {
				out.Add(def.ID)
				break
			}
		}
	}
	return out
}
