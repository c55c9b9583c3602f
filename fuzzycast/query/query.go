// Package query holds the filter expression a composition call starts from
// or merges into. A Query is a value: every mutation returns a new Query and
// leaves the receiver intact, so callers may keep intermediate queries and
// branch from them freely.
package query

import (
	"github.com/pyramind10/fuzzy-cast/fuzzycast/predicate"
	"github.com/pyramind10/fuzzy-cast/fuzzycast/schema"
)

// Query is a filter over all records of one source schema, structured as a
// conjunction of disjunction groups: groups are AND'ed together, predicates
// within a group are OR'ed.
type Query struct {
	source schema.Metadata
	groups [][]predicate.Visitable
}

// From builds the unfiltered query over all records of the source.
func From(source schema.Metadata) Query {
	return Query{source: source}
}

// Source returns the schema the query selects from, or nil when unknown.
func (q Query) Source() schema.Metadata {
	return q.source
}

// HasFilter reports whether at least one filter condition has been added.
func (q Query) HasFilter() bool {
	return len(q.groups) > 0
}

// WhereGroup appends a new disjunction group AND'ed onto the existing
// filter. Calling it with no predicates returns the query unchanged.
func (q Query) WhereGroup(preds ...predicate.Visitable) Query {
	if len(preds) == 0 {
		return q
	}
	group := make([]predicate.Visitable, len(preds))
	copy(group, preds)
	return Query{
		source: q.source,
		groups: append(q.copyGroups(), group),
	}
}

// OrWhere adds one predicate as an extra disjunct of the most recent group.
// On an unfiltered query it opens the first group.
func (q Query) OrWhere(pred predicate.Visitable) Query {
	groups := q.copyGroups()
	if len(groups) == 0 {
		return Query{
			source: q.source,
			groups: [][]predicate.Visitable{{pred}},
		}
	}
	last := len(groups) - 1
	groups[last] = append(groups[last], pred)
	return Query{
		source: q.source,
		groups: groups,
	}
}

// Predicate folds the filter into a single expression tree: each group
// becomes an OR chain, groups are joined with AND. Returns nil when the
// query carries no filter.
func (q Query) Predicate() predicate.Visitable {
	if len(q.groups) == 0 {
		return nil
	}
	folded := make([]predicate.Visitable, len(q.groups))
	for i, group := range q.groups {
		folded[i] = foldOr(group)
	}
	if len(folded) == 1 {
		return folded[0]
	}
	return predicate.And(folded[0], folded[1:]...)
}

// Groups returns a copy of the filter structure, outer slice AND'ed,
// inner slices OR'ed.
func (q Query) Groups() [][]predicate.Visitable {
	return q.copyGroups()
}

func (q Query) copyGroups() [][]predicate.Visitable {
	if len(q.groups) == 0 {
		return nil
	}
	groups := make([][]predicate.Visitable, len(q.groups))
	for i, group := range q.groups {
		groups[i] = make([]predicate.Visitable, len(group))
		copy(groups[i], group)
	}
	return groups
}

func foldOr(preds []predicate.Visitable) predicate.Visitable {
	if len(preds) == 1 {
		return preds[0]
	}
	return predicate.Or(preds[0], preds[1:]...)
}
