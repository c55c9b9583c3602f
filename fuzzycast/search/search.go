// Package search composes fuzzy-search filter expressions over a typed
// record schema. Each search term is cast against every eligible field of
// the schema; the casts that succeed become predicates, OR'ed together into
// one disjunction group and AND'ed onto whatever the base query already
// filters. Terms that fit nothing contribute nothing.
package search

import (
	"github.com/pkg/errors"

	"github.com/pyramind10/fuzzy-cast/fuzzycast/query"
	"github.com/pyramind10/fuzzy-cast/fuzzycast/schema"
)

// ErrUnknownSource is returned when a composition onto an existing query
// cannot determine which schema the query selects from.
var ErrUnknownSource = errors.New("cannot determine source schema of query")

type Option func(*Request)

// WithFields restricts the eligible fields to the given names, in the given
// order. Password-guarded fields stay excluded even when named here.
func WithFields(fields ...string) Option {
	return func(r *Request) {
		r.fields = make([]string, len(fields))
		copy(r.fields, fields)
	}
}

// WithBase merges the composed disjunction group into an existing query
// instead of starting from the unfiltered record set.
func WithBase(base query.Query) Option {
	return func(r *Request) {
		r.base = base
		r.hasBase = true
	}
}

// Request carries one composition through its stages. It may be Run more
// than once; unchanged inputs produce a structurally identical query.
type Request struct {
	source  schema.Metadata
	terms   []string
	fields  []string
	base    query.Query
	hasBase bool

	rejected error
}

func NewRequest(source schema.Metadata, terms []string, opts ...Option) *Request {
	r := &Request{
		source: source,
		terms:  make([]string, len(terms)),
	}
	copy(r.terms, terms)
	for i := range opts {
		opts[i](r)
	}
	return r
}

// Run executes the pipeline: field eligibility, term casting, expression
// building. When no (term, field) pair casts, the base query is returned
// unchanged.
func (r *Request) Run() (query.Query, error) {
	if r.source == nil {
		return query.Query{}, ErrUnknownSource
	}
	base := r.base
	if !r.hasBase {
		base = query.From(r.source)
	}

	candidates := eligibleFields(r.source, r.fields)
	casts, rejected := castAll(r.source, r.terms, candidates)
	r.rejected = rejected
	if len(casts) == 0 {
		return base, nil
	}

	q := base.WhereGroup(casts[0].predicate())
	for _, c := range casts[1:] {
		q = q.OrWhere(c.predicate())
	}
	return q, nil
}

// Rejected returns the cast failures of the most recent Run, aggregated.
// Rejections never fail a composition; this exists for diagnostics only.
func (r *Request) Rejected() error {
	return r.rejected
}

// Compose builds a fuzzy-search query over all records of the source
// schema, unless WithBase supplies an existing query to narrow further.
func Compose(source schema.Metadata, terms []string, opts ...Option) (query.Query, error) {
	return NewRequest(source, terms, opts...).Run()
}

// ComposeQuery narrows an existing query with a new group of fuzzy-search
// predicates. The schema is taken from the query's source; composing a
// query with an unknown source fails with ErrUnknownSource.
func ComposeQuery(q query.Query, terms []string, opts ...Option) (query.Query, error) {
	if q.Source() == nil {
		return query.Query{}, ErrUnknownSource
	}
	opts = append(opts, WithBase(q))
	return NewRequest(q.Source(), terms, opts...).Run()
}
