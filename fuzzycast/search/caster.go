package search

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/pyramind10/fuzzy-cast/fuzzycast/predicate"
	"github.com/pyramind10/fuzzy-cast/fuzzycast/schema"
)

// Fields whose name contains this substring never participate in a search,
// even when requested explicitly.
const passwordGuard = "password"

// fieldCast is one successfully coerced (field, value, type) triple.
type fieldCast struct {
	field string
	value any
	typ   schema.Type
}

// predicate returns the elementary predicate for the cast: case-insensitive
// substring match for text fields, exact equality for everything else.
func (c fieldCast) predicate() predicate.Visitable {
	if c.typ == schema.TypeText {
		return predicate.Contains(c.field, c.value.(string))
	}
	return predicate.Equal(predicate.Field(c.field), predicate.Value(c.value))
}

// eligibleFields resolves the candidate fields: the requested list verbatim
// when supplied, otherwise the schema's fields in declaration order, with
// the password guard applied either way.
func eligibleFields(md schema.Metadata, requested []string) []string {
	fields := requested
	if fields == nil {
		fields = md.Fields()
	}
	candidates := make([]string, 0, len(fields))
	for _, field := range fields {
		if strings.Contains(field, passwordGuard) {
			continue
		}
		candidates = append(candidates, field)
	}
	return candidates
}

// castAll attempts every term against every candidate field, in term-major
// order. Unknown fields and failed casts are skipped; the failures are
// aggregated and returned alongside for diagnostics.
func castAll(md schema.Metadata, terms, fields []string) ([]fieldCast, error) {
	var casts []fieldCast
	var rejected error
	for _, term := range terms {
		for _, field := range fields {
			typ, ok := md.TypeOf(field)
			if !ok {
				continue
			}
			value, err := schema.Cast(typ, term)
			if err != nil {
				rejected = multierror.Append(rejected, errors.Wrapf(err, "field %q", field))
				continue
			}
			casts = append(casts, fieldCast{field: field, value: value, typ: typ})
		}
	}
	return casts, rejected
}
