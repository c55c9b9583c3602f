package postgres

import (
	"github.com/pkg/errors"

	p "github.com/pyramind10/fuzzy-cast/fuzzycast/predicate"
	"github.com/pyramind10/fuzzy-cast/fuzzycast/query"
)

// CompileToSQL renders one predicate tree as a parameterized boolean
// expression.
func CompileToSQL(exp p.Visitable, opts ...VisitorOption) (sql string, params []any, err error) {
	v := NewVisitor(opts...)
	err = exp.Accept(v)
	if err != nil {
		return "", nil, err
	}
	return v.Result()
}

// Compile renders a full SELECT statement for the query. An unfiltered
// query compiles without a WHERE clause.
func Compile(q query.Query) (sql string, params []any, err error) {
	source := q.Source()
	if source == nil {
		return "", nil, errors.New("query has no source schema")
	}
	sql = "SELECT * FROM " + source.Name()
	exp := q.Predicate()
	if exp == nil {
		return sql, nil, nil
	}
	where, params, err := CompileToSQL(exp)
	if err != nil {
		return "", nil, errors.Wrap(err, "compile where clause")
	}
	return sql + " WHERE " + where, params, nil
}
