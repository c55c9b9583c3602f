package operators

import (
	"cmp"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

func registerComparison[T cmp.Ordered](reg *OperatorRegistry) {
	RegisterBinary[T, T](reg, OperatorEq, func(a, b T) (any, error) { return a == b, nil })
	RegisterBinary[T, T](reg, OperatorNe, func(a, b T) (any, error) { return a != b, nil })
	RegisterBinary[T, T](reg, OperatorGt, func(a, b T) (any, error) { return a > b, nil })
	RegisterBinary[T, T](reg, OperatorGte, func(a, b T) (any, error) { return a >= b, nil })
	RegisterBinary[T, T](reg, OperatorLt, func(a, b T) (any, error) { return a < b, nil })
	RegisterBinary[T, T](reg, OperatorLte, func(a, b T) (any, error) { return a <= b, nil })
}

// compilePattern converts a SQL LIKE pattern into an anchored regular
// expression: % matches any run of characters, _ matches a single character.
func compilePattern(pattern string, foldCase bool) (*regexp.Regexp, error) {
	var sb strings.Builder
	if foldCase {
		sb.WriteString("(?is)")
	} else {
		sb.WriteString("(?s)")
	}
	sb.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '%':
			sb.WriteString(".*")
		case '_':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	return regexp.Compile(sb.String())
}

func matchLike(value, pattern string, foldCase bool) (any, error) {
	re, err := compilePattern(pattern, foldCase)
	if err != nil {
		return nil, err
	}
	return re.MatchString(value), nil
}

// NewDefaultRegistry creates a registry with PostgreSQL-compatible operators
// for the value types the schema layer can produce.
func NewDefaultRegistry() *OperatorRegistry {
	reg := NewOperatorRegistry()

	// bool
	RegisterBinary[bool, bool](reg, OperatorEq, func(a, b bool) (any, error) { return a == b, nil })
	RegisterBinary[bool, bool](reg, OperatorNe, func(a, b bool) (any, error) { return a != b, nil })
	RegisterUnary[bool](reg, OperatorNot, func(a bool) (any, error) { return !a, nil })

	// int, int64, float64, string
	registerComparison[int](reg)
	registerComparison[int64](reg)
	registerComparison[float64](reg)
	registerComparison[string](reg)

	// string pattern matching
	RegisterBinary[string, string](reg, OperatorLike, func(a, b string) (any, error) { return matchLike(a, b, false) })
	RegisterBinary[string, string](reg, OperatorILike, func(a, b string) (any, error) { return matchLike(a, b, true) })

	// time.Time (timestamp)
	RegisterBinary[time.Time, time.Time](reg, OperatorEq, func(a, b time.Time) (any, error) { return a.Equal(b), nil })
	RegisterBinary[time.Time, time.Time](reg, OperatorNe, func(a, b time.Time) (any, error) { return !a.Equal(b), nil })
	RegisterBinary[time.Time, time.Time](reg, OperatorGt, func(a, b time.Time) (any, error) { return a.After(b), nil })
	RegisterBinary[time.Time, time.Time](reg, OperatorGte, func(a, b time.Time) (any, error) { return !a.Before(b), nil })
	RegisterBinary[time.Time, time.Time](reg, OperatorLt, func(a, b time.Time) (any, error) { return a.Before(b), nil })
	RegisterBinary[time.Time, time.Time](reg, OperatorLte, func(a, b time.Time) (any, error) { return !a.After(b), nil })

	// uuid.UUID
	RegisterBinary[uuid.UUID, uuid.UUID](reg, OperatorEq, func(a, b uuid.UUID) (any, error) { return a == b, nil })
	RegisterBinary[uuid.UUID, uuid.UUID](reg, OperatorNe, func(a, b uuid.UUID) (any, error) { return a != b, nil })

	// ulid.ULID
	RegisterBinary[ulid.ULID, ulid.ULID](reg, OperatorEq, func(a, b ulid.ULID) (any, error) { return a == b, nil })
	RegisterBinary[ulid.ULID, ulid.ULID](reg, OperatorNe, func(a, b ulid.ULID) (any, error) { return a != b, nil })

	// decimal.Decimal
	RegisterBinary[decimal.Decimal, decimal.Decimal](reg, OperatorEq, func(a, b decimal.Decimal) (any, error) { return a.Equal(b), nil })
	RegisterBinary[decimal.Decimal, decimal.Decimal](reg, OperatorNe, func(a, b decimal.Decimal) (any, error) { return !a.Equal(b), nil })
	RegisterBinary[decimal.Decimal, decimal.Decimal](reg, OperatorGt, func(a, b decimal.Decimal) (any, error) { return a.GreaterThan(b), nil })
	RegisterBinary[decimal.Decimal, decimal.Decimal](reg, OperatorGte, func(a, b decimal.Decimal) (any, error) { return a.GreaterThanOrEqual(b), nil })
	RegisterBinary[decimal.Decimal, decimal.Decimal](reg, OperatorLt, func(a, b decimal.Decimal) (any, error) { return a.LessThan(b), nil })
	RegisterBinary[decimal.Decimal, decimal.Decimal](reg, OperatorLte, func(a, b decimal.Decimal) (any, error) { return a.LessThanOrEqual(b), nil })

	return reg
}
