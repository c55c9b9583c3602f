package predicate

import (
	"testing"

	"github.com/pyramind10/fuzzy-cast/fuzzycast/predicate/operators"
)

func record() MapContext {
	return MapContext{
		"id":     int64(42),
		"email":  "bob@gmail.com",
		"active": true,
	}
}

func evaluate(t *testing.T, exp Visitable, ctx Context) bool {
	t.Helper()
	result, err := Evaluate(exp, ctx, operators.NewDefaultRegistry())
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	return result
}

func TestEvaluateEquality(t *testing.T) {
	exp := Equal(Field("id"), Value(int64(42)))
	if !evaluate(t, exp, record()) {
		t.Error("Expected id = 42 to match")
	}

	exp = Equal(Field("id"), Value(int64(7)))
	if evaluate(t, exp, record()) {
		t.Error("Expected id = 7 not to match")
	}
}

func TestEvaluateILikeSubstring(t *testing.T) {
	exp := ILike(Field("email"), Value("%GMAIL%"))
	if !evaluate(t, exp, record()) {
		t.Error("Expected ILIKE to match case-insensitively")
	}

	exp = ILike(Field("email"), Value("%yahoo%"))
	if evaluate(t, exp, record()) {
		t.Error("Expected non-substring not to match")
	}
}

func TestEvaluateLikeIsCaseSensitive(t *testing.T) {
	exp := Like(Field("email"), Value("%GMAIL%"))
	if evaluate(t, exp, record()) {
		t.Error("Expected LIKE to be case-sensitive")
	}
}

func TestEvaluateLikeSingleCharWildcard(t *testing.T) {
	exp := Like(Field("email"), Value("bob@gmail.co_"))
	if !evaluate(t, exp, record()) {
		t.Error("Expected _ to match a single character")
	}
}

func TestEvaluateOrGroup(t *testing.T) {
	exp := Or(
		ILike(Field("email"), Value("%yahoo%")),
		Equal(Field("id"), Value(int64(42))),
	)
	if !evaluate(t, exp, record()) {
		t.Error("Expected one true disjunct to satisfy OR")
	}
}

func TestEvaluateAndOfOrGroups(t *testing.T) {
	exp := And(
		ILike(Field("email"), Value("%bob%")),
		Or(
			ILike(Field("email"), Value("%gmail%")),
			Equal(Field("id"), Value(int64(7))),
		),
	)
	if !evaluate(t, exp, record()) {
		t.Error("Expected conjunction of groups to match")
	}
}

func TestEvaluateNullIsNotAMatch(t *testing.T) {
	ctx := MapContext{"email": nil}
	exp := ILike(Field("email"), Value("%gmail%"))
	if evaluate(t, exp, ctx) {
		t.Error("Expected NULL comparison not to match")
	}
}

func TestEvaluateUnknownFieldFails(t *testing.T) {
	exp := Equal(Field("missing"), Value(1))
	_, err := Evaluate(exp, record(), operators.NewDefaultRegistry())
	if err == nil {
		t.Fatal("Expected an error for unknown field")
	}
}

func TestMapContextGet(t *testing.T) {
	ctx := MapContext{"a": 1}
	value, err := ctx.Get("a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != 1 {
		t.Errorf("Expected 1, got %v", value)
	}

	_, err = ctx.Get("b")
	if err == nil {
		t.Error("Expected an error for missing key")
	}
}
