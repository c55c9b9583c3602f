package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyramind10/fuzzy-cast/fuzzycast/schema"
)

func TestEligibleFieldsDefaultsToSchemaOrder(t *testing.T) {
	fields := eligibleFields(userSchema(), nil)
	assert.Equal(t, []string{"id", "email"}, fields)
}

func TestEligibleFieldsVerbatimRequest(t *testing.T) {
	fields := eligibleFields(userSchema(), []string{"email", "id"})
	assert.Equal(t, []string{"email", "id"}, fields)
}

func TestEligibleFieldsPasswordGuard(t *testing.T) {
	// Guarded even when requested explicitly, and matched by substring.
	fields := eligibleFields(userSchema(), []string{"password", "old_password_hash", "email"})
	assert.Equal(t, []string{"email"}, fields)
}

func TestEligibleFieldsGuardIsCaseSensitive(t *testing.T) {
	md := schema.New("users").Field("Password", schema.TypeText)
	fields := eligibleFields(md, nil)
	assert.Equal(t, []string{"Password"}, fields)
}

func TestEligibleFieldsEmptyRequestMeansNone(t *testing.T) {
	fields := eligibleFields(userSchema(), []string{})
	assert.Empty(t, fields)
}

func TestCastAllTermMajorOrder(t *testing.T) {
	casts, _ := castAll(userSchema(), []string{"42", "7"}, []string{"id", "email"})

	require.Len(t, casts, 4)
	assert.Equal(t, fieldCast{field: "id", value: int64(42), typ: schema.TypeInteger}, casts[0])
	assert.Equal(t, fieldCast{field: "email", value: "42", typ: schema.TypeText}, casts[1])
	assert.Equal(t, fieldCast{field: "id", value: int64(7), typ: schema.TypeInteger}, casts[2])
	assert.Equal(t, fieldCast{field: "email", value: "7", typ: schema.TypeText}, casts[3])
}

func TestCastAllSkipsUnknownFieldsSilently(t *testing.T) {
	casts, rejected := castAll(userSchema(), []string{"bob"}, []string{"nickname", "email"})

	require.Len(t, casts, 1)
	assert.Equal(t, "email", casts[0].field)
	// Unknown fields are not recorded as rejections either.
	assert.NoError(t, rejected)
}

func TestCastAllRecordsRejections(t *testing.T) {
	casts, rejected := castAll(userSchema(), []string{"bob"}, []string{"id", "email"})

	require.Len(t, casts, 1)
	assert.Equal(t, "email", casts[0].field)
	assert.Error(t, rejected)
}

func TestCastAllFailureDoesNotAffectOtherPairs(t *testing.T) {
	md := schema.New("orders").
		Field("qty", schema.TypeInteger).
		Field("note", schema.TypeText).
		Field("price", schema.TypeDecimal)

	casts, _ := castAll(md, []string{"9.5"}, []string{"qty", "note", "price"})

	// qty rejects "9.5"; note and price still cast.
	require.Len(t, casts, 2)
	assert.Equal(t, "note", casts[0].field)
	assert.Equal(t, "price", casts[1].field)
}
