package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderSetsMetadata(t *testing.T) {
	t.Parallel()

	err := Newf("case %d not found", 42).
		Component("datastore").
		Category(CategoryNotFound).
		Context("case_id", 42).
		Build()

	assert.Equal(t, "case 42 not found", err.Error())
	assert.Equal(t, "datastore", err.Component)
	assert.Equal(t, string(CategoryNotFound), err.GetCategory())
	assert.Equal(t, 42, err.GetContext()["case_id"])
	assert.False(t, err.Timestamp.IsZero())
}

func TestUnwrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := NewStd("disk unwritable")
	wrapped := New(fmt.Errorf("opening database: %w", cause)).
		Category(CategoryDatabase).
		Build()

	require.ErrorIs(t, wrapped, cause)
	assert.True(t, IsCategory(wrapped, CategoryDatabase))
	assert.False(t, IsCategory(wrapped, CategoryNotFound))
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	notFound := Newf("no such case").Category(CategoryNotFound).Build()
	other := Newf("boom").Category(CategoryDatabase).Build()

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(other))
	assert.False(t, IsNotFound(nil))
}

func TestIsCategorySurvivesWrapping(t *testing.T) {
	t.Parallel()

	inner := Newf("stale reference").Category(CategoryState).Build()
	outer := fmt.Errorf("facade: %w", inner)

	assert.True(t, IsCategory(outer, CategoryState))
}

func TestGetContextReturnsCopy(t *testing.T) {
	t.Parallel()

	err := Newf("x").Context("k", "v").Build()
	c := err.GetContext()
	c["k"] = "mutated"

	assert.Equal(t, "v", err.GetContext()["k"])
}
