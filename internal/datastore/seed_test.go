package datastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securebank/fraudflow/internal/conf"
)

func TestSeedDemoCases(t *testing.T) {
	store := createDatabase(t, &conf.Settings{})

	seeded, err := SeedDemoCases(store)
	require.NoError(t, err)
	assert.Equal(t, 5, seeded)

	count, err := store.CountCases()
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)

	// Every seeded case starts pending with its question and answer in place.
	cases, err := store.GetAllCases()
	require.NoError(t, err)
	for _, c := range cases {
		assert.Equal(t, StatusPendingReview, c.Status)
		assert.NotEmpty(t, c.SecurityQuestion)
		assert.NotEmpty(t, c.SecurityAnswer)
		assert.NotEmpty(t, c.RawJSON)
	}
}

func TestSeedDemoCasesIsIdempotent(t *testing.T) {
	store := createDatabase(t, &conf.Settings{})

	_, err := SeedDemoCases(store)
	require.NoError(t, err)

	seeded, err := SeedDemoCases(store)
	require.NoError(t, err)
	assert.Zero(t, seeded, "second seed run must be a no-op")

	count, err := store.CountCases()
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)
}

func TestSeedSkipsPartiallyPopulatedTable(t *testing.T) {
	store := createDatabase(t, &conf.Settings{})
	insertTestCase(t, store, "Existing")

	seeded, err := SeedDemoCases(store)
	require.NoError(t, err)
	assert.Zero(t, seeded)

	count, err := store.CountCases()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
