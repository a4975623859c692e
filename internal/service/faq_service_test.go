package service

import (
	"testing"

	"interview_prep_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListGroupedSeedsOnce(t *testing.T) {
	db := newTestDB(t)
	svc := NewFAQService(repository.NewFAQRepository(db))

	grouped, err := svc.ListGrouped()
	require.NoError(t, err)

	var total int
	for _, entries := range grouped {
		total += len(entries)
	}
	assert.Equal(t, 10, total)
	assert.Len(t, grouped["General"], 2)
	assert.Len(t, grouped["Tests"], 2)
	assert.Len(t, grouped["Account"], 1)

	// Listing again must not re-seed.
	grouped, err = svc.ListGrouped()
	require.NoError(t, err)
	total = 0
	for _, entries := range grouped {
		total += len(entries)
	}
	assert.Equal(t, 10, total)
}

func TestSearchMatchesQuestionAndAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := NewFAQService(repository.NewFAQRepository(db))

	_, err := svc.ListGrouped()
	require.NoError(t, err)

	results, err := svc.Search("streak")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Account", results[0].Category)

	results, err = svc.Search("no such topic anywhere")
	require.NoError(t, err)
	assert.Empty(t, results)
}
