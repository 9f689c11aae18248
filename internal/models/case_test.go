package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortCasesNewestFirst(t *testing.T) {
	now := time.Now()
	cases := []Case{
		{ID: "a", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "b", CreatedAt: now},
		{ID: "c", CreatedAt: now.Add(-time.Hour)},
	}

	SortCasesNewestFirst(cases)

	assert.Equal(t, []string{"b", "c", "a"}, []string{cases[0].ID, cases[1].ID, cases[2].ID})
}

func TestCaseUpdate_MarshalOmitsNilFields(t *testing.T) {
	clues := 2
	raw, err := json.Marshal(CaseUpdate{CluesFound: &clues})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, map[string]any{"clues_found": float64(2)}, m)
}

func TestCase_UnmarshalNullableFields(t *testing.T) {
	raw := `{
		"id": "c1",
		"user_id": "u1",
		"title": "t",
		"description": "d",
		"difficulty": "hard",
		"status": "in_progress",
		"started_at": "2026-02-03T10:00:00Z",
		"completed_at": null,
		"created_at": "2026-02-03T09:00:00Z",
		"updated_at": "2026-02-03T10:00:00Z",
		"evidence_data": null,
		"clues_found": 1,
		"total_clues": 4
	}`

	var c Case
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	require.NotNil(t, c.StartedAt)
	assert.Nil(t, c.CompletedAt)
	assert.Nil(t, c.EvidenceData)
	assert.Equal(t, CaseDifficultyHard, c.Difficulty)
}
