package models

import (
	"sort"
	"time"
)

// CaseStatus tracks where a case is in its lifecycle.
type CaseStatus string

const (
	CaseStatusPending    CaseStatus = "pending"
	CaseStatusInProgress CaseStatus = "in_progress"
	CaseStatusCompleted  CaseStatus = "completed"
	CaseStatusFailed     CaseStatus = "failed"
)

// CaseDifficulty grades how demanding a case is.
type CaseDifficulty string

const (
	CaseDifficultyEasy    CaseDifficulty = "easy"
	CaseDifficultyMedium  CaseDifficulty = "medium"
	CaseDifficultyHard    CaseDifficulty = "hard"
	CaseDifficultyExtreme CaseDifficulty = "extreme"
)

// Case is a single investigation record. The id, timestamps and any field
// not supplied on create are assigned server-side.
type Case struct {
	ID               string         `json:"id"`
	UserID           string         `json:"user_id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Difficulty       CaseDifficulty `json:"difficulty"`
	Status           CaseStatus     `json:"status"`
	TimeLimitMinutes int            `json:"time_limit_minutes"`
	StressImpact     int            `json:"stress_impact"`
	ReputationReward int            `json:"reputation_reward"`
	StartedAt        *time.Time     `json:"started_at"`
	CompletedAt      *time.Time     `json:"completed_at"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	EvidenceData     *string        `json:"evidence_data"`
	CluesFound       int            `json:"clues_found"`
	TotalClues       int            `json:"total_clues"`
}

// CaseCreate is the payload for creating a case. UserID, Title, Description
// and Difficulty are required; everything else is optional and omitted from
// the request when unset.
type CaseCreate struct {
	UserID           string         `json:"user_id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Difficulty       CaseDifficulty `json:"difficulty"`
	Status           CaseStatus     `json:"status,omitempty"`
	TimeLimitMinutes *int           `json:"time_limit_minutes,omitempty"`
	StressImpact     *int           `json:"stress_impact,omitempty"`
	ReputationReward *int           `json:"reputation_reward,omitempty"`
	EvidenceData     *string        `json:"evidence_data,omitempty"`
	CluesFound       *int           `json:"clues_found,omitempty"`
	TotalClues       *int           `json:"total_clues,omitempty"`
}

// CaseUpdate is a sparse PATCH payload. Only the fields the server allows
// to change after creation are present; nil fields are left untouched.
type CaseUpdate struct {
	Status       *CaseStatus `json:"status,omitempty"`
	StartedAt    *time.Time  `json:"started_at,omitempty"`
	CompletedAt  *time.Time  `json:"completed_at,omitempty"`
	EvidenceData *string     `json:"evidence_data,omitempty"`
	CluesFound   *int        `json:"clues_found,omitempty"`
}

// SortCasesNewestFirst orders cases for display, most recently created on
// top. The input slice is sorted in place.
func SortCasesNewestFirst(cases []Case) {
	sort.SliceStable(cases, func(i, j int) bool {
		return cases[i].CreatedAt.After(cases[j].CreatedAt)
	})
}
