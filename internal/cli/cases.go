package cli

import (
	"context"
	"fmt"

	"github.com/nightshift/casefile/internal/models"
)

// list fetches the visible cases, replaces the in-memory cache, and prints
// them newest-first.
func (a *App) list(ctx context.Context) {
	cases, err := a.cases.List(ctx, a.store.Token())
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load cases: %v\n", err)
		return
	}

	models.SortCasesNewestFirst(cases)
	a.caseList = cases

	if len(cases) == 0 {
		fmt.Fprintln(a.out, "No cases yet. Use 'create' to open one.")
		return
	}
	for _, c := range cases {
		a.printCase(c)
	}
}

// create prompts for the required fields, posts the new case, and prepends
// the server-assigned record to the cached list without re-fetching.
func (a *App) create(ctx context.Context) {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	difficulty, err := GetSimpleText(a.reader, "Difficulty (easy/medium/hard/extreme)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	totalClues, err := GetOptionalInt(a.reader, "Total clues (empty for default)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	payload := models.CaseCreate{
		UserID:      a.store.User().ID,
		Title:       title,
		Description: description,
		Difficulty:  models.CaseDifficulty(difficulty),
		Status:      models.CaseStatusPending,
		TotalClues:  totalClues,
	}

	created, err := a.cases.Create(ctx, a.store.Token(), payload)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to create case: %v\n", err)
		return
	}

	a.caseList = append([]models.Case{*created}, a.caseList...)
	fmt.Fprintf(a.out, "Case %s created\n", created.ID)
	a.printCase(*created)
}

// update patches a single case with only the fields the user filled in and
// swaps the updated record into the cached list.
func (a *App) update(ctx context.Context, id string) {
	status, err := GetSimpleText(a.reader, "New status (empty to keep)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	cluesFound, err := GetOptionalInt(a.reader, "Clues found (empty to keep)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	evidence, err := GetSimpleText(a.reader, "Evidence notes (empty to keep)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	var payload models.CaseUpdate
	if status != "" {
		st := models.CaseStatus(status)
		payload.Status = &st
	}
	payload.CluesFound = cluesFound
	if evidence != "" {
		payload.EvidenceData = &evidence
	}

	updated, err := a.cases.Update(ctx, a.store.Token(), id, payload)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to update case: %v\n", err)
		return
	}

	for i := range a.caseList {
		if a.caseList[i].ID == updated.ID {
			a.caseList[i] = *updated
			break
		}
	}
	fmt.Fprintf(a.out, "Case %s updated\n", updated.ID)
	a.printCase(*updated)
}

func (a *App) printCase(c models.Case) {
	fmt.Fprintf(a.out, "[%s] %s | %s/%s | clues %d/%d | created %s\n",
		c.ID, c.Title, c.Difficulty, c.Status, c.CluesFound, c.TotalClues,
		c.CreatedAt.Format("2006-01-02 15:04"))
}
