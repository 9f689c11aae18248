package api

import (
	"context"
	"net/http"

	"github.com/nightshift/casefile/internal/models"
)

// CaseAPI defines the case CRUD operations of the remote API. All calls
// require a bearer token; the server decides which cases are visible.
// No validation happens client-side; errors propagate unchanged.
type CaseAPI interface {
	List(ctx context.Context, token string) ([]models.Case, error)
	Create(ctx context.Context, token string, payload models.CaseCreate) (*models.Case, error)
	Update(ctx context.Context, token, id string, payload models.CaseUpdate) (*models.Case, error)
}

// CaseClient is the concrete CaseAPI backed by a shared Client.
type CaseClient struct {
	c *Client
}

func NewCaseClient(c *Client) *CaseClient {
	return &CaseClient{c: c}
}

func (cc *CaseClient) List(ctx context.Context, token string) ([]models.Case, error) {
	var cases []models.Case
	err := cc.c.Do(ctx, Request{
		Path:  "/cases/",
		Token: token,
	}, &cases)
	if err != nil {
		return nil, err
	}
	return cases, nil
}

func (cc *CaseClient) Create(ctx context.Context, token string, payload models.CaseCreate) (*models.Case, error) {
	var created models.Case
	err := cc.c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/cases/",
		Token:  token,
		Body:   payload,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (cc *CaseClient) Update(ctx context.Context, token, id string, payload models.CaseUpdate) (*models.Case, error) {
	var updated models.Case
	err := cc.c.Do(ctx, Request{
		Method: http.MethodPatch,
		Path:   "/cases/" + id,
		Token:  token,
		Body:   payload,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
