package hubapi

import (
	"context"
	"fmt"
	"net/http"
)

// NeedsClient covers CRUD over the needs resource. Ownership of a need is
// enforced server-side; this client assumes but does not verify it.
type NeedsClient struct {
	c *Client
}

// Create posts a new need owned by the authenticated volunteer.
func (n *NeedsClient) Create(ctx context.Context, input *NeedCreate) (*Need, error) {
	var created Need
	if err := n.c.doJSON(ctx, "createNeed", http.MethodPost, "/needs", nil, input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// List fetches a page of needs.
func (n *NeedsClient) List(ctx context.Context, page Page) ([]Need, error) {
	var needs []Need
	if err := n.c.doJSON(ctx, "listNeeds", http.MethodGet, "/needs", pageQuery(page), nil, &needs); err != nil {
		return nil, err
	}
	return needs, nil
}

// Get fetches one need by numeric ID.
func (n *NeedsClient) Get(ctx context.Context, id int) (*Need, error) {
	var need Need
	if err := n.c.doJSON(ctx, "getNeed", http.MethodGet, fmt.Sprintf("/needs/%d", id), nil, nil, &need); err != nil {
		return nil, err
	}
	return &need, nil
}

// Update replaces a need's fields.
func (n *NeedsClient) Update(ctx context.Context, id int, input *NeedCreate) (*Need, error) {
	var updated Need
	if err := n.c.doJSON(ctx, "updateNeed", http.MethodPut, fmt.Sprintf("/needs/%d", id), nil, input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a need.
func (n *NeedsClient) Delete(ctx context.Context, id int) error {
	return n.c.doJSON(ctx, "deleteNeed", http.MethodDelete, fmt.Sprintf("/needs/%d", id), nil, nil, nil)
}
