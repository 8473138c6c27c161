package hubapi

import (
	"context"
	"fmt"
	"net/http"
)

// VolunteersClient covers CRUD over the volunteers resource. List, Get,
// Update and Delete require a manager session upstream; the backend is the
// authority on authorization.
type VolunteersClient struct {
	c *Client
}

// Create adds a volunteer (manager action).
func (v *VolunteersClient) Create(ctx context.Context, input *VolunteerCreate) (*Volunteer, error) {
	var created Volunteer
	if err := v.c.doJSON(ctx, "createVolunteer", http.MethodPost, "/volunteers", nil, input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// List fetches a page of the volunteer roster.
func (v *VolunteersClient) List(ctx context.Context, page Page) ([]Volunteer, error) {
	var volunteers []Volunteer
	if err := v.c.doJSON(ctx, "listVolunteers", http.MethodGet, "/volunteers", pageQuery(page), nil, &volunteers); err != nil {
		return nil, err
	}
	return volunteers, nil
}

// Get fetches one volunteer by numeric ID.
func (v *VolunteersClient) Get(ctx context.Context, id int) (*Volunteer, error) {
	var volunteer Volunteer
	if err := v.c.doJSON(ctx, "getVolunteer", http.MethodGet, fmt.Sprintf("/volunteers/%d", id), nil, nil, &volunteer); err != nil {
		return nil, err
	}
	return &volunteer, nil
}

// Update replaces a volunteer's profile fields.
func (v *VolunteersClient) Update(ctx context.Context, id int, input *VolunteerCreate) (*Volunteer, error) {
	var updated Volunteer
	if err := v.c.doJSON(ctx, "updateVolunteer", http.MethodPut, fmt.Sprintf("/volunteers/%d", id), nil, input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a volunteer.
func (v *VolunteersClient) Delete(ctx context.Context, id int) error {
	return v.c.doJSON(ctx, "deleteVolunteer", http.MethodDelete, fmt.Sprintf("/volunteers/%d", id), nil, nil, nil)
}
