package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// AdminUserPayload carries the admin create/update user form. Password is
// blank on updates that leave it unchanged.
type AdminUserPayload struct {
	FullName    string
	PhoneNumber string
	Email       string
	Role        string
	Password    string
	Avatar      *Upload
}

// UserPage is one page of the admin user listing
type UserPage struct {
	Users      []User `json:"users"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	Total      int    `json:"total"`
	Limit      int    `json:"limit"`
}

func (p AdminUserPayload) fields() map[string]string {
	return map[string]string{
		"fullName":    p.FullName,
		"phoneNumber": p.PhoneNumber,
		"email":       p.Email,
		"role":        p.Role,
		"password":    p.Password,
	}
}

// CreateUser creates a user on behalf of an administrator
func (c *Client) CreateUser(ctx context.Context, payload AdminUserPayload) (*User, error) {
	const fallback = "Create user failed"

	env, err := c.doMultipart(ctx, http.MethodPost, endpointAdminUsers, payload.fields(), "imageUrl", payload.Avatar, fallback)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeData(env, &user, fallback); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers retrieves a page of users, optionally filtered by a search term
// and role
func (c *Client) ListUsers(ctx context.Context, page, limit int, search, role string) (*UserPage, error) {
	const fallback = "Get all users failed"

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if search != "" {
		query.Set("search", search)
	}
	if role != "" {
		query.Set("role", role)
	}

	env, err := c.doJSON(ctx, http.MethodGet, endpointAdminUsers, query, nil, nil, fallback)
	if err != nil {
		return nil, err
	}

	var result UserPage
	if err := decodeData(env, &result, fallback); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetUser retrieves a single user by ID
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	const fallback = "Get user failed"

	env, err := c.doJSON(ctx, http.MethodGet, endpointAdminUsers+"/"+url.PathEscape(id), nil, nil, nil, fallback)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeData(env, &user, fallback); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates a user by ID
func (c *Client) UpdateUser(ctx context.Context, id string, payload AdminUserPayload) (*User, error) {
	const fallback = "Update user failed"

	env, err := c.doMultipart(ctx, http.MethodPut, endpointAdminUsers+"/"+url.PathEscape(id), payload.fields(), "imageUrl", payload.Avatar, fallback)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeData(env, &user, fallback); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user by ID
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	const fallback = "Delete user failed"

	_, err := c.doJSON(ctx, http.MethodDelete, endpointAdminUsers+"/"+url.PathEscape(id), nil, nil, nil, fallback)
	return err
}
