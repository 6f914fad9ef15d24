package backend

import (
	"context"
	"net/http"
)

// ProfileUpdate carries the self-service profile changes. Blank fields are
// left unchanged; Avatar is optional.
type ProfileUpdate struct {
	FullName string
	Password string
	Avatar   *Upload
}

// UpdateProfile updates the authenticated user's profile. The backend
// expects multipart form data because of the optional avatar upload.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error) {
	const fallback = "Update profile failed"

	fields := map[string]string{
		"fullName": update.FullName,
		"password": update.Password,
	}

	env, err := c.doMultipart(ctx, http.MethodPut, endpointProfileUpdate, fields, "imageUrl", update.Avatar, fallback)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeData(env, &user, fallback); err != nil {
		return nil, err
	}
	return &user, nil
}
