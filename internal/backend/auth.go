package backend

import (
	"context"
	"net/http"
)

// User is the backend's user profile blob as stored in the session cookie
type User struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email,omitempty"`
	Role        string `json:"role,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// RegisterPayload is the body of registration requests
type RegisterPayload struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// LoginPayload is the body of login requests
type LoginPayload struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// LoginResult pairs the opaque bearer token with the authenticated profile
type LoginResult struct {
	Token string
	User  User
}

// Register creates a new wallet account
func (c *Client) Register(ctx context.Context, payload RegisterPayload) (*User, error) {
	const fallback = "Registration failed"

	env, err := c.doJSON(ctx, http.MethodPost, endpointAuthRegister, nil, payload, nil, fallback)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeData(env, &user, fallback); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates by phone number and password
func (c *Client) Login(ctx context.Context, payload LoginPayload) (*LoginResult, error) {
	const fallback = "Login failed"

	env, err := c.doJSON(ctx, http.MethodPost, endpointAuthLogin, nil, payload, nil, fallback)
	if err != nil {
		return nil, err
	}
	if env.Token == "" {
		return nil, &APIError{Message: fallback}
	}

	result := LoginResult{Token: env.Token}
	if err := decodeData(env, &result.User, fallback); err != nil {
		return nil, err
	}
	return &result, nil
}

// RequestPasswordReset asks the backend to start a password reset for the
// given phone number
func (c *Client) RequestPasswordReset(ctx context.Context, phoneNumber string) error {
	const fallback = "Password reset request failed"

	body := map[string]string{"phoneNumber": phoneNumber}
	_, err := c.doJSON(ctx, http.MethodPost, endpointAuthForgotPassword, nil, body, nil, fallback)
	return err
}

// ResetPassword completes a password reset with the token the user received
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	const fallback = "Password reset failed"

	body := map[string]string{"token": token, "password": password}
	_, err := c.doJSON(ctx, http.MethodPost, endpointAuthResetPassword, nil, body, nil, fallback)
	return err
}
