package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

type userEnvelope[T any] struct {
	User T `json:"user"`
}

// Login POST /login
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/login", userEnvelope[Credentials]{User: creds}, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: login response has no token", ErrInvalidResponse)
	}
	return &resp, nil
}

// Signup POST /users
func (c *Client) Signup(ctx context.Context, payload SignupPayload) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPost, "/users", userEnvelope[SignupPayload]{User: payload}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile GET /profile
func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, "/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser PUT /users/{id}
func (c *Client) UpdateUser(ctx context.Context, userID string, payload ProfilePayload) (*User, error) {
	var user User
	path := "/users/" + url.PathEscape(userID)
	if err := c.doJSON(ctx, http.MethodPut, path, userEnvelope[ProfilePayload]{User: payload}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateAvatar PATCH /users/update_avatar (multipart, поле profile_image)
func (c *Client) UpdateAvatar(ctx context.Context, filename string, image io.Reader) (*User, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("profile_image", filename)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create form file: %v", ErrInternal, err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("%w: failed to copy image: %v", ErrInternal, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%w: failed to close multipart writer: %v", ErrInternal, err)
	}

	req, err := c.newRequest(ctx, http.MethodPatch, "/users/update_avatar", nil)
	if err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(&buf)
	req.ContentLength = int64(buf.Len())
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: failed to decode avatar response: %v", ErrInvalidResponse, err)
	}
	return &user, nil
}
