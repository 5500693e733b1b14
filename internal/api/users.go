package api

import (
	"context"
	"fmt"
)

// Login authenticates with the backend. It does not invalidate any
// tag: nothing cached before a login belongs to the previous identity,
// callers reset state via the session store instead.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.send(ctx, "POST", "/users/login/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Users(ctx context.Context) (*UsersResponse, error) {
	var out UsersResponse
	if err := c.get(ctx, TagUser, "/users/getUsers/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.send(ctx, "POST", "/users/register/", req, &out, TagUser); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, req UpdateUserRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.send(ctx, "PUT", "/users/update/", req, &out, TagUser); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int) (*MessageResponse, error) {
	var out MessageResponse
	req := struct {
		ID int `json:"id"`
	}{ID: id}
	if err := c.send(ctx, "DELETE", "/users/delete/", req, &out, TagUser); err != nil {
		return nil, err
	}
	return &out, nil
}

// Roles lists all roles, active or not.
func (c *Client) Roles(ctx context.Context) ([]Role, error) {
	var out []Role
	if err := c.get(ctx, TagRoles, "/users/roles/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRole adds a role by name. The server assigns the id and the
// is_active default.
func (c *Client) CreateRole(ctx context.Context, name string) (*CreateRoleResponse, error) {
	var out CreateRoleResponse
	req := struct {
		Name string `json:"name"`
	}{Name: name}
	if err := c.send(ctx, "POST", "/users/roles/add/", req, &out, TagRoles); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetRoleActive flips a role's active flag.
func (c *Client) SetRoleActive(ctx context.Context, roleID int, active bool) (*Role, error) {
	var out Role
	req := struct {
		IsActive bool `json:"is_active"`
	}{IsActive: active}
	path := fmt.Sprintf("/users/roles/%d/active/", roleID)
	if err := c.send(ctx, "PATCH", path, req, &out, TagRoles); err != nil {
		return nil, err
	}
	return &out, nil
}
