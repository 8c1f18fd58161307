// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"fmt"

	"github.com/aractakip/aractakip/internal/model"
)

type createUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"ad_soyad"`
	Password string `json:"sifre"`
	Role     string `json:"rol"`
}

// Users lists all accounts; admin only (GET /kullanicilar).
func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var out []model.User
	err := c.get(ctx, "/kullanicilar", nil, &out)
	return out, err
}

// CreateUser creates an account; admin only (POST /kullanicilar).
func (c *Client) CreateUser(ctx context.Context, email, fullName, password, role string) (model.User, error) {
	var out model.User
	err := c.post(ctx, "/kullanicilar", createUserRequest{
		Email:    email,
		FullName: fullName,
		Password: password,
		Role:     role,
	}, &out)
	return out, err
}

// DeleteUser removes an account; admin only (DELETE /kullanicilar/{id}).
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/kullanicilar/%d", id))
}
