// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"

	"github.com/aractakip/aractakip/internal/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"sifre"`
}

type registerRequest struct {
	Email    string `json:"email"`
	FullName string `json:"ad_soyad"`
	Password string `json:"sifre"`
}

type changePasswordRequest struct {
	OldPassword string `json:"eski_sifre"`
	NewPassword string `json:"yeni_sifre"`
}

// Login authenticates against POST /auth/giris and stores the returned
// credential and role. A successful login re-arms the auth-expired trigger.
func (c *Client) Login(ctx context.Context, email, password string) (model.LoginResult, error) {
	var res model.LoginResult
	if err := c.post(ctx, "/auth/giris", loginRequest{Email: email, Password: password}, &res); err != nil {
		return res, err
	}
	if res.AccessToken != "" {
		c.session.SetCredentials(res.AccessToken, res.Role)
		c.expired.Store(false)
	}
	return res, nil
}

// Register creates an account via POST /auth/kayit. It does not sign in.
func (c *Client) Register(ctx context.Context, email, fullName, password string) error {
	return c.post(ctx, "/auth/kayit", registerRequest{Email: email, FullName: fullName, Password: password}, nil)
}

// Logout clears the stored credential and role. The theme preference is a
// separate key and survives.
func (c *Client) Logout() {
	c.session.Clear()
}

// Me returns the signed-in user's profile.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	var u model.User
	err := c.get(ctx, "/auth/me", nil, &u)
	return u, err
}

// UpdateMe updates the signed-in user's profile. Email is immutable
// server-side and is ignored if sent.
func (c *Client) UpdateMe(ctx context.Context, u model.User) (model.User, error) {
	var out model.User
	err := c.put(ctx, "/auth/me", u, &out)
	return out, err
}

// ChangePassword changes the signed-in user's password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return c.put(ctx, "/auth/sifre-degistir", changePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}, nil)
}
