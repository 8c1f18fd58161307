// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import "github.com/aractakip/aractakip/internal/model"

// RegisterSchema builds the account registration form.
func RegisterSchema() Schema {
	return Schema{
		Name: "kayit",
		Fields: []Field{
			{
				Name: "email", Label: "field.email", Kind: Text,
				Rules: []Rule{Required("field.email")},
			},
			{
				Name: "ad_soyad", Label: "field.ad_soyad", Kind: Text,
				Rules: []Rule{Required("field.ad_soyad"), MinLen("field.ad_soyad", 2)},
			},
			{
				Name: "sifre", Label: "field.sifre", Kind: Secret,
				Rules: []Rule{Required("field.sifre"), MinLen("field.sifre", 6)},
			},
		},
	}
}

// UserSchema builds the admin "new user" form.
func UserSchema() Schema {
	roles := []string{model.RoleAdmin, model.RoleUser}
	return Schema{
		Name: "kullanici",
		Fields: []Field{
			{
				Name: "email", Label: "field.email", Kind: Text,
				Rules: []Rule{Required("field.email")},
			},
			{
				Name: "ad_soyad", Label: "field.ad_soyad", Kind: Text,
				Rules: []Rule{Required("field.ad_soyad")},
			},
			{
				Name: "sifre", Label: "field.sifre", Kind: Secret,
				Rules: []Rule{Required("field.sifre"), MinLen("field.sifre", 6)},
			},
			{
				Name: "rol", Label: "field.rol", Kind: Select,
				Default: model.RoleUser, Options: roles,
				Rules: []Rule{
					Required("field.rol"),
					OneOf(roles, "form.select_required", L("field.rol")),
				},
			},
		},
	}
}

// PasswordChangeSchema builds the change-password form.
func PasswordChangeSchema() Schema {
	return Schema{
		Name: "sifre-degistir",
		Fields: []Field{
			{
				Name: "eski_sifre", Label: "field.eski_sifre", Kind: Secret,
				Rules: []Rule{Required("field.eski_sifre")},
			},
			{
				Name: "yeni_sifre", Label: "field.yeni_sifre", Kind: Secret,
				Rules: []Rule{Required("field.yeni_sifre"), MinLen("field.yeni_sifre", 6)},
			},
		},
	}
}
