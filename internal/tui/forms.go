// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

// Per-entity form constructors. Each one wires a schema to its create call
// and names the cached collections a successful submit invalidates.
package tui

import (
	"context"

	"github.com/aractakip/aractakip/internal/api"
	"github.com/aractakip/aractakip/internal/cache"
	"github.com/aractakip/aractakip/internal/form"
)

func newVehicleForm(client *api.Client, data *cache.Cache) entryFormModel {
	return newEntryForm(client, data, form.VehicleSchema(), "title.new_vehicle",
		func(ctx context.Context, values map[string]string) error {
			_, err := client.CreateVehicle(ctx, form.VehiclePayload(values))
			return err
		},
		[]string{cache.KeyVehicles},
	)
}

func newMaintenanceForm(client *api.Client, data *cache.Cache) entryFormModel {
	return newEntryForm(client, data, form.MaintenanceSchema(), "title.new_maintenance",
		func(ctx context.Context, values map[string]string) error {
			_, err := client.CreateMaintenance(ctx, form.MaintenancePayload(values))
			return err
		},
		// A maintenance record can move the vehicle's odometer, so the
		// vehicle list goes stale too.
		[]string{cache.KeyMaintenance, cache.KeyVehicles},
	)
}

func newExpenseForm(client *api.Client, data *cache.Cache) entryFormModel {
	return newEntryForm(client, data, form.ExpenseSchema(), "title.new_expense",
		func(ctx context.Context, values map[string]string) error {
			_, err := client.CreateExpense(ctx, form.ExpensePayload(values))
			return err
		},
		[]string{cache.KeyExpenses},
	)
}

func newFuelForm(client *api.Client, data *cache.Cache) entryFormModel {
	return newEntryForm(client, data, form.FuelSchema(), "title.new_fuel",
		func(ctx context.Context, values map[string]string) error {
			_, err := client.CreateFuelEntry(ctx, form.FuelPayload(values))
			return err
		},
		[]string{cache.KeyFuel, cache.KeyVehicles},
	).withDerived("common.total", func(values map[string]string) string {
		return form.FuelTotalDisplay(values["litre"], values["fiyat"])
	})
}

func newRegisterForm(client *api.Client, data *cache.Cache) entryFormModel {
	return newEntryForm(client, data, form.RegisterSchema(), "title.register",
		func(ctx context.Context, values map[string]string) error {
			return client.Register(ctx, values["email"], values["ad_soyad"], values["sifre"])
		},
		nil,
	)
}

func newUserForm(client *api.Client, data *cache.Cache) entryFormModel {
	return newEntryForm(client, data, form.UserSchema(), "title.new_user",
		func(ctx context.Context, values map[string]string) error {
			_, err := client.CreateUser(ctx, values["email"], values["ad_soyad"], values["sifre"], values["rol"])
			return err
		},
		[]string{cache.KeyUsers},
	)
}

func newPasswordForm(client *api.Client, data *cache.Cache) entryFormModel {
	return newEntryForm(client, data, form.PasswordChangeSchema(), "title.change_password",
		func(ctx context.Context, values map[string]string) error {
			return client.ChangePassword(ctx, values["eski_sifre"], values["yeni_sifre"])
		},
		nil,
	)
}
