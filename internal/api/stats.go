// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/aractakip/aractakip/internal/model"
)

// MonthlySpend returns the monthly spending series, optionally scoped to one
// vehicle (GET /istatistikler/aylik-harcama).
func (c *Client) MonthlySpend(ctx context.Context, vehicleID, months int) ([]model.MonthlySpend, error) {
	query := url.Values{"ay_sayisi": {strconv.Itoa(months)}}
	if vehicleID > 0 {
		query.Set("arac_id", strconv.Itoa(vehicleID))
	}
	var out []model.MonthlySpend
	err := c.get(ctx, "/istatistikler/aylik-harcama", query, &out)
	return out, err
}

// CategoryDistribution returns the expense category distribution
// (GET /istatistikler/kategori-dagilim).
func (c *Client) CategoryDistribution(ctx context.Context, vehicleID int) ([]model.CategoryShare, error) {
	var query url.Values
	if vehicleID > 0 {
		query = url.Values{"arac_id": {strconv.Itoa(vehicleID)}}
	}
	var out []model.CategoryShare
	err := c.get(ctx, "/istatistikler/kategori-dagilim", query, &out)
	return out, err
}

// FuelConsumption returns the fuel consumption series for a vehicle
// (GET /istatistikler/yakit-tuketim).
func (c *Client) FuelConsumption(ctx context.Context, vehicleID, months int) ([]model.FuelConsumption, error) {
	query := url.Values{
		"arac_id":   {strconv.Itoa(vehicleID)},
		"ay_sayisi": {strconv.Itoa(months)},
	}
	var out []model.FuelConsumption
	err := c.get(ctx, "/istatistikler/yakit-tuketim", query, &out)
	return out, err
}

// VehicleComparison returns cost totals across all vehicles
// (GET /istatistikler/arac-karsilastirma).
func (c *Client) VehicleComparison(ctx context.Context) ([]model.VehicleComparison, error) {
	var out []model.VehicleComparison
	err := c.get(ctx, "/istatistikler/arac-karsilastirma", nil, &out)
	return out, err
}

// MaintenanceDue returns the next-service tracking data for a vehicle
// (GET /istatistikler/bakim-takip/{id}).
func (c *Client) MaintenanceDue(ctx context.Context, vehicleID int) (model.MaintenanceDue, error) {
	var out model.MaintenanceDue
	err := c.get(ctx, fmt.Sprintf("/istatistikler/bakim-takip/%d", vehicleID), nil, &out)
	return out, err
}
