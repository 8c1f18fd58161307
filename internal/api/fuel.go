// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"fmt"

	"github.com/aractakip/aractakip/internal/model"
)

// FuelByVehicle lists fuel records for a vehicle (GET /yakit/arac/{id}).
func (c *Client) FuelByVehicle(ctx context.Context, vehicleID int) ([]model.FuelEntry, error) {
	var out []model.FuelEntry
	err := c.get(ctx, fmt.Sprintf("/yakit/arac/%d", vehicleID), nil, &out)
	return out, err
}

// CreateFuelEntry creates a fuel record (POST /yakit). The displayed total
// is derived client-side and is not part of the payload.
func (c *Client) CreateFuelEntry(ctx context.Context, f model.FuelEntry) (model.FuelEntry, error) {
	var out model.FuelEntry
	err := c.post(ctx, "/yakit", f, &out)
	return out, err
}

// FuelConsumptionAnalysis returns the consumption series for a vehicle
// (GET /yakit/arac/{id}/tuketim-analizi).
func (c *Client) FuelConsumptionAnalysis(ctx context.Context, vehicleID int) ([]model.FuelConsumption, error) {
	var out []model.FuelConsumption
	err := c.get(ctx, fmt.Sprintf("/yakit/arac/%d/tuketim-analizi", vehicleID), nil, &out)
	return out, err
}

// FuelStationAnalysis returns the per-station breakdown for a vehicle
// (GET /yakit/arac/{id}/istasyon-analizi).
func (c *Client) FuelStationAnalysis(ctx context.Context, vehicleID int) ([]model.StationShare, error) {
	var out []model.StationShare
	err := c.get(ctx, fmt.Sprintf("/yakit/arac/%d/istasyon-analizi", vehicleID), nil, &out)
	return out, err
}
