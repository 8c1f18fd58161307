// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"fmt"

	"github.com/aractakip/aractakip/internal/model"
)

// MaintenanceByVehicle lists maintenance records for a vehicle
// (GET /bakimlar/arac/{id}).
func (c *Client) MaintenanceByVehicle(ctx context.Context, vehicleID int) ([]model.Maintenance, error) {
	var out []model.Maintenance
	err := c.get(ctx, fmt.Sprintf("/bakimlar/arac/%d", vehicleID), nil, &out)
	return out, err
}

// CreateMaintenance creates a maintenance record (POST /bakimlar).
func (c *Client) CreateMaintenance(ctx context.Context, m model.Maintenance) (model.Maintenance, error) {
	var out model.Maintenance
	err := c.post(ctx, "/bakimlar", m, &out)
	return out, err
}

// MaintenanceTotalCost returns the accumulated maintenance cost of a vehicle
// (GET /bakimlar/arac/{id}/toplam-maliyet).
func (c *Client) MaintenanceTotalCost(ctx context.Context, vehicleID int) (model.MaintenanceTotal, error) {
	var out model.MaintenanceTotal
	err := c.get(ctx, fmt.Sprintf("/bakimlar/arac/%d/toplam-maliyet", vehicleID), nil, &out)
	return out, err
}
