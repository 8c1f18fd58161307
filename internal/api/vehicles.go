// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"fmt"

	"github.com/aractakip/aractakip/internal/model"
)

// Vehicles lists all vehicles (GET /araclar).
func (c *Client) Vehicles(ctx context.Context) ([]model.Vehicle, error) {
	var out []model.Vehicle
	err := c.get(ctx, "/araclar", nil, &out)
	return out, err
}

// Vehicle fetches a single vehicle (GET /araclar/{id}).
func (c *Client) Vehicle(ctx context.Context, id int) (model.Vehicle, error) {
	var out model.Vehicle
	err := c.get(ctx, fmt.Sprintf("/araclar/%d", id), nil, &out)
	return out, err
}

// VehicleDetail fetches a vehicle with its nested maintenance, expense and
// fuel collections (GET /araclar/{id}/detay).
func (c *Client) VehicleDetail(ctx context.Context, id int) (model.VehicleDetail, error) {
	var out model.VehicleDetail
	err := c.get(ctx, fmt.Sprintf("/araclar/%d/detay", id), nil, &out)
	return out, err
}

// CreateVehicle creates a vehicle (POST /araclar).
func (c *Client) CreateVehicle(ctx context.Context, v model.Vehicle) (model.Vehicle, error) {
	var out model.Vehicle
	err := c.post(ctx, "/araclar", v, &out)
	return out, err
}

// UpdateVehicle replaces a vehicle record (PUT /araclar/{id}).
func (c *Client) UpdateVehicle(ctx context.Context, id int, v model.Vehicle) (model.Vehicle, error) {
	var out model.Vehicle
	err := c.put(ctx, fmt.Sprintf("/araclar/%d", id), v, &out)
	return out, err
}

// DeleteVehicle removes a vehicle (DELETE /araclar/{id}).
func (c *Client) DeleteVehicle(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/araclar/%d", id))
}

type odometerRequest struct {
	Odometer int `json:"km"`
}

// UpdateOdometer patches a vehicle's odometer reading
// (PATCH /araclar/{id}/kilometre).
func (c *Client) UpdateOdometer(ctx context.Context, id, km int) error {
	return c.patch(ctx, fmt.Sprintf("/araclar/%d/kilometre", id), odometerRequest{Odometer: km}, nil)
}

// VehicleCount returns vehicle counts (GET /araclar/istatistik/sayim).
func (c *Client) VehicleCount(ctx context.Context) (model.VehicleCount, error) {
	var out model.VehicleCount
	err := c.get(ctx, "/araclar/istatistik/sayim", nil, &out)
	return out, err
}
