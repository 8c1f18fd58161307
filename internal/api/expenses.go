// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/aractakip/aractakip/internal/model"
)

// ExpensesByVehicle lists expense records for a vehicle, optionally filtered
// by category (GET /harcamalar/arac/{id}?kategori=).
func (c *Client) ExpensesByVehicle(ctx context.Context, vehicleID int, category string) ([]model.Expense, error) {
	var query url.Values
	if category != "" {
		query = url.Values{"kategori": {category}}
	}
	var out []model.Expense
	err := c.get(ctx, fmt.Sprintf("/harcamalar/arac/%d", vehicleID), query, &out)
	return out, err
}

// CreateExpense creates an expense record (POST /harcamalar).
func (c *Client) CreateExpense(ctx context.Context, e model.Expense) (model.Expense, error) {
	var out model.Expense
	err := c.post(ctx, "/harcamalar", e, &out)
	return out, err
}

// ExpenseTotal returns the accumulated expenses of a vehicle
// (GET /harcamalar/arac/{id}/toplam).
func (c *Client) ExpenseTotal(ctx context.Context, vehicleID int) (model.ExpenseTotal, error) {
	var out model.ExpenseTotal
	err := c.get(ctx, fmt.Sprintf("/harcamalar/arac/%d/toplam", vehicleID), nil, &out)
	return out, err
}

// ExpenseCategoryAnalysis returns the per-category breakdown for a vehicle
// (GET /harcamalar/arac/{id}/kategori-analizi).
func (c *Client) ExpenseCategoryAnalysis(ctx context.Context, vehicleID int) ([]model.CategoryShare, error) {
	var out []model.CategoryShare
	err := c.get(ctx, fmt.Sprintf("/harcamalar/arac/%d/kategori-analizi", vehicleID), nil, &out)
	return out, err
}
