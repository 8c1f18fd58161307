// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package model

// MonthlySpend is one point of the monthly spending series returned by
// GET /istatistikler/aylik-harcama.
type MonthlySpend struct {
	Month string  `json:"ay"`
	Total float64 `json:"toplam"`
}

// CategoryShare is one slice of the category distribution.
type CategoryShare struct {
	Category string  `json:"kategori"`
	Total    float64 `json:"toplam"`
}

// VehicleComparison is a per-vehicle cost summary used by the comparison chart.
type VehicleComparison struct {
	VehicleID int     `json:"arac_id"`
	Plate     string  `json:"plaka"`
	Total     float64 `json:"toplam"`
}

// MaintenanceDue describes how far a vehicle is from its next scheduled
// service, from GET /istatistikler/bakim-takip/{id}.
type MaintenanceDue struct {
	VehicleID    int    `json:"arac_id"`
	Plate        string `json:"plaka"`
	Odometer     int    `json:"km"`
	NextOdometer int    `json:"sonraki_bakim_km"`
	Remaining    int    `json:"kalan_km"`
	Overdue      bool   `json:"gecikti_mi"`
}

// FuelConsumption is one point of the consumption analysis series.
type FuelConsumption struct {
	Month      string  `json:"ay"`
	Liters     float64 `json:"litre"`
	Total      float64 `json:"toplam"`
	PerHundred float64 `json:"ortalama_tuketim"`
}

// StationShare is one row of the station analysis.
type StationShare struct {
	Station string  `json:"istasyon"`
	Count   int     `json:"adet"`
	Total   float64 `json:"toplam"`
}

// MaintenanceTotal is the response of GET /bakimlar/arac/{id}/toplam-maliyet.
type MaintenanceTotal struct {
	VehicleID int     `json:"arac_id"`
	Total     float64 `json:"toplam_maliyet"`
}

// ExpenseTotal is the response of GET /harcamalar/arac/{id}/toplam.
type ExpenseTotal struct {
	VehicleID int     `json:"arac_id"`
	Total     float64 `json:"toplam"`
}

// VehicleCount is the response of GET /araclar/istatistik/sayim.
type VehicleCount struct {
	Total  int `json:"toplam"`
	Active int `json:"aktif"`
}
