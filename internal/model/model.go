// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the entities exchanged with the araçtakip REST API.
// Field tags use the API's Turkish wire names; all records are owned by the
// server, the client only holds render-scoped copies.
package model

import "fmt"

// Roles a user account can carry.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Vehicle is a tracked vehicle. Plate format and year bounds are enforced
// client-side before a record is ever submitted.
type Vehicle struct {
	ID       int    `json:"id,omitempty"`
	Plate    string `json:"plaka"`
	Make     string `json:"marka"`
	Model    string `json:"model"`
	Year     int    `json:"yil"`
	Color    string `json:"renk,omitempty"`
	Odometer int    `json:"km"`
	Active   bool   `json:"aktif_mi"`
	Chassis  string `json:"sase_no,omitempty"`
	Engine   string `json:"motor_no,omitempty"`
	Notes    string `json:"notlar,omitempty"`
}

// String returns the plate plus make/model, the way vehicles are listed.
func (v Vehicle) String() string {
	return fmt.Sprintf("%s - %s %s", v.Plate, v.Make, v.Model)
}

// Maintenance is a service record linked to a vehicle.
type Maintenance struct {
	ID           int      `json:"id,omitempty"`
	VehicleID    int      `json:"arac_id"`
	Type         string   `json:"bakim_turu"`
	Date         string   `json:"tarih"`
	Odometer     int      `json:"km"`
	Cost         *float64 `json:"tutar,omitempty"`
	Location     string   `json:"servis_yeri,omitempty"`
	Description  string   `json:"aciklama,omitempty"`
	NextOdometer *int     `json:"sonraki_bakim_km,omitempty"`
}

// ExpenseCategories is the fixed set of categories the API accepts.
var ExpenseCategories = []string{
	"Sigorta", "Kasko", "Vergi", "Muayene",
	"Lastik", "Aksesuar", "Yıkama", "Otopark",
	"Ceza", "HGS/OGS", "Diğer",
}

// Expense is a categorized cost record linked to a vehicle.
type Expense struct {
	ID          int     `json:"id,omitempty"`
	VehicleID   int     `json:"arac_id"`
	Category    string  `json:"kategori"`
	Date        string  `json:"tarih"`
	Amount      float64 `json:"tutar"`
	Description string  `json:"aciklama,omitempty"`
}

// FuelTypes is the fixed set of fuel types the API accepts.
var FuelTypes = []string{"Benzin", "Dizel", "LPG", "Elektrik"}

// FuelEntry is a single refueling record. The total cost is derived from
// Liters and UnitPrice on screen and is never part of the wire payload.
type FuelEntry struct {
	ID        int     `json:"id,omitempty"`
	VehicleID int     `json:"arac_id"`
	Date      string  `json:"tarih"`
	Odometer  int     `json:"km"`
	Liters    float64 `json:"litre"`
	UnitPrice float64 `json:"fiyat"`
	FuelType  string  `json:"yakit_turu"`
	FullTank  bool    `json:"tam_depo"`
	Station   string  `json:"istasyon,omitempty"`
}

// VehicleDetail is a vehicle with its nested record collections, as returned
// by GET /araclar/{id}/detay.
type VehicleDetail struct {
	Vehicle
	Maintenance []Maintenance `json:"bakimlar"`
	Expenses    []Expense     `json:"harcamalar"`
	Fuel        []FuelEntry   `json:"yakitlar"`
}

// User is an account managed by an admin. Email is immutable after creation.
type User struct {
	ID       int    `json:"id,omitempty"`
	Email    string `json:"email"`
	FullName string `json:"ad_soyad"`
	Role     string `json:"rol"`
}

// LoginResult is the response of POST /auth/giris.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"rol"`
}
