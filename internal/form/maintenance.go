// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"time"

	"github.com/aractakip/aractakip/internal/model"
)

// today returns the default value for date fields.
func today() string {
	return time.Now().Format("2006-01-02")
}

// MaintenanceSchema builds the maintenance entry form.
func MaintenanceSchema() Schema {
	return Schema{
		Name: "bakim",
		Fields: []Field{
			{
				Name: "arac_id", Label: "field.arac", Kind: Select,
				Rules: []Rule{SelectRequired("field.arac")},
			},
			{
				Name: "bakim_turu", Label: "field.bakim_turu", Kind: Text,
				Rules: []Rule{Required("field.bakim_turu")},
			},
			{
				Name: "tarih", Label: "field.tarih", Kind: Date, Default: today(),
				Rules: []Rule{Required("field.tarih"), DateISO()},
			},
			{
				Name: "km", Label: "field.km", Kind: IntField, Default: "0",
				Rules: []Rule{
					Required("field.km"),
					Numeric("field.km"),
					Integer("field.km"),
					IntMin(0, "form.non_negative", L("field.km")),
				},
			},
			{
				Name: "tutar", Label: "field.tutar", Kind: FloatField, Default: "0",
				Rules: []Rule{
					Numeric("field.tutar"),
					FloatMin(0, "form.non_negative", L("field.tutar")),
				},
			},
			{Name: "servis_yeri", Label: "field.servis_yeri", Kind: Text},
			{
				Name: "aciklama", Label: "field.aciklama", Kind: Text,
				Rules: []Rule{MaxLen("field.aciklama", 500)},
			},
			{
				Name: "sonraki_bakim_km", Label: "field.sonraki_bakim_km", Kind: IntField,
				Rules: []Rule{
					Numeric("field.sonraki_bakim_km"),
					Integer("field.sonraki_bakim_km"),
					IntMin(0, "form.non_negative", L("field.sonraki_bakim_km")),
				},
			},
		},
	}
}

// MaintenancePayload builds the wire record from validated values. An empty
// cost stays off the wire; a zero next-service odometer means "not set".
func MaintenancePayload(values map[string]string) model.Maintenance {
	m := model.Maintenance{
		VehicleID:   Int(values, "arac_id"),
		Type:        values["bakim_turu"],
		Date:        values["tarih"],
		Odometer:    Int(values, "km"),
		Location:    values["servis_yeri"],
		Description: values["aciklama"],
	}
	if values["tutar"] != "" && Float(values, "tutar") > 0 {
		m.Cost = OptionalFloat(values, "tutar")
	}
	if values["sonraki_bakim_km"] != "" && Int(values, "sonraki_bakim_km") > 0 {
		m.NextOdometer = OptionalInt(values, "sonraki_bakim_km")
	}
	return m
}
