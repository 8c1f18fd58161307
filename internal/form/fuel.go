// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import "github.com/aractakip/aractakip/internal/model"

// FuelSchema builds the fuel entry form. The displayed total is derived via
// FuelTotal and is deliberately absent from the schema: it is read-only
// and never submitted.
func FuelSchema() Schema {
	return Schema{
		Name: "yakit",
		Fields: []Field{
			{
				Name: "arac_id", Label: "field.arac", Kind: Select,
				Rules: []Rule{SelectRequired("field.arac")},
			},
			{
				Name: "tarih", Label: "field.tarih", Kind: Date, Default: today(),
				Rules: []Rule{Required("field.tarih"), DateISO()},
			},
			{
				Name: "km", Label: "field.km", Kind: IntField,
				Rules: []Rule{
					Required("field.km"),
					Numeric("field.km"),
					Integer("field.km"),
					IntMin(0, "form.non_negative", L("field.km")),
				},
			},
			{
				Name: "litre", Label: "field.litre", Kind: FloatField,
				Rules: []Rule{
					Required("field.litre"),
					Numeric("field.litre"),
					FloatMin(0.1, "fuel.liters_invalid"),
				},
			},
			{
				Name: "fiyat", Label: "field.fiyat", Kind: FloatField,
				Rules: []Rule{
					Required("field.fiyat"),
					Numeric("field.fiyat"),
					FloatMin(0.1, "fuel.price_invalid"),
				},
			},
			{
				Name: "yakit_turu", Label: "field.yakit_turu", Kind: Select,
				Default: "Benzin", Options: model.FuelTypes,
				Rules: []Rule{
					Required("field.yakit_turu"),
					OneOf(model.FuelTypes, "fuel.type_required"),
				},
			},
			{Name: "tam_depo", Label: "field.tam_depo", Kind: Bool, Default: "true"},
			{Name: "istasyon", Label: "field.istasyon", Kind: Text},
		},
	}
}

// FuelPayload builds the wire record from validated values. Note there is no
// total field: the server computes totals itself.
func FuelPayload(values map[string]string) model.FuelEntry {
	return model.FuelEntry{
		VehicleID: Int(values, "arac_id"),
		Date:      values["tarih"],
		Odometer:  Int(values, "km"),
		Liters:    Float(values, "litre"),
		UnitPrice: Float(values, "fiyat"),
		FuelType:  values["yakit_turu"],
		FullTank:  BoolValue(values, "tam_depo"),
		Station:   values["istasyon"],
	}
}
