// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"regexp"
	"strconv"
	"time"

	"github.com/aractakip/aractakip/internal/model"
)

// PlatePattern is the Turkish plate format: 2 digits, 1-3 letters, 1-4 digits.
var PlatePattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{1,3}[0-9]{1,4}$`)

// VehicleSchema builds the vehicle entry form. The year upper bound is
// current year + 1, so the schema is constructed per use rather than once.
func VehicleSchema() Schema {
	maxYear := time.Now().Year() + 1
	return Schema{
		Name: "arac",
		Fields: []Field{
			{
				Name: "plaka", Label: "field.plaka", Kind: Text,
				Normalize: UpperNoSpaces,
				Rules: []Rule{
					Required("field.plaka"),
					MinLen("field.plaka", 7),
					MaxLen("field.plaka", 20),
					Pattern(PlatePattern, "vehicle.plate_format"),
				},
			},
			{
				Name: "marka", Label: "field.marka", Kind: Text,
				Rules: []Rule{
					Required("field.marka"),
					MinLen("field.marka", 2),
					MaxLen("field.marka", 50),
				},
			},
			{
				Name: "model", Label: "field.model", Kind: Text,
				Rules: []Rule{
					Required("field.model"),
					MinLen("field.model", 2),
					MaxLen("field.model", 50),
				},
			},
			{
				Name: "yil", Label: "field.yil", Kind: IntField,
				Default: strconv.Itoa(time.Now().Year()),
				Rules: []Rule{
					Required("field.yil"),
					NumericMsg("vehicle.year_invalid"),
					IntegerMsg("form.integer", L("field.yil")),
					IntMin(1900, "vehicle.year_min"),
					IntMax(maxYear, "vehicle.year_max", maxYear),
				},
			},
			{Name: "renk", Label: "field.renk", Kind: Text},
			{
				Name: "km", Label: "field.km", Kind: IntField, Default: "0",
				Rules: []Rule{
					Numeric("field.km"),
					Integer("field.km"),
					IntMin(0, "form.non_negative", L("field.km")),
				},
			},
			{
				Name: "sase_no", Label: "field.sase_no", Kind: Text,
				Rules: []Rule{MaxLen("field.sase_no", 50)},
			},
			{
				Name: "motor_no", Label: "field.motor_no", Kind: Text,
				Rules: []Rule{MaxLen("field.motor_no", 50)},
			},
			{
				Name: "notlar", Label: "field.notlar", Kind: Text,
				Rules: []Rule{MaxLen("field.notlar", 500)},
			},
		},
	}
}

// VehiclePayload builds the wire record from validated values.
func VehiclePayload(values map[string]string) model.Vehicle {
	return model.Vehicle{
		Plate:    values["plaka"],
		Make:     values["marka"],
		Model:    values["model"],
		Year:     Int(values, "yil"),
		Color:    values["renk"],
		Odometer: Int(values, "km"),
		Active:   true,
		Chassis:  values["sase_no"],
		Engine:   values["motor_no"],
		Notes:    values["notlar"],
	}
}
