// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import "github.com/aractakip/aractakip/internal/model"

// ExpenseSchema builds the expense entry form.
func ExpenseSchema() Schema {
	return Schema{
		Name: "harcama",
		Fields: []Field{
			{
				Name: "arac_id", Label: "field.arac", Kind: Select,
				Rules: []Rule{SelectRequired("field.arac")},
			},
			{
				Name: "kategori", Label: "field.kategori", Kind: Select,
				Options: model.ExpenseCategories,
				Rules: []Rule{
					SelectRequired("field.kategori"),
					OneOf(model.ExpenseCategories, "form.select_required", L("field.kategori")),
				},
			},
			{
				Name: "tarih", Label: "field.tarih", Kind: Date, Default: today(),
				Rules: []Rule{Required("field.tarih"), DateISO()},
			},
			{
				Name: "tutar", Label: "field.tutar", Kind: FloatField,
				Rules: []Rule{
					Required("field.tutar"),
					NumericMsg("expense.amount_invalid"),
					FloatMin(0.01, "expense.amount_positive"),
				},
			},
			{
				Name: "aciklama", Label: "field.aciklama", Kind: Text,
				Rules: []Rule{MaxLenMsg(255, "expense.desc_long")},
			},
		},
	}
}

// ExpensePayload builds the wire record from validated values.
func ExpensePayload(values map[string]string) model.Expense {
	return model.Expense{
		VehicleID:   Int(values, "arac_id"),
		Category:    values["kategori"],
		Date:        values["tarih"],
		Amount:      Float(values, "tutar"),
		Description: values["aciklama"],
	}
}
