// Package pricing derives cart summaries from line items and a catalog snapshot.
package pricing

import (
	"github.com/shopspring/decimal"

	"snackshop/models"
)

// TaxRate is the fixed sales tax applied to the subtotal
const TaxRate = 0.16

var taxRate = decimal.NewFromFloat(TaxRate)

// Summarize prices items against catalog.
// Lines whose snack is missing from the catalog add nothing to the subtotal
// but still count toward ItemCount. Sums are exact; subtotal, tax and total
// are each rounded to cents, half away from zero.
func Summarize(items []models.CartItem, catalog []models.Snack) models.CartSummary {
	prices := indexCatalog(catalog)

	itemCount := 0
	subtotal := decimal.Zero
	for _, item := range items {
		itemCount += item.Quantity
		snack, ok := prices[item.SnackID]
		if !ok {
			continue
		}
		subtotal = subtotal.Add(lineAmount(snack, item.Quantity))
	}

	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax).Round(2)

	return models.CartSummary{
		ItemCount: itemCount,
		Subtotal:  toFloat(subtotal),
		Tax:       toFloat(tax),
		Total:     toFloat(total),
	}
}

// LineDetails joins each line with its snack for display.
// Lines whose snack is missing from the catalog are left out.
func LineDetails(items []models.CartItem, catalog []models.Snack) []models.CartLineDetail {
	snacks := indexCatalog(catalog)

	details := make([]models.CartLineDetail, 0, len(items))
	for _, item := range items {
		snack, ok := snacks[item.SnackID]
		if !ok {
			continue
		}
		details = append(details, models.CartLineDetail{
			CartItem:  item,
			Snack:     snack,
			LineTotal: toFloat(lineAmount(snack, item.Quantity).Round(2)),
		})
	}
	return details
}

func indexCatalog(catalog []models.Snack) map[string]models.Snack {
	index := make(map[string]models.Snack, len(catalog))
	for _, snack := range catalog {
		if _, seen := index[snack.ID]; !seen {
			index[snack.ID] = snack
		}
	}
	return index
}

func lineAmount(snack models.Snack, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(snack.Price).Mul(decimal.NewFromInt(int64(quantity)))
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
