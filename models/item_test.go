package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCategory(t *testing.T) {
	cases := map[string]string{
		"Es Teh Manis":     CategoryDrink,
		"Jus Alpukat":      CategoryDrink,
		"Kopi Susu":        CategoryDrink,
		"Teh Es":           CategoryDrink,
		"Kerupuk":          CategorySnack,
		"Snack Platter":    CategorySnack,
		"Nasi Goreng":      CategoryFood,
		"Ayam Geprek":      CategoryFood,
		"Chicken Katsu":    CategoryFood,
		"ES TEH":           CategoryDrink, // case-insensitive
		"Cappucino Cincau": CategoryFood,  // tidak ada keyword yang cocok
	}
	for name, want := range cases {
		assert.Equal(t, want, InferCategory(name), "item %q", name)
	}
}

func TestEffectiveCategoryPrefersStored(t *testing.T) {
	item := Item{Name: "Es Krim Goreng", Category: CategoryFood}
	assert.Equal(t, CategoryFood, item.EffectiveCategory())

	item.Category = ""
	assert.Equal(t, CategoryDrink, item.EffectiveCategory())
}

func TestNormalizePaymentKind(t *testing.T) {
	assert.Equal(t, PaymentCash, NormalizePaymentKind("cash"))
	assert.Equal(t, PaymentCash, NormalizePaymentKind("Tunai"))
	assert.Equal(t, PaymentCash, NormalizePaymentKind("CASH di kasir"))
	assert.Equal(t, PaymentNonCash, NormalizePaymentKind("QRIS"))
	assert.Equal(t, PaymentNonCash, NormalizePaymentKind("transfer"))
	assert.Equal(t, PaymentNonCash, NormalizePaymentKind(""))
}
