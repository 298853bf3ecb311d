package utils

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var SupportedCurrencies = map[string]Currency{
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar"},
	"CAD": {Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"GBP": {Code: "GBP", Symbol: "£", Name: "British Pound"},
	"INR": {Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
}

func FormatCurrency(amount float64, currencyCode string) string {
	currency, exists := SupportedCurrencies[currencyCode]
	if !exists {
		currency = SupportedCurrencies["USD"]
	}
	return fmt.Sprintf("%s%s", currency.Symbol, decimal.NewFromFloat(amount).StringFixed(2))
}

func GetCurrencySymbol(currencyCode string) string {
	currency, exists := SupportedCurrencies[currencyCode]
	if !exists {
		return "$"
	}
	return currency.Symbol
}

func ValidateCurrencyCode(code string) bool {
	_, exists := SupportedCurrencies[code]
	return exists
}

// FormatAmount prints a rate or mileage without trailing zeros: 8, 8.5, 2.25.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// RoundWhole rounds half away from zero to a whole currency unit.
func RoundWhole(amount decimal.Decimal) int64 {
	return amount.Round(0).IntPart()
}

// ToMinorUnits converts whole units to cents (or paise) for payment gateways.
func ToMinorUnits(amount int64) int64 {
	return decimal.NewFromInt(amount).Mul(decimal.NewFromInt(100)).IntPart()
}
