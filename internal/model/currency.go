package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Currency is a display currency: all calculation stays in the base
// currency and the exchange rate is applied exactly once, when formatting.
type Currency struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"` // base currency units -> this currency
}

// BuiltinCurrencies lists the selectable display currencies. The first
// entry is the base currency with rate 1.
var BuiltinCurrencies = []Currency{
	{Code: "USD", Symbol: "$", Rate: 1},
	{Code: "EUR", Symbol: "€", Rate: 0.92},
	{Code: "GBP", Symbol: "£", Rate: 0.79},
	{Code: "INR", Symbol: "₹", Rate: 83.20},
	{Code: "AED", Symbol: "AED ", Rate: 3.67},
}

// CurrencyByCode returns the currency with the given code, or the base
// currency when the code is unknown.
func CurrencyByCode(code string) Currency {
	for _, c := range BuiltinCurrencies {
		if strings.EqualFold(c.Code, code) {
			return c
		}
	}
	return BuiltinCurrencies[0]
}

// FormatMoney converts a base-currency amount at the given rate and renders
// it with the symbol and two decimals.
func FormatMoney(amount, rate float64, symbol string) string {
	return symbol + strconv.FormatFloat(amount*rate, 'f', 2, 64)
}

// Format renders a base-currency amount in this currency.
func (c Currency) Format(amount float64) string {
	return FormatMoney(amount, c.Rate, c.Symbol)
}

// ParseMoney reverses FormatMoney: it strips the symbol, parses the
// two-decimal value and divides out the exchange rate.
func ParseMoney(s string, rate float64, symbol string) (float64, error) {
	if rate == 0 {
		return 0, fmt.Errorf("exchange rate must not be zero")
	}
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), symbol))
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse money value %q: %w", s, err)
	}
	return value / rate, nil
}
