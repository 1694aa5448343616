package service

// BaseCurrency is the currency overall balances are reported in.
const BaseCurrency = "RUB"

// IExchangeRates supplies conversion rates for balance aggregation.
type IExchangeRates interface {
	// Rate returns the multiplier converting one unit of source currency
	// into target currency.
	Rate(source, target string) float64
}

// StaticExchangeRates is a fixed rate table. Unknown currency pairs fall
// back to the identity rate.
type StaticExchangeRates struct{}

func (StaticExchangeRates) Rate(source, target string) float64 {
	if source == "USD" && target == BaseCurrency {
		return 90.0
	}
	if source == "EUR" && target == BaseCurrency {
		return 100.0
	}
	return 1.0
}
