package services

import (
	"math"
	"strings"

	"tripflow/pkg/utils"
)

// Stored prices are always USD; display amounts are converted through a
// static reference table. Rates are units of the target currency per USD.
var usdRates = map[string]float64{
	"USD": 1,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 155.0,
	"AUD": 1.52,
	"CAD": 1.37,
	"VND": 25400.0,
	"THB": 34.2,
	"KRW": 1370.0,
	"SGD": 1.34,
}

type RatesServiceInterface interface {
	Convert(amountUSD float64, currency string) (float64, error)
	Supported() []string
}

type RatesService struct{}

func NewRatesService() RatesServiceInterface {
	return &RatesService{}
}

func (r *RatesService) Convert(amountUSD float64, currency string) (float64, error) {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		code = "USD"
	}
	rate, ok := usdRates[code]
	if !ok {
		return 0, utils.ErrUnsupportedCurrency
	}
	return math.Round(amountUSD*rate*100) / 100, nil
}

func (r *RatesService) Supported() []string {
	out := make([]string, 0, len(usdRates))
	for code := range usdRates {
		out = append(out, code)
	}
	return out
}
