package cost

import (
	"github.com/elC0mpa/cloud-optimizer/model"
)

// PricingTable holds the static daily rates used for estimates. Rates are
// USD and deliberately coarse: the goal is comparable order-of-magnitude
// numbers across providers, not billing-grade accuracy.
type PricingTable struct {
	// ComputeDaily maps provider and instance size to a daily rate.
	ComputeDaily map[model.Provider]map[string]float64

	// DatabaseDaily maps provider and database tier to a daily rate.
	DatabaseDaily map[model.Provider]map[string]float64

	// StoragePerGBMonth is the monthly per-GB rate for object storage.
	StoragePerGBMonth map[model.Provider]float64

	// Fallback rates apply when a size is absent from the tables above.
	FallbackComputeDaily      float64
	FallbackDatabaseDaily     float64
	FallbackStoragePerGBMonth float64

	// NetworkDailyPerVM is a flat egress allowance charged per running VM.
	NetworkDailyPerVM float64
}

// DefaultPricingTable returns the built-in rates.
func DefaultPricingTable() *PricingTable {
	return &PricingTable{
		ComputeDaily: map[model.Provider]map[string]float64{
			model.ProviderAWS: {
				"t2.micro":  0.2784,
				"t3.micro":  0.2496,
				"t3.small":  0.4992,
				"t3.medium": 0.9984,
				"m5.large":  2.304,
				"m5.xlarge": 4.608,
				"c5.large":  2.04,
			},
			model.ProviderAzure: {
				"Standard_B1s":    0.25,
				"Standard_B2s":    0.9984,
				"Standard_D2s_v3": 2.304,
				"Standard_D4s_v3": 4.608,
			},
			model.ProviderGCP: {
				"e2-micro":      0.2016,
				"e2-small":      0.4032,
				"e2-medium":     0.8064,
				"n1-standard-1": 1.14,
				"n2-standard-2": 2.3328,
			},
		},
		DatabaseDaily: map[model.Provider]map[string]float64{
			model.ProviderAWS: {
				"db.t3.micro": 0.408,
				"db.t3.small": 0.816,
				"db.m5.large": 4.104,
			},
			model.ProviderAzure: {
				"Basic":     0.16,
				"S0":        0.48,
				"GP_Gen5_2": 12.00,
			},
			model.ProviderGCP: {
				"db-f1-micro":      0.252,
				"db-g1-small":      0.84,
				"db-n1-standard-1": 2.28,
			},
		},
		StoragePerGBMonth: map[model.Provider]float64{
			model.ProviderAWS:   0.023,
			model.ProviderAzure: 0.0184,
			model.ProviderGCP:   0.020,
		},
		FallbackComputeDaily:      1.92,
		FallbackDatabaseDaily:     2.40,
		FallbackStoragePerGBMonth: 0.025,
		NetworkDailyPerVM:         0.50,
	}
}

// VMDailyRate returns the daily rate for an instance size.
func (p *PricingTable) VMDailyRate(provider model.Provider, size string) float64 {
	if rates, ok := p.ComputeDaily[provider]; ok {
		if rate, ok := rates[size]; ok {
			return rate
		}
	}
	return p.FallbackComputeDaily
}

// DatabaseDailyRate returns the daily rate for a database tier.
func (p *PricingTable) DatabaseDailyRate(provider model.Provider, size string) float64 {
	if rates, ok := p.DatabaseDaily[provider]; ok {
		if rate, ok := rates[size]; ok {
			return rate
		}
	}
	return p.FallbackDatabaseDaily
}

// StorageMonthly returns the monthly cost of the given volume in GB.
func (p *PricingTable) StorageMonthly(provider model.Provider, gb float64) float64 {
	rate, ok := p.StoragePerGBMonth[provider]
	if !ok {
		rate = p.FallbackStoragePerGBMonth
	}
	return gb * rate
}
