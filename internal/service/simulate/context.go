package simulate

import (
	"math/rand"

	"github.com/resqcart/aiml-service/internal/domain/models"
)

const produceShelfLifeDays = 14

var (
	produceSalesRates  = []int{15, 20, 30, 50, 70}
	produceStockLevels = []int{60, 85, 100, 150, 180}

	demandTiers = []string{"low", "medium", "high"}
)

// ProduceContext draws demand/stock figures for the produce pricing engine.
// Unlike the dairy context this draw is intentionally unseeded: produce
// context models day-to-day demand drift rather than a stable per-item story.
// The top-level math/rand functions are safe for concurrent use.
func ProduceContext() models.ProduceContext {
	daysInStock := rand.Intn(produceShelfLifeDays + 1)

	return models.ProduceContext{
		DailySalesRate:         produceSalesRates[rand.Intn(len(produceSalesRates))],
		StockLevel:             produceStockLevels[rand.Intn(len(produceStockLevels))],
		EstimatedShelfLifeDays: produceShelfLifeDays - daysInStock,
	}
}

// MilkContext derives the business context for a milk SKU, seeded from the
// SKU plus a "biz" suffix so it draws independently of the spoilage record.
func MilkContext(sku models.SKU) (models.MilkContext, error) {
	if !sku.Valid() {
		return models.MilkContext{}, ErrInvalidSKU
	}

	r := SeedFrom(string(sku), "biz")
	demand := demandTiers[r.Intn(len(demandTiers))]

	var salesRate int
	switch demand {
	case "low":
		salesRate = randInt(r, 10, 50)
	case "medium":
		salesRate = randInt(r, 50, 100)
	default:
		salesRate = randInt(r, 100, 200)
	}

	return models.MilkContext{
		Demand:         demand,
		DailySalesRate: salesRate,
		StockLevel:     randInt(r, 100, 1000),
	}, nil
}
