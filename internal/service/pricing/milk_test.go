package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/resqcart/aiml-service/internal/domain/models"
)

var milkNow = time.Date(2025, 6, 29, 12, 0, 0, 0, time.UTC)

func milkRecord(sku models.SKU, daysPastExpiry int, ph, load float64, expiry time.Time) models.SpoilageRecord {
	return models.SpoilageRecord{
		SKU:                   sku,
		ProductionDate:        expiry.AddDate(0, 0, -21).Format(models.DateLayout),
		ExpiryDate:            expiry.Format(models.DateLayout),
		DaysPastExpiry:        daysPastExpiry,
		PH:                    ph,
		BacterialLoadLogCFUML: load,
		StorageTemperatureC:   4.0,
	}
}

func safeContext() models.MilkContext {
	return models.MilkContext{Demand: "medium", DailySalesRate: 100, StockLevel: 150}
}

func TestPriceMilkDumpsWhenPastExpiry(t *testing.T) {
	rec := milkRecord(models.SKUSkimMilk1Gal, 1, 6.0, 5.0, milkNow.AddDate(0, 0, 10))

	decision := PriceMilk(models.LabelFresh, 0.1, rec, safeContext(), milkNow)

	assert.Equal(t, models.ActionDump, decision.Action)
	assert.Equal(t, 0.0, decision.PriceUSD)
	assert.Equal(t, "Expired product. Must be dumped per food safety law.", decision.Message)
}

func TestPriceMilkDumpsWhenExpiringToday(t *testing.T) {
	// days_past_expiry = 0 and days_to_expiry = 0: the expiry rule still fires.
	rec := milkRecord(models.SKUSkimMilk1Gal, 0, 6.0, 5.0, milkNow)

	decision := PriceMilk(models.LabelFresh, 0.1, rec, safeContext(), milkNow)

	assert.Equal(t, models.ActionDump, decision.Action)
	assert.Equal(t, "Expired product. Must be dumped per food safety law.", decision.Message)
}

func TestPriceMilkDumpsOnUnsafeIndicators(t *testing.T) {
	// Whole milk thresholds: pH < 5.0 or bacterial load > 9.0.
	rec := milkRecord(models.SKUWholeMilk1Gal, 0, 4.8, 9.5, milkNow.AddDate(0, 0, 10))

	decision := PriceMilk(models.LabelFresh, 0.2, rec, safeContext(), milkNow)

	assert.Equal(t, models.ActionDump, decision.Action)
	assert.Equal(t, "Unsafe spoilage risk. Must dump.", decision.Message)
}

func TestPriceMilkThresholdsVaryBySKU(t *testing.T) {
	// pH 5.4 is unsafe for skim (threshold 5.5) but fine for whole milk (5.0).
	skim := milkRecord(models.SKUSkimMilk1Gal, 0, 5.4, 6.0, milkNow.AddDate(0, 0, 10))
	whole := milkRecord(models.SKUWholeMilk1Gal, 0, 5.4, 8.0, milkNow.AddDate(0, 0, 10))

	assert.Equal(t, models.ActionDump, PriceMilk(models.LabelFresh, 0.2, skim, safeContext(), milkNow).Action)
	assert.Equal(t, models.ActionSell, PriceMilk(models.LabelFresh, 0.2, whole, safeContext(), milkNow).Action)
}

func TestPriceMilkDumpsOnSpoiledLabel(t *testing.T) {
	rec := milkRecord(models.SKUUHTMilk1Qt, 0, 6.4, 3.0, milkNow.AddDate(0, 0, 30))

	decision := PriceMilk(models.LabelSpoiled, 0.9, rec, safeContext(), milkNow)

	assert.Equal(t, models.ActionDump, decision.Action)
	assert.Equal(t, "Unsafe spoilage risk. Must dump.", decision.Message)
}

func TestPriceMilkDonatesNearExpiryWithSurplus(t *testing.T) {
	rec := milkRecord(models.SKUSkimMilk1Gal, 0, 6.0, 5.0, milkNow.AddDate(0, 0, 2))
	ctx := models.MilkContext{Demand: "medium", DailySalesRate: 100, StockLevel: 500}

	decision := PriceMilk(models.LabelFresh, 0.1, rec, ctx, milkNow)

	assert.Equal(t, models.ActionDonate, decision.Action)
	assert.Equal(t, 0.0, decision.PriceUSD)
	assert.Equal(t, "Near expiry with surplus stock. Donate portion to community.", decision.Message)
}

func TestPriceMilkSellsNearExpiryWithoutSurplus(t *testing.T) {
	rec := milkRecord(models.SKUSkimMilk1Gal, 0, 6.0, 5.0, milkNow.AddDate(0, 0, 2))

	decision := PriceMilk(models.LabelFresh, 0.1, rec, safeContext(), milkNow)

	assert.Equal(t, models.ActionSell, decision.Action)
	assert.Equal(t, 3.45, decision.PriceUSD)
}

func TestPriceMilkSellsSafeProductAtBasePrice(t *testing.T) {
	gallon := milkRecord(models.SKULowfatMilk1Gal, 0, 6.0, 5.0, milkNow.AddDate(0, 0, 10))
	quart := milkRecord(models.SKUUHTMilk1Qt, 0, 6.4, 3.0, milkNow.AddDate(0, 0, 60))

	gallonDecision := PriceMilk(models.LabelFresh, 0.1, gallon, safeContext(), milkNow)
	assert.Equal(t, models.ActionSell, gallonDecision.Action)
	assert.Equal(t, 3.45, gallonDecision.PriceUSD)
	assert.Equal(t, "Product safe. Sell at full price.", gallonDecision.Message)

	quartDecision := PriceMilk(models.LabelFresh, 0.1, quart, safeContext(), milkNow)
	assert.Equal(t, 1.50, quartDecision.PriceUSD)
}

func TestPriceMilkExpiryCountIsZoneConsistent(t *testing.T) {
	// Late evening far east of UTC: one calendar day of shelf life remains, so
	// the expiry rule must not fire even though fewer than 24 hours are left.
	zone := time.FixedZone("UTC+12", 12*60*60)
	now := time.Date(2025, 6, 29, 20, 0, 0, 0, zone)
	rec := milkRecord(models.SKUSkimMilk1Gal, 0, 6.0, 5.0, now.AddDate(0, 0, 1))

	decision := PriceMilk(models.LabelFresh, 0.1, rec, safeContext(), now)

	assert.Equal(t, models.ActionSell, decision.Action)
}

func TestPredictMilkSpoilageFreshRoundTrip(t *testing.T) {
	rec := models.SpoilageRecord{DaysPastExpiry: 0, PH: 6.6, BacterialLoadLogCFUML: 2.0}

	label, probability := PredictMilkSpoilage(rec)

	assert.Equal(t, models.LabelFresh, label)
	assert.Less(t, probability, 0.5)
}

func TestPredictMilkSpoilageSpoiled(t *testing.T) {
	rec := models.SpoilageRecord{DaysPastExpiry: 10, PH: 4.6, BacterialLoadLogCFUML: 9.8}

	label, probability := PredictMilkSpoilage(rec)

	assert.Equal(t, models.LabelSpoiled, label)
	assert.Greater(t, probability, 0.5)
}
