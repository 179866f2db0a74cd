package simulate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resqcart/aiml-service/internal/domain/models"
)

func TestSeedFromIsDeterministic(t *testing.T) {
	a := SeedFrom("[10 20 110 140]", "-", "rottenapples")
	b := SeedFrom("[10 20 110 140]", "-", "rottenapples")

	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Float64(), b.Float64(), "draw %d diverged", i)
	}
}

func TestSeedFromDistinguishesParts(t *testing.T) {
	draws := func(parts ...string) []float64 {
		r := SeedFrom(parts...)
		out := make([]float64, 4)
		for i := range out {
			out[i] = r.Float64()
		}
		return out
	}

	assert.NotEqual(t, draws("whole_milk_1gal"), draws("whole_milk_1gal", "biz"))
	assert.NotEqual(t, draws("[0 0 10 10]", "-", "freshapples"), draws("[0 0 10 10]", "-", "rottenapples"))
}

func TestSensorIsDeterministic(t *testing.T) {
	box := models.Box{X1: 12, Y1: 34, X2: 156, Y2: 178}

	first := Sensor(models.LabelRottenApples, 0.91, box)
	second := Sensor(models.LabelRottenApples, 0.91, box)
	assert.Equal(t, first, second)

	other := Sensor(models.LabelFreshApples, 0.91, box)
	assert.NotEqual(t, first, other)
}

func TestSensorStaysWithinPolicyRanges(t *testing.T) {
	for i := 0; i < 50; i++ {
		box := models.Box{X1: i, Y1: i * 2, X2: i + 100, Y2: i*2 + 120}

		rotten := Sensor(models.LabelRottenApples, 0.95, box)
		assert.GreaterOrEqual(t, rotten.EthylenePPM, 1.0)
		assert.LessOrEqual(t, rotten.EthylenePPM, 10.0)
		assert.InDelta(t, 27.0, rotten.TemperatureC, 1.0)
		assert.InDelta(t, 75.0, rotten.HumidityPercent, 2.0)

		fresh := Sensor(models.LabelFreshApples, 0.3, box)
		assert.GreaterOrEqual(t, fresh.EthylenePPM, 0.1)
		assert.LessOrEqual(t, fresh.EthylenePPM, 1.5)
		assert.InDelta(t, 22.0, fresh.TemperatureC, 1.0)
		assert.InDelta(t, 65.0, fresh.HumidityPercent, 2.0)
	}
}

func TestMilkSpoilageIsDeterministic(t *testing.T) {
	for _, sku := range models.AllSKUs {
		first, err := MilkSpoilage(sku)
		require.NoError(t, err)

		second, err := MilkSpoilage(sku)
		require.NoError(t, err)

		assert.Equal(t, first, second, "sku %s diverged", sku)
	}
}

func TestMilkSpoilageInvariants(t *testing.T) {
	today := time.Date(2025, 6, 29, 0, 0, 0, 0, time.UTC)

	for sku, profile := range skuProfiles {
		rec, err := milkSpoilageAt(sku, today)
		require.NoError(t, err)

		production, err := time.Parse(models.DateLayout, rec.ProductionDate)
		require.NoError(t, err)
		expiry, err := time.Parse(models.DateLayout, rec.ExpiryDate)
		require.NoError(t, err)

		shelfLife := int(expiry.Sub(production).Hours() / 24)
		assert.GreaterOrEqual(t, shelfLife, profile.shelfLifeMin)
		assert.LessOrEqual(t, shelfLife, profile.shelfLifeMax)

		// production_date + shelf life + days past expiry lands on today.
		assert.Equal(t, today, production.AddDate(0, 0, shelfLife+rec.DaysPastExpiry))

		assert.GreaterOrEqual(t, rec.DaysPastExpiry, profile.daysPastExpiryMin)
		assert.LessOrEqual(t, rec.DaysPastExpiry, profile.daysPastExpiryMax)
		assert.GreaterOrEqual(t, rec.PH, profile.phMin)
		assert.LessOrEqual(t, rec.PH, profile.phMax)
		assert.GreaterOrEqual(t, rec.BacterialLoadLogCFUML, profile.loadMin)
		assert.LessOrEqual(t, rec.BacterialLoadLogCFUML, profile.loadMax)
		assert.GreaterOrEqual(t, rec.StorageTemperatureC, 0.0)
		assert.LessOrEqual(t, rec.StorageTemperatureC, 10.0)
	}
}

func TestMilkSpoilageRejectsUnknownSKU(t *testing.T) {
	_, err := MilkSpoilage("chocolate_milk_1gal")
	assert.ErrorIs(t, err, ErrInvalidSKU)
}

func TestMilkContextIsDeterministicAndBounded(t *testing.T) {
	bands := map[string][2]int{
		"low":    {10, 50},
		"medium": {50, 100},
		"high":   {100, 200},
	}

	for _, sku := range models.AllSKUs {
		first, err := MilkContext(sku)
		require.NoError(t, err)

		second, err := MilkContext(sku)
		require.NoError(t, err)
		assert.Equal(t, first, second, "sku %s diverged", sku)

		band, ok := bands[first.Demand]
		require.True(t, ok, "unexpected demand tier %q", first.Demand)
		assert.GreaterOrEqual(t, first.DailySalesRate, band[0])
		assert.LessOrEqual(t, first.DailySalesRate, band[1])
		assert.GreaterOrEqual(t, first.StockLevel, 100)
		assert.LessOrEqual(t, first.StockLevel, 1000)
	}
}

func TestMilkContextRejectsUnknownSKU(t *testing.T) {
	_, err := MilkContext("oat_milk_1qt")
	assert.ErrorIs(t, err, ErrInvalidSKU)
}

func TestProduceContextDrawsFromCandidateSets(t *testing.T) {
	for i := 0; i < 50; i++ {
		ctx := ProduceContext()

		assert.Contains(t, produceSalesRates, ctx.DailySalesRate)
		assert.Contains(t, produceStockLevels, ctx.StockLevel)
		assert.GreaterOrEqual(t, ctx.EstimatedShelfLifeDays, 0)
		assert.LessOrEqual(t, ctx.EstimatedShelfLifeDays, produceShelfLifeDays)
	}
}
