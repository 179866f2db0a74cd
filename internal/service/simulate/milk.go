package simulate

import (
	"time"

	"github.com/resqcart/aiml-service/internal/domain/models"
)

// skuProfile bounds the simulated spoilage draws per SKU.
type skuProfile struct {
	shelfLifeMin, shelfLifeMax           int
	daysPastExpiryMin, daysPastExpiryMax int
	phMin, phMax                         float64
	loadMin, loadMax                     float64
}

var skuProfiles = map[models.SKU]skuProfile{
	models.SKUWholeMilk1Gal: {
		shelfLifeMin: 14, shelfLifeMax: 21,
		daysPastExpiryMin: 0, daysPastExpiryMax: 14,
		phMin: 4.5, phMax: 6.6,
		loadMin: 6.0, loadMax: 10.0,
	},
	models.SKUSkimMilk1Gal: {
		shelfLifeMin: 21, shelfLifeMax: 28,
		daysPastExpiryMin: 0, daysPastExpiryMax: 21,
		phMin: 5.0, phMax: 6.6,
		loadMin: 4.0, loadMax: 9.0,
	},
	models.SKULowfatMilk1Gal: {
		shelfLifeMin: 21, shelfLifeMax: 28,
		daysPastExpiryMin: 0, daysPastExpiryMax: 21,
		phMin: 5.0, phMax: 6.6,
		loadMin: 4.0, loadMax: 9.0,
	},
	models.SKUUHTMilk1Qt: {
		shelfLifeMin: 90, shelfLifeMax: 180,
		daysPastExpiryMin: 0, daysPastExpiryMax: 60,
		phMin: 6.0, phMax: 6.6,
		loadMin: 2.0, loadMax: 7.0,
	},
}

// MilkSpoilage derives the reproducible spoilage record for a SKU. All lab
// fields are stable per SKU; the dates shift with the current day so that
// production_date + shelf life always equals expiry_date.
func MilkSpoilage(sku models.SKU) (models.SpoilageRecord, error) {
	return milkSpoilageAt(sku, time.Now())
}

func milkSpoilageAt(sku models.SKU, today time.Time) (models.SpoilageRecord, error) {
	profile, ok := skuProfiles[sku]
	if !ok {
		return models.SpoilageRecord{}, ErrInvalidSKU
	}

	r := SeedFrom(string(sku))
	shelfLife := randInt(r, profile.shelfLifeMin, profile.shelfLifeMax)
	daysPastExpiry := randInt(r, profile.daysPastExpiryMin, profile.daysPastExpiryMax)
	ph := round2(uniform(r, profile.phMin, profile.phMax))
	load := round2(uniform(r, profile.loadMin, profile.loadMax))

	productionDate := today.AddDate(0, 0, -(shelfLife + daysPastExpiry))
	expiryDate := productionDate.AddDate(0, 0, shelfLife)
	storageTemp := round1(uniform(r, 0.0, 10.0))

	return models.SpoilageRecord{
		SKU:                   sku,
		ProductionDate:        productionDate.Format(models.DateLayout),
		ExpiryDate:            expiryDate.Format(models.DateLayout),
		DaysPastExpiry:        daysPastExpiry,
		PH:                    ph,
		BacterialLoadLogCFUML: load,
		StorageTemperatureC:   storageTemp,
	}, nil
}
