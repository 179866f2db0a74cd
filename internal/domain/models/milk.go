package models

// DateLayout is the wire format for production and expiry dates.
const DateLayout = "2006-01-02"

// SKU identifies one of the packaged milk products the service knows about.
type SKU string

const (
	SKUWholeMilk1Gal  SKU = "whole_milk_1gal"
	SKUSkimMilk1Gal   SKU = "skim_milk_1gal"
	SKULowfatMilk1Gal SKU = "lowfat_milk_1gal"
	SKUUHTMilk1Qt     SKU = "uht_milk_1qt"
)

// AllSKUs lists every supported milk SKU.
var AllSKUs = []SKU{SKUWholeMilk1Gal, SKUSkimMilk1Gal, SKULowfatMilk1Gal, SKUUHTMilk1Qt}

// Valid reports whether the SKU belongs to the supported set.
func (s SKU) Valid() bool {
	switch s {
	case SKUWholeMilk1Gal, SKUSkimMilk1Gal, SKULowfatMilk1Gal, SKUUHTMilk1Qt:
		return true
	}
	return false
}

// SpoilageRecord is the simulated lab/storage profile of one milk SKU.
// Invariant: ExpiryDate = ProductionDate + shelf life days.
type SpoilageRecord struct {
	SKU                   SKU     `json:"sku"`
	ProductionDate        string  `json:"production_date"`
	ExpiryDate            string  `json:"expiry_date"`
	DaysPastExpiry        int     `json:"days_past_expiry"`
	PH                    float64 `json:"pH"`
	BacterialLoadLogCFUML float64 `json:"bacterial_load_log_cfu_ml"`
	StorageTemperatureC   float64 `json:"storage_temperature_c"`
}
