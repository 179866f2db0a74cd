package pricing

import (
	"time"

	"github.com/resqcart/aiml-service/internal/domain/models"
)

// Base prices: gallon dairy SKUs share one shelf price, the UHT quart another.
const (
	gallonMilkBasePriceUSD = 3.45
	otherMilkBasePriceUSD  = 1.50
)

// milkThresholds returns the SKU's unsafe-spoilage gates. Whole milk sours at
// a lower pH before it becomes unsafe, so its gates sit wider.
func milkThresholds(sku models.SKU) (phThreshold, bacteriaThreshold float64) {
	if sku == models.SKUWholeMilk1Gal {
		return 5.0, 9.0
	}
	return 5.5, 8.0
}

func milkBasePrice(sku models.SKU) float64 {
	switch sku {
	case models.SKUWholeMilk1Gal, models.SKUSkimMilk1Gal, models.SKULowfatMilk1Gal:
		return gallonMilkBasePriceUSD
	}
	return otherMilkBasePriceUSD
}

// PriceMilk applies the ordered dairy decision rules; the first match wins.
// Expiry is enforced before everything else per food safety law, then unsafe
// spoilage indicators, then near-expiry surplus donation, then full-price sale.
func PriceMilk(label models.Label, probability float64, rec models.SpoilageRecord, ctx models.MilkContext, now time.Time) models.PricingDecision {
	phThreshold, bacteriaThreshold := milkThresholds(rec.SKU)
	daysToExpiry := daysUntilExpiry(rec.ExpiryDate, now)

	switch {
	case rec.DaysPastExpiry > 0 || daysToExpiry <= 0:
		return newDecision(models.ActionDump, 0, 0,
			"Expired product. Must be dumped per food safety law.", ctx)

	case label == models.LabelSpoiled || rec.PH < phThreshold || rec.BacterialLoadLogCFUML > bacteriaThreshold:
		return newDecision(models.ActionDump, 0, 0,
			"Unsafe spoilage risk. Must dump.", ctx)

	case daysToExpiry <= 2 && ctx.StockLevel > 2*ctx.DailySalesRate:
		return newDecision(models.ActionDonate, 0, 0,
			"Near expiry with surplus stock. Donate portion to community.", ctx)

	default:
		return newDecision(models.ActionSell, 0, milkBasePrice(rec.SKU),
			"Product safe. Sell at full price.", ctx)
	}
}

// daysUntilExpiry counts calendar days from now's date to the expiry date,
// floored at 0. Both sides are evaluated in now's location so the count
// matches the date arithmetic that produced the record. An unparsable date
// counts as already expired.
func daysUntilExpiry(expiryDate string, now time.Time) int {
	expiry, err := time.ParseInLocation(models.DateLayout, expiryDate, now.Location())
	if err != nil {
		return 0
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if days := int(expiry.Sub(today).Hours() / 24); days > 0 {
		return days
	}
	return 0
}
