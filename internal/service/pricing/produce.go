package pricing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/resqcart/aiml-service/internal/domain/models"
	"github.com/resqcart/aiml-service/internal/service/simulate"
)

const produceBasePriceUSD = 1.00

// ProducePolicy evaluates one detected produce item. Two variants exist and
// are deliberately not merged: they use different classifier cutoffs and
// different discount drivers.
type ProducePolicy interface {
	// Name identifies the policy variant.
	Name() string
	// ClassifierCutoff is the probability above which an item is labeled rotten.
	ClassifierCutoff() float64
	// Price maps label, confidence and sensor reading to a decision.
	Price(label models.Label, confidence float64, sensor models.SensorReading) models.PricingDecision
}

// PolicyFromName resolves a configured policy name.
func PolicyFromName(name string) (ProducePolicy, error) {
	switch name {
	case PolicyV1{}.Name():
		return PolicyV1{}, nil
	case PolicyV2{}.Name():
		return PolicyV2{}, nil
	}
	return nil, fmt.Errorf("unknown produce policy %q", name)
}

// PolicyV1 is the primary produce policy: demand/stock-driven discounts for
// fresh fruit, ethylene-gated donate/dump for rotten fruit. It simulates its
// own business context per call and embeds the context it used.
type PolicyV1 struct{}

// Name implements ProducePolicy.
func (PolicyV1) Name() string { return "produce_v1" }

// ClassifierCutoff implements ProducePolicy.
func (PolicyV1) ClassifierCutoff() float64 { return 0.8 }

// Price implements ProducePolicy.
func (PolicyV1) Price(label models.Label, confidence float64, sensor models.SensorReading) models.PricingDecision {
	ctx := simulate.ProduceContext()

	switch label {
	case models.LabelFreshApples:
		daysToClear := math.Inf(1)
		if ctx.DailySalesRate != 0 {
			daysToClear = float64(ctx.StockLevel) / float64(ctx.DailySalesRate)
		}

		discount := freshProduceDiscount(daysToClear, float64(ctx.EstimatedShelfLifeDays))
		message := ""
		if discount > 0 {
			message = "Discount to boost sales"
		}
		return newDecision(models.ActionSell, discount, discountedPrice(produceBasePriceUSD, discount), message, ctx)

	case models.LabelRottenApples:
		// Strict threshold: exactly 7.0 ppm is already a dump.
		if sensor.EthylenePPM < 7.0 {
			return newDecision(models.ActionDonate, 0, 0, "Slightly spoiled, donate to food bank", ctx)
		}
		return newDecision(models.ActionDump, 0, 0, "Dispose safely.", ctx)

	default:
		// Unrecognized label: fall back to selling at base price.
		return newDecision(models.ActionSell, 0, produceBasePriceUSD, "", ctx)
	}
}

// freshProduceDiscount maps clearance pressure against remaining shelf life.
// Holding shelf life fixed, the discount never decreases as days-to-clear
// grows, and caps at 15 unless shelf life has collapsed below 3 days.
func freshProduceDiscount(daysToClear, shelfLifeDays float64) float64 {
	switch {
	case daysToClear <= shelfLifeDays:
		return 0
	case shelfLifeDays < 3:
		return 30
	default:
		return math.Min((daysToClear-shelfLifeDays)*2, 15)
	}
}

// PolicyV2 is the archived standalone-predictor policy. Discounts key off the
// ethylene reading rather than business context, the classifier cutoff is 0.7,
// and no business context is attached to the decision.
type PolicyV2 struct{}

// Name implements ProducePolicy.
func (PolicyV2) Name() string { return "produce_v2" }

// ClassifierCutoff implements ProducePolicy.
func (PolicyV2) ClassifierCutoff() float64 { return 0.7 }

// Price implements ProducePolicy.
func (PolicyV2) Price(label models.Label, confidence float64, sensor models.SensorReading) models.PricingDecision {
	ethylene := sensor.EthylenePPM

	if label == models.LabelFreshApples {
		var discount float64
		if ethylene >= 0.2 {
			discount = math.Min(ethylene*10, 10)
		}
		return newDecision(models.ActionSell, discount, discountedPrice(produceBasePriceUSD, discount), "", nil)
	}

	if confidence > 0.7 {
		switch {
		case ethylene < 5.0:
			return newDecision(models.ActionSell, 30, discountedPrice(produceBasePriceUSD, 30), "", nil)
		case ethylene < 10.0:
			return newDecision(models.ActionDonate, 0, 0, "Donate to local food bank for community support.", nil)
		default:
			return newDecision(models.ActionDump, 0, 0, "Dispose of spoiled apple safely to prevent contamination.", nil)
		}
	}

	discount := math.Min(20+(confidence-0.5)*100*0.6, 50)
	return newDecision(models.ActionSell, discount, discountedPrice(produceBasePriceUSD, discount), "", nil)
}

func newDecision(action models.Action, discount, price float64, message string, ctx any) models.PricingDecision {
	return models.PricingDecision{
		Action:          action,
		DiscountApplied: discount > 0,
		DiscountPercent: math.Round(discount*10) / 10,
		PriceUSD:        price,
		Message:         message,
		BusinessContext: ctx,
	}
}

// discountedPrice applies a percentage discount to a base price, rounded to
// cents using decimal arithmetic.
func discountedPrice(base, discountPercent float64) float64 {
	price := decimal.NewFromFloat(base).
		Mul(decimal.NewFromFloat(100 - discountPercent)).
		Div(decimal.NewFromInt(100))
	return price.Round(2).InexactFloat64()
}
