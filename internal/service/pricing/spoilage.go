// Package pricing converts a spoilage signal plus business context into a
// sell/donate/dump decision with a price and rationale.
package pricing

import (
	"math"

	"github.com/resqcart/aiml-service/internal/domain/models"
)

// Logistic regression weights for the dairy spoilage estimate. The model is
// hand-fitted and fixed; there is no training pathway.
const (
	spoilageWeightDays = 0.5
	spoilageWeightPH   = -1.0
	spoilageWeightLoad = 0.8
	spoilageBias       = -5.0
)

// PredictMilkSpoilage scores a spoilage record and returns the binary label
// with its probability. Spoiled wins strictly above 0.5.
func PredictMilkSpoilage(rec models.SpoilageRecord) (models.Label, float64) {
	z := spoilageWeightDays*float64(rec.DaysPastExpiry) +
		spoilageWeightPH*rec.PH +
		spoilageWeightLoad*rec.BacterialLoadLogCFUML +
		spoilageBias

	probability := 1 / (1 + math.Exp(-z))
	if probability > 0.5 {
		return models.LabelSpoiled, probability
	}
	return models.LabelFresh, probability
}
