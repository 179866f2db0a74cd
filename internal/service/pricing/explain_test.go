package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resqcart/aiml-service/internal/domain/models"
)

func TestExplainMilkDecision(t *testing.T) {
	rec := models.SpoilageRecord{
		SKU:                   models.SKUWholeMilk1Gal,
		PH:                    6.5,
		DaysPastExpiry:        2,
		BacterialLoadLogCFUML: 4.2,
		StorageTemperatureC:   4.5,
	}

	got := ExplainMilkDecision(rec, models.LabelSpoiled, 0.876)

	want := "The prediction for whole_milk_1gal was calculated using a logistic regression model " +
		"based on spoilage indicators: pH=6.5, days past expiry=2, and bacterial load=4.2 log CFU/mL. " +
		"Probability of spoilage: 0.88. Storage temp: 4.5°C. " +
		"Recommended action: 'SPOILED' based on predicted safety and shelf risk."
	assert.Equal(t, want, got)
}
