package pricing

import (
	"fmt"
	"strings"

	"github.com/resqcart/aiml-service/internal/domain/models"
)

// ExplainMilkDecision renders the numeric inputs behind a dairy prediction
// into a single rationale sentence for the response payload.
func ExplainMilkDecision(rec models.SpoilageRecord, label models.Label, probability float64) string {
	return fmt.Sprintf(
		"The prediction for %s was calculated using a logistic regression model "+
			"based on spoilage indicators: pH=%v, days past expiry=%d, "+
			"and bacterial load=%v log CFU/mL. "+
			"Probability of spoilage: %.2f. Storage temp: %v°C. "+
			"Recommended action: '%s' based on predicted safety and shelf risk.",
		rec.SKU, rec.PH, rec.DaysPastExpiry, rec.BacterialLoadLogCFUML,
		probability, rec.StorageTemperatureC, strings.ToUpper(string(label)))
}
