package handlers

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/resqcart/aiml-service/internal/domain/models"
	"github.com/resqcart/aiml-service/internal/repository/mongodb"
	"github.com/resqcart/aiml-service/internal/service/pricing"
	"github.com/resqcart/aiml-service/internal/service/simulate"
)

// MilkHandler runs the packaged-milk pathway: simulate, estimate, price, explain.
type MilkHandler struct {
	audit  mongodb.Repository
	logger *zap.Logger
}

// NewMilkHandler constructs the HTTP handler adapter. audit may be nil.
func NewMilkHandler(audit mongodb.Repository, logger *zap.Logger) *MilkHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MilkHandler{audit: audit, logger: logger}
}

// Predict simulates spoilage for a milk SKU and prices it.
func (h *MilkHandler) Predict(c *gin.Context) {
	sku := models.SKU(c.DefaultQuery("sku", string(models.SKUWholeMilk1Gal)))

	record, err := simulate.MilkSpoilage(sku)
	if err != nil {
		if errors.Is(err, simulate.ErrInvalidSKU) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid SKU."})
			return
		}
		h.logger.Error("milk simulation failed", zap.Error(err), zap.String("sku", string(sku)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "simulation failed"})
		return
	}

	label, probability := pricing.PredictMilkSpoilage(record)

	// SKU already validated by the spoilage simulation.
	businessCtx, _ := simulate.MilkContext(sku)

	decision := pricing.PriceMilk(label, probability, record, businessCtx, time.Now())
	explanation := pricing.ExplainMilkDecision(record, label, probability)

	recordDecision(c.Request.Context(), h.audit, h.logger, models.DecisionRecord{
		Source:          models.DecisionSourceDairy,
		SKU:             string(sku),
		Label:           label,
		Confidence:      probability,
		Action:          decision.Action,
		PriceUSD:        decision.PriceUSD,
		DiscountPercent: decision.DiscountPercent,
	})

	c.JSON(http.StatusOK, gin.H{
		"sku":           sku,
		"spoilage_data": record,
		"prediction":    label,
		"probability":   math.Round(probability*1000) / 1000,
		"pricing":       decision,
		"explanation":   explanation,
	})
}
