package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/resqcart/aiml-service/internal/domain/models"
	"github.com/resqcart/aiml-service/internal/repository/mongodb"
	"github.com/resqcart/aiml-service/internal/service/pricing"
	"github.com/resqcart/aiml-service/internal/service/simulate"
	"github.com/resqcart/aiml-service/internal/service/vision"
)

const detectConfidence = 0.5

// DetectionHandler runs the image upload pathway: detect, classify, simulate,
// price.
type DetectionHandler struct {
	detector   vision.Detector
	classifier vision.Classifier
	policy     pricing.ProducePolicy
	audit      mongodb.Repository
	logger     *zap.Logger
}

// NewDetectionHandler constructs the HTTP handler adapter. detector,
// classifier and audit may be nil when the collaborator is not configured.
func NewDetectionHandler(detector vision.Detector, classifier vision.Classifier, policy pricing.ProducePolicy, audit mongodb.Repository, logger *zap.Logger) *DetectionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DetectionHandler{
		detector:   detector,
		classifier: classifier,
		policy:     policy,
		audit:      audit,
		logger:     logger,
	}
}

// Detect analyzes an uploaded image and prices every detected item.
func (h *DetectionHandler) Detect(c *gin.Context) {
	if h.detector == nil || h.classifier == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "detection models not available"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}

	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Please upload an image."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read file upload"})
		return
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read file upload"})
		return
	}

	img, err := vision.DecodeImage(imageBytes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not decode image"})
		return
	}

	raw, err := h.detector.Detect(c.Request.Context(), imageBytes, detectConfidence)
	if err != nil {
		h.logger.Error("detector call failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "detector unavailable"})
		return
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	detections := make([]models.Detection, 0, len(raw))
	for _, rd := range raw {
		box := vision.ClampBox(rd.Box, width, height)

		crop, ok := vision.Crop(img, box)
		if !ok {
			// Zero-area crop after clamping: drop the detection.
			continue
		}

		probability, err := h.classifier.Classify(c.Request.Context(), crop)
		if err != nil {
			h.logger.Error("classifier call failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "classifier unavailable"})
			return
		}

		label := models.LabelFreshApples
		if probability > h.policy.ClassifierCutoff() {
			label = models.LabelRottenApples
		}

		sensorData := simulate.Sensor(label, probability, box)
		decision := h.policy.Price(label, probability, sensorData)

		recordDecision(c.Request.Context(), h.audit, h.logger, models.DecisionRecord{
			Source:          models.DecisionSourceProduce,
			Label:           label,
			Confidence:      probability,
			Action:          decision.Action,
			PriceUSD:        decision.PriceUSD,
			DiscountPercent: decision.DiscountPercent,
		})

		detections = append(detections, models.Detection{
			Box:        box,
			Prediction: label,
			Confidence: probability,
			SensorData: sensorData,
			Pricing:    decision,
		})
	}

	c.JSON(http.StatusOK, gin.H{"detections": detections})
}

// Info reports the service banner with collaborator availability.
func (h *DetectionHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "ResQCart API is running",
		"endpoints": gin.H{
			"/detect":                "POST - Upload an image to detect and analyze apples",
			"/predict_milk_spoilage": "POST - Analyze milk spoilage based on SKU",
			"/ws/video":              "WebSocket - Real-time video prediction",
			"/process_video_frame":   "POST - Analyze a single base64 video frame",
			"/nearby-ngos":           "POST - Find donation partners near a location",
			"/route":                 "POST - Compute a delivery route",
		},
		"status": gin.H{
			"detector_ready":   h.detector != nil,
			"classifier_ready": h.classifier != nil,
		},
	})
}
