package handlers

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/resqcart/aiml-service/internal/domain/models"
	"github.com/resqcart/aiml-service/internal/service/vision"
)

// Streaming uses a lower detector confidence and a fixed classifier cutoff;
// frames are noisier than stills.
const (
	streamDetectConfidence = 0.2
	streamClassifierCutoff = 0.8
)

// frameMessage is the inbound WebSocket message envelope.
type frameMessage struct {
	Type       string `json:"type"`
	Frame      string `json:"frame"`
	FrameCount int    `json:"frame_count"`
}

// StreamHandler serves the live frame feed over WebSocket plus the HTTP
// frame-by-frame alternative. Each connection processes one frame fully
// before reading the next.
type StreamHandler struct {
	detector   vision.Detector
	classifier vision.Classifier
	upgrader   websocket.Upgrader
	logger     *zap.Logger
}

// NewStreamHandler constructs the streaming handler. detector and classifier
// may be nil when the inference endpoints are not configured.
func NewStreamHandler(detector vision.Detector, classifier vision.Classifier, logger *zap.Logger) *StreamHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StreamHandler{
		detector:   detector,
		classifier: classifier,
		upgrader: websocket.Upgrader{
			// The API is served cross-origin to the browser frontend.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Video upgrades the connection and processes frames in arrival order.
func (h *StreamHandler) Video(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.logger.Info("websocket connection accepted", zap.String("client_ip", c.ClientIP()))

	for {
		var msg frameMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		switch msg.Type {
		case "ping":
			if err := conn.WriteJSON(gin.H{"type": "pong"}); err != nil {
				return
			}
		case "frame":
			response := h.processFrame(c.Request.Context(), msg)
			if err := conn.WriteJSON(response); err != nil {
				return
			}
		}
	}
}

func (h *StreamHandler) processFrame(ctx context.Context, msg frameMessage) gin.H {
	if h.detector == nil {
		return gin.H{"type": "error", "message": "detection model not available"}
	}

	frameBytes, err := base64.StdEncoding.DecodeString(msg.Frame)
	if err != nil {
		return gin.H{"type": "error", "message": "invalid frame encoding"}
	}

	img, err := vision.DecodeImage(frameBytes)
	if err != nil {
		return gin.H{"type": "error", "message": "could not decode frame"}
	}

	raw, err := h.detector.Detect(ctx, frameBytes, streamDetectConfidence)
	if err != nil {
		h.logger.Warn("detector call failed on stream frame", zap.Error(err))
		return gin.H{"type": "error", "message": "detector unavailable"}
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	detections := make([]models.StreamDetection, 0, len(raw))
	for _, rd := range raw {
		box := vision.ClampBox(rd.Box, width, height)

		crop, ok := vision.Crop(img, box)
		if !ok {
			continue
		}

		label := models.LabelUnknown
		if h.classifier != nil {
			if probability, err := h.classifier.Classify(ctx, crop); err == nil {
				label = models.LabelFresh
				if probability > streamClassifierCutoff {
					label = models.LabelRotten
				}
			} else {
				h.logger.Warn("classifier call failed on stream crop", zap.Error(err))
			}
		}

		detections = append(detections, models.StreamDetection{
			Box:        box,
			Class:      "apple",
			Confidence: rd.Confidence,
			Prediction: label,
			Timestamp:  time.Now().Format(time.RFC3339),
		})
	}

	return gin.H{
		"type":        "detection_results",
		"detections":  detections,
		"frame_count": msg.FrameCount,
		"timestamp":   time.Now().Format(time.RFC3339),
	}
}

// ProcessFrame is the HTTP alternative to the WebSocket pathway: a single
// base64 frame in, detections out, no classification or pricing.
func (h *StreamHandler) ProcessFrame(c *gin.Context) {
	if h.detector == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "detection model not available"})
		return
	}

	var msg frameMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	frameBytes, err := base64.StdEncoding.DecodeString(msg.Frame)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid frame encoding"})
		return
	}

	img, err := vision.DecodeImage(frameBytes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not decode frame"})
		return
	}

	raw, err := h.detector.Detect(c.Request.Context(), frameBytes, detectConfidence)
	if err != nil {
		h.logger.Error("detector call failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "detector unavailable"})
		return
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	detections := make([]models.StreamDetection, 0, len(raw))
	for _, rd := range raw {
		detections = append(detections, models.StreamDetection{
			Box:        vision.ClampBox(rd.Box, width, height),
			Class:      "apple",
			Confidence: rd.Confidence,
			Timestamp:  time.Now().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"detections":  detections,
		"frame_count": msg.FrameCount,
		"timestamp":   time.Now().Format(time.RFC3339),
	})
}
