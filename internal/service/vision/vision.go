// Package vision wraps the external pretrained models (object detector and
// binary spoilage classifier) behind interfaces. The models run in a separate
// inference process reached over HTTP; this service never loads weights.
package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// RawDetection is one box straight from the detector, before clamping.
type RawDetection struct {
	Box        [4]float64 `json:"box"`
	Confidence float64    `json:"confidence"`
}

// Detector locates produce items in a frame.
type Detector interface {
	Detect(ctx context.Context, imageBytes []byte, confidence float64) ([]RawDetection, error)
}

// Classifier scores a cropped region for spoilage, returning a probability in [0, 1].
type Classifier interface {
	Classify(ctx context.Context, cropJPEG []byte) (float64, error)
}

// HTTPDetector is a resty-backed Detector client.
type HTTPDetector struct {
	httpClient *resty.Client
}

// NewHTTPDetector builds a detector client against the given inference base URL.
func NewHTTPDetector(baseURL string) *HTTPDetector {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)

	return &HTTPDetector{httpClient: client}
}

type detectRequest struct {
	Image      string  `json:"image"`
	Confidence float64 `json:"confidence"`
}

type detectResponse struct {
	Detections []RawDetection `json:"detections"`
}

// Detect implements Detector.
func (d *HTTPDetector) Detect(ctx context.Context, imageBytes []byte, confidence float64) ([]RawDetection, error) {
	payload := detectRequest{
		Image:      base64.StdEncoding.EncodeToString(imageBytes),
		Confidence: confidence,
	}

	result := new(detectResponse)
	resp, err := d.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(result).
		Post("/detect")
	if err != nil {
		return nil, fmt.Errorf("call detector: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("detector error: status=%d body=%s", resp.StatusCode(), resp.String())
	}

	return result.Detections, nil
}

// HTTPClassifier is a resty-backed Classifier client.
type HTTPClassifier struct {
	httpClient *resty.Client
}

// NewHTTPClassifier builds a classifier client against the given inference base URL.
func NewHTTPClassifier(baseURL string) *HTTPClassifier {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)

	return &HTTPClassifier{httpClient: client}
}

type classifyRequest struct {
	Image string `json:"image"`
}

type classifyResponse struct {
	Probability float64 `json:"probability"`
}

// Classify implements Classifier.
func (c *HTTPClassifier) Classify(ctx context.Context, cropJPEG []byte) (float64, error) {
	payload := classifyRequest{Image: base64.StdEncoding.EncodeToString(cropJPEG)}

	result := new(classifyResponse)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(result).
		Post("/classify")
	if err != nil {
		return 0, fmt.Errorf("call classifier: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return 0, fmt.Errorf("classifier error: status=%d body=%s", resp.StatusCode(), resp.String())
	}

	return result.Probability, nil
}
