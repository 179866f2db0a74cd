package models

import (
	"encoding/json"
	"fmt"
)

// Label is the categorical output of a spoilage classifier.
type Label string

const (
	LabelFreshApples  Label = "freshapples"
	LabelRottenApples Label = "rottenapples"
	LabelFresh        Label = "fresh"
	LabelRotten       Label = "rotten"
	LabelSpoiled      Label = "spoiled"
	LabelUnknown      Label = "unknown"
)

// Box is a clamped bounding box in pixel coordinates. Invariant: X2 > X1 and
// Y2 > Y1, fully inside the frame.
type Box struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// SeedKey renders the box as the string used to seed sensor simulation.
func (b Box) SeedKey() string {
	return fmt.Sprintf("[%d %d %d %d]", b.X1, b.Y1, b.X2, b.Y2)
}

// MarshalJSON serializes the box as a [x1, y1, x2, y2] array.
func (b Box) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]int{b.X1, b.Y1, b.X2, b.Y2})
}

// UnmarshalJSON accepts the [x1, y1, x2, y2] array form.
func (b *Box) UnmarshalJSON(data []byte) error {
	var coords [4]int
	if err := json.Unmarshal(data, &coords); err != nil {
		return err
	}
	b.X1, b.Y1, b.X2, b.Y2 = coords[0], coords[1], coords[2], coords[3]
	return nil
}

// SensorReading holds simulated gas/climate measurements for one detected item.
type SensorReading struct {
	EthylenePPM     float64 `json:"ethylene_ppm"`
	TemperatureC    float64 `json:"temperature_c"`
	HumidityPercent float64 `json:"humidity_percent"`
}

// Detection is one fully analyzed region of an uploaded image.
type Detection struct {
	Box        Box             `json:"box"`
	Prediction Label           `json:"prediction"`
	Confidence float64         `json:"confidence"`
	SensorData SensorReading   `json:"sensor_data"`
	Pricing    PricingDecision `json:"pricing"`
}

// StreamDetection is the lighter per-frame result for the video pathways.
type StreamDetection struct {
	Box        Box     `json:"box"`
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
	Prediction Label   `json:"prediction,omitempty"`
	Timestamp  string  `json:"timestamp"`
}
