package simulate

import (
	"github.com/resqcart/aiml-service/internal/domain/models"
)

// Sensor-policy constants. These gate pricing decisions directly, so the
// values are fixed domain policy, not tunables.
const (
	rottenEthyleneBase = 5.0
	rottenEthyleneMin  = 1.0
	rottenEthyleneMax  = 10.0
	rottenTempBase     = 27.0
	rottenHumidityBase = 75.0

	freshEthyleneBase = 0.5
	freshEthyleneMin  = 0.1
	freshEthyleneMax  = 1.5
	freshTempBase     = 22.0
	freshHumidityBase = 65.0
)

// Sensor derives a reproducible reading for one detected item, seeded from the
// bounding box and label. The same box and label always produce the same
// reading; the classifier confidence scales the ethylene signal.
func Sensor(label models.Label, probability float64, box models.Box) models.SensorReading {
	r := SeedFrom(box.SeedKey(), "-", string(label))

	var ethylene, temp, humidity float64
	if label == models.LabelRottenApples || label == models.LabelRotten {
		ethylene = round2(rottenEthyleneBase + probability*5 + uniform(r, -0.5, 0.5))
		ethylene = clamp(ethylene, rottenEthyleneMin, rottenEthyleneMax)
		temp = round1(rottenTempBase + uniform(r, -1.0, 1.0))
		humidity = round1(rottenHumidityBase + uniform(r, -2.0, 2.0))
	} else {
		ethylene = round2(freshEthyleneBase + probability*0.5 + uniform(r, -0.1, 0.1))
		ethylene = clamp(ethylene, freshEthyleneMin, freshEthyleneMax)
		temp = round1(freshTempBase + uniform(r, -1.0, 1.0))
		humidity = round1(freshHumidityBase + uniform(r, -2.0, 2.0))
	}

	return models.SensorReading{
		EthylenePPM:     ethylene,
		TemperatureC:    temp,
		HumidityPercent: humidity,
	}
}
