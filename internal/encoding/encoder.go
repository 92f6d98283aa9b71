package encoding

import (
	"strings"

	"housepricer/server/internal/models"
)

// FeatureVector is a fixed-order numeric encoding of a PropertyRecord.
type FeatureVector []float64

// FeatureNames lists the encoded features in the exact order the model was
// trained on. Changing this order without retraining the model silently
// produces wrong predictions.
var FeatureNames = []string{
	"area",
	"bedrooms",
	"bathrooms",
	"stories",
	"mainroad",
	"guestroom",
	"basement",
	"hotwaterheating",
	"airconditioning",
	"parking",
	"prefarea",
	"furnishingstatus",
}

// Encode converts a property record into the feature vector consumed by the
// model. Pure function, no side effects.
func Encode(record models.PropertyRecord) FeatureVector {
	return FeatureVector{
		record.Area,
		intFeature(record.Bedrooms),
		intFeature(record.Bathrooms),
		intFeature(record.Stories),
		encodeBinary(record.MainRoad),
		encodeBinary(record.GuestRoom),
		encodeBinary(record.Basement),
		encodeBinary(record.HotWaterHeating),
		encodeBinary(record.AirConditioning),
		intFeature(record.Parking),
		encodeBinary(record.PrefArea),
		encodeFurnishing(record.FurnishingStatus),
	}
}

// encodeBinary maps a yes/no field to 1/0, case-insensitively. Unrecognized
// values encode as 0, the same as "no"; the service accepts them rather than
// rejecting the record.
func encodeBinary(value string) float64 {
	switch strings.ToLower(value) {
	case "yes":
		return 1
	case "no":
		return 0
	default:
		return 0
	}
}

// encodeFurnishing maps the furnishing status to its ordinal code,
// case-insensitively. Unrecognized values encode as 0, the same as
// "unfurnished".
func encodeFurnishing(value string) float64 {
	switch strings.ToLower(value) {
	case "furnished":
		return 2
	case "semi-furnished":
		return 1
	case "unfurnished":
		return 0
	default:
		return 0
	}
}

func intFeature(value *int) float64 {
	if value == nil {
		return 0
	}
	return float64(*value)
}
