package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"housepricer/server/internal/models"
)

func intPtr(v int) *int {
	return &v
}

func sampleRecord() models.PropertyRecord {
	return models.PropertyRecord{
		Area:             7420,
		Bedrooms:         intPtr(4),
		Bathrooms:        intPtr(1),
		Stories:          intPtr(3),
		MainRoad:         "yes",
		GuestRoom:        "no",
		Basement:         "no",
		HotWaterHeating:  "no",
		AirConditioning:  "yes",
		Parking:          intPtr(2),
		PrefArea:         "yes",
		FurnishingStatus: "furnished",
	}
}

func TestEncodeOrderAndLength(t *testing.T) {
	vector := Encode(sampleRecord())

	assert.Len(t, vector, len(FeatureNames))
	assert.Equal(t, FeatureVector{7420, 4, 1, 3, 1, 0, 0, 0, 1, 2, 1, 2}, vector)
}

func TestEncodeCaseInsensitive(t *testing.T) {
	lower := sampleRecord()

	upper := sampleRecord()
	upper.MainRoad = "YES"
	upper.GuestRoom = "No"
	upper.AirConditioning = "Yes"
	upper.FurnishingStatus = "FURNISHED"

	assert.Equal(t, Encode(lower), Encode(upper))
}

func TestEncodeBinary(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected float64
	}{
		{"yes", "yes", 1},
		{"no", "no", 0},
		{"mixed case yes", "Yes", 1},
		{"empty string defaults to no", "", 0},
		{"trailing space defaults to no", "yes ", 0},
		{"numeric string defaults to no", "1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := sampleRecord()
			record.MainRoad = tt.value
			assert.Equal(t, tt.expected, Encode(record)[4])
		})
	}
}

func TestEncodeFurnishingStatus(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected float64
	}{
		{"furnished", "furnished", 2},
		{"semi-furnished", "semi-furnished", 1},
		{"unfurnished", "unfurnished", 0},
		{"mixed case", "Semi-Furnished", 1},
		{"unknown defaults to unfurnished", "partially furnished", 0},
		{"empty defaults to unfurnished", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := sampleRecord()
			record.FurnishingStatus = tt.value
			assert.Equal(t, tt.expected, Encode(record)[11])
		})
	}
}

func TestFeatureNamesOrder(t *testing.T) {
	expected := []string{
		"area", "bedrooms", "bathrooms", "stories",
		"mainroad", "guestroom", "basement", "hotwaterheating",
		"airconditioning", "parking", "prefarea", "furnishingstatus",
	}
	assert.Equal(t, expected, FeatureNames)
}
