package models

// PropertyRecord describes one house's attributes as received from the client.
// Numeric count fields are pointers so that presence is validated while zero
// remains a legal value.
type PropertyRecord struct {
	Area             float64 `json:"area" binding:"required,gt=0"`
	Bedrooms         *int    `json:"bedrooms" binding:"required,gte=0"`
	Bathrooms        *int    `json:"bathrooms" binding:"required,gte=0"`
	Stories          *int    `json:"stories" binding:"required,gte=0"`
	MainRoad         string  `json:"mainroad" binding:"required"`
	GuestRoom        string  `json:"guestroom" binding:"required"`
	Basement         string  `json:"basement" binding:"required"`
	HotWaterHeating  string  `json:"hotwaterheating" binding:"required"`
	AirConditioning  string  `json:"airconditioning" binding:"required"`
	Parking          *int    `json:"parking" binding:"required,gte=0"`
	PrefArea         string  `json:"prefarea" binding:"required"`
	FurnishingStatus string  `json:"furnishingstatus" binding:"required"`
}

// PredictionOutput is the response for a single prediction. The confidence
// fields are part of the wire contract but are not populated by the current
// model; they are left as an extension point for uncertainty estimation.
type PredictionOutput struct {
	Prediction              float64  `json:"prediction"`
	ConfidenceScore         *float64 `json:"confidence_score,omitempty"`
	PredictionIntervalLower *float64 `json:"prediction_interval_lower,omitempty"`
	PredictionIntervalUpper *float64 `json:"prediction_interval_upper,omitempty"`
}

type BatchPredictionInput struct {
	Inputs []PropertyRecord `json:"inputs" binding:"required,dive"`
}

type BatchPredictionOutput struct {
	Predictions []PredictionOutput `json:"predictions"`
}

// ModelInfo is the static descriptive payload served by /model-info.
type ModelInfo struct {
	ModelType   string   `json:"model_type"`
	ProblemType string   `json:"problem_type"`
	Features    []string `json:"features"`
}
