package inference

import "fmt"

// Model is the uniform contract for a loaded regression model. Implementations
// are read-only after load and safe for concurrent use.
type Model interface {
	Predict(features []float64) (float64, error)
	Type() string
}

// LinearModel is a linear regression artifact: a coefficient per feature plus
// an intercept, serialized as JSON by the training pipeline.
type LinearModel struct {
	ModelType    string    `json:"model_type"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// Predict computes the dot product of the feature vector with the model
// coefficients plus the intercept.
func (m *LinearModel) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Coefficients) {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d", len(features), len(m.Coefficients))
	}

	prediction := m.Intercept
	for i, coefficient := range m.Coefficients {
		prediction += coefficient * features[i]
	}
	return prediction, nil
}

func (m *LinearModel) Type() string {
	return m.ModelType
}
