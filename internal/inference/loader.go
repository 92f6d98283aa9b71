package inference

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"housepricer/server/internal/encoding"
)

var ErrNoCoefficients = errors.New("model artifact has no coefficients")

// LoadModel reads a trained model artifact from disk. The caller is expected
// to treat any error as fatal: the service must not start without a model.
func LoadModel(path string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var model LinearModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	if len(model.Coefficients) == 0 {
		return nil, ErrNoCoefficients
	}
	if len(model.Coefficients) != len(encoding.FeatureNames) {
		return nil, fmt.Errorf("model has %d coefficients, encoder produces %d features",
			len(model.Coefficients), len(encoding.FeatureNames))
	}

	if model.ModelType == "" {
		model.ModelType = "Linear Regression"
	}

	return &model, nil
}
