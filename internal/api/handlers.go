package api

import (
	_ "embed"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"housepricer/server/internal/encoding"
	"housepricer/server/internal/inference"
	"housepricer/server/internal/models"
)

//go:embed testform.html
var testFormHTML []byte

type Handler struct {
	model  inference.Model
	logger *logrus.Logger
}

func NewHandler(model inference.Model, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		model:  model,
		logger: logger,
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "House Price Prediction API is running",
	})
}

// Predict validates a single property record, encodes it and runs model
// inference. All failures, validation and inference alike, are reported as
// 400 with a detail message; the endpoint never returns a 5xx.
func (h *Handler) Predict(c *gin.Context) {
	var record models.PropertyRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.WithError(err).Error("Invalid prediction input")
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	features := encoding.Encode(record)
	h.logger.WithField("features", features).Debug("Encoded property record")

	prediction, err := h.model.Predict(features)
	if err != nil {
		h.logger.WithError(err).Error("Prediction failed")
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	h.logger.WithField("prediction", prediction).Info("Prediction made")
	c.JSON(http.StatusOK, models.PredictionOutput{Prediction: prediction})
}

// BatchPredict applies single-record prediction to each input in order.
// The batch is fail-fast: the first record that cannot be predicted aborts
// the whole request with a single error, no partial results are returned.
func (h *Handler) BatchPredict(c *gin.Context) {
	var batch models.BatchPredictionInput
	if err := c.ShouldBindJSON(&batch); err != nil {
		h.logger.WithError(err).Error("Invalid batch prediction input")
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	predictions := make([]models.PredictionOutput, 0, len(batch.Inputs))
	for _, record := range batch.Inputs {
		prediction, err := h.model.Predict(encoding.Encode(record))
		if err != nil {
			h.logger.WithError(err).Error("Batch prediction failed")
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		predictions = append(predictions, models.PredictionOutput{Prediction: prediction})
	}

	h.logger.WithField("batch_size", len(predictions)).Info("Batch predictions made")
	c.JSON(http.StatusOK, models.BatchPredictionOutput{Predictions: predictions})
}

func (h *Handler) ModelInfo(c *gin.Context) {
	c.JSON(http.StatusOK, models.ModelInfo{
		ModelType:   h.model.Type(),
		ProblemType: "regression",
		Features:    encoding.FeatureNames,
	})
}

// TestForm serves a small HTML page for exercising /predict by hand. It is a
// convenience endpoint, not part of the API contract.
func (h *Handler) TestForm(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", testFormHTML)
}
