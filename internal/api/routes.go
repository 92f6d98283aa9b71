package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"housepricer/server/internal/inference"
)

func SetupRoutes(router *gin.Engine, model inference.Model, logger *logrus.Logger) {
	handler := NewHandler(model, logger)

	router.GET("/", handler.HealthCheck)
	router.POST("/predict", handler.Predict)
	router.POST("/batch-predict", handler.BatchPredict)
	router.GET("/model-info", handler.ModelInfo)
	router.GET("/test-form", handler.TestForm)
}
