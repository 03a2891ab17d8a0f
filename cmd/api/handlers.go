package main

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	appErrors "github.com/wms-platform/workforce-service/pkg/errors"
	"github.com/wms-platform/workforce-service/pkg/kafka"
	"github.com/wms-platform/workforce-service/pkg/logging"
	"github.com/wms-platform/workforce-service/pkg/middleware"
	"github.com/wms-platform/workforce-service/pkg/mongodb"

	"github.com/wms-platform/workforce-service/internal/application"
	"github.com/wms-platform/workforce-service/internal/domain"
)

const serviceName = "workforce-service"

// Config holds application configuration
type Config struct {
	ServerAddr string
	MongoDB    *mongodb.Config
	Kafka      *kafka.Config
}

func loadConfig() *Config {
	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8010"),
		MongoDB: &mongodb.Config{
			URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGODB_DATABASE", "workforce_db"),
			ConnectTimeout: 10 * time.Second,
			MaxPoolSize:    100,
			MinPoolSize:    10,
		},
		Kafka: &kafka.Config{
			Brokers:       []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			ConsumerGroup: serviceName,
			ClientID:      serviceName,
			BatchSize:     100,
			BatchTimeout:  10 * time.Millisecond,
			RequiredAcks:  -1,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// respondCalculationError maps calculation failures onto HTTP responses.
// Missing forecast is a 404; missing customer configs is a validation
// failure; anything else keeps its AppError shape or falls through to 500.
func respondCalculationError(responder *middleware.ErrorResponder, err error) {
	switch {
	case errors.Is(err, domain.ErrForecastNotFound):
		responder.RespondNotFound("forecast")
	case errors.Is(err, domain.ErrNoCustomerConfigs):
		responder.RespondValidationError("no customer configurations found", nil)
	default:
		if appErr, ok := err.(*appErrors.AppError); ok {
			responder.RespondWithAppError(appErr)
		} else {
			responder.RespondInternalError(err)
		}
	}
}

func calculatePlanHandler(service *application.WorkforceApplicationService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var req struct {
			ForecastDate           string `json:"forecastDate" binding:"required,forecast_date"`
			ForecastOrders         *int   `json:"forecastOrders" binding:"omitempty,gte=0"`
			CustomerBreakdown      bool   `json:"customerBreakdown"`
			PriorityAnalysis       bool   `json:"priorityAnalysis"`
			IncludeRecommendations bool   `json:"includeRecommendations"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		middleware.AddSpanAttributes(c, map[string]interface{}{
			"plan.forecast_date": req.ForecastDate,
		})

		cmd := application.CalculatePlanCommand{
			ForecastDate:             req.ForecastDate,
			ForecastOrders:           req.ForecastOrders,
			IncludeCustomerBreakdown: req.CustomerBreakdown,
			IncludePriorityAnalysis:  req.PriorityAnalysis,
			IncludeRecommendations:   req.IncludeRecommendations,
		}

		plan, err := service.CalculatePlan(c.Request.Context(), cmd)
		if err != nil {
			respondCalculationError(responder, err)
			return
		}

		c.JSON(http.StatusCreated, plan)
	}
}

func calculateLegacyPlanHandler(service *application.WorkforceApplicationService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var req struct {
			ForecastDate  string  `json:"forecastDate" binding:"required,forecast_date"`
			TotalOrders   *int    `json:"totalOrders" binding:"omitempty,gte=0"`
			OrdersPerHour float64 `json:"ordersPerHour" binding:"omitempty,gte=0"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		middleware.AddSpanAttributes(c, map[string]interface{}{
			"plan.forecast_date": req.ForecastDate,
		})

		cmd := application.CalculateLegacyPlanCommand{
			ForecastDate:  req.ForecastDate,
			TotalOrders:   req.TotalOrders,
			OrdersPerHour: req.OrdersPerHour,
		}

		plan, err := service.CalculateLegacyPlan(c.Request.Context(), cmd)
		if err != nil {
			respondCalculationError(responder, err)
			return
		}

		c.JSON(http.StatusOK, plan)
	}
}

func getPlanHandler(service *application.WorkforceApplicationService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		forecastDate := c.Param("date")
		middleware.AddSpanAttributes(c, map[string]interface{}{
			"plan.forecast_date": forecastDate,
		})

		plan, err := service.GetPlan(c.Request.Context(), application.GetPlanQuery{ForecastDate: forecastDate})
		if err != nil {
			if appErr, ok := err.(*appErrors.AppError); ok {
				responder.RespondWithAppError(appErr)
			} else {
				responder.RespondInternalError(err)
			}
			return
		}

		c.JSON(http.StatusOK, plan)
	}
}

func listPlansHandler(service *application.WorkforceApplicationService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		plans, err := service.ListPlans(c.Request.Context(), application.ListPlansQuery{Limit: limit})
		if err != nil {
			responder.RespondInternalError(err)
			return
		}

		c.JSON(http.StatusOK, plans)
	}
}

func listCustomersHandler(service *application.WorkforceApplicationService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		customers, err := service.ListCustomers(c.Request.Context(), application.ListCustomersQuery{})
		if err != nil {
			responder.RespondInternalError(err)
			return
		}

		c.JSON(http.StatusOK, customers)
	}
}

func getCustomerHandler(service *application.WorkforceApplicationService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		customerID := c.Param("customerId")
		middleware.AddSpanAttributes(c, map[string]interface{}{
			"customer.id": customerID,
		})

		customer, err := service.GetCustomer(c.Request.Context(), application.GetCustomerQuery{CustomerID: customerID})
		if err != nil {
			if appErr, ok := err.(*appErrors.AppError); ok {
				responder.RespondWithAppError(appErr)
			} else {
				responder.RespondInternalError(err)
			}
			return
		}

		c.JSON(http.StatusOK, customer)
	}
}
