package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/wms-platform/workforce-service/pkg/logging"
)

// CloudEvents WMS extension context keys
const (
	ContextKeyWMSCorrelationID = "wmsCorrelationId"
	ContextKeyWMSPlanID        = "wmsPlanId"
	ContextKeyWMSForecastDate  = "wmsForecastDate"
)

// CloudEvents WMS extension HTTP header names
const (
	HeaderWMSCorrelationID = "X-WMS-Correlation-ID"
	HeaderWMSPlanID        = "X-WMS-Plan-ID"
	HeaderWMSForecastDate  = "X-WMS-Forecast-Date"
)

// CloudEvents middleware extracts WMS CloudEvents extensions from HTTP headers
// and adds them to the request context for downstream logging and propagation.
func CloudEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		wmsCorrelationID := c.GetHeader(HeaderWMSCorrelationID)
		wmsPlanID := c.GetHeader(HeaderWMSPlanID)
		wmsForecastDate := c.GetHeader(HeaderWMSForecastDate)

		if wmsCorrelationID != "" {
			c.Set(ContextKeyWMSCorrelationID, wmsCorrelationID)

			// Carry the correlation ID into the request context for logging
			ctx := logging.ContextWithCorrelationID(c.Request.Context(), wmsCorrelationID)
			c.Request = c.Request.WithContext(ctx)
		}
		if wmsPlanID != "" {
			c.Set(ContextKeyWMSPlanID, wmsPlanID)
		}
		if wmsForecastDate != "" {
			c.Set(ContextKeyWMSForecastDate, wmsForecastDate)
		}

		c.Next()
	}
}

// GetWMSCorrelationID extracts the WMS correlation ID from the Gin context
func GetWMSCorrelationID(c *gin.Context) string {
	if val, exists := c.Get(ContextKeyWMSCorrelationID); exists {
		if id, ok := val.(string); ok {
			return id
		}
	}
	return ""
}

// GetWMSPlanID extracts the WMS plan ID from the Gin context
func GetWMSPlanID(c *gin.Context) string {
	if val, exists := c.Get(ContextKeyWMSPlanID); exists {
		if id, ok := val.(string); ok {
			return id
		}
	}
	return ""
}

// GetWMSForecastDate extracts the WMS forecast date from the Gin context
func GetWMSForecastDate(c *gin.Context) string {
	if val, exists := c.Get(ContextKeyWMSForecastDate); exists {
		if date, ok := val.(string); ok {
			return date
		}
	}
	return ""
}

// WMSPropagationHeaders returns the WMS CloudEvents extension headers to
// forward to downstream services
func WMSPropagationHeaders(c *gin.Context) map[string]string {
	headers := make(map[string]string)

	if id := GetWMSCorrelationID(c); id != "" {
		headers[HeaderWMSCorrelationID] = id
	}
	if id := GetWMSPlanID(c); id != "" {
		headers[HeaderWMSPlanID] = id
	}
	if date := GetWMSForecastDate(c); date != "" {
		headers[HeaderWMSForecastDate] = date
	}

	return headers
}
