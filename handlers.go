package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const jsonContentType = "application/json; charset=utf-8"

// serveData calls fetch and writes its result as JSON. Any failure while
// building or encoding the payload becomes a 500 naming the resource.
func serveData[T any](c *gin.Context, resource string, fetch func() (T, error)) {
	data, err := fetch()
	if err != nil {
		failInternal(c, fmt.Errorf("error retrieving %s: %w", resource, err))
		return
	}

	body, err := json.MarshalNoEscape(data)
	if err != nil {
		failInternal(c, fmt.Errorf("error retrieving %s: %w", resource, err))
		return
	}

	c.Data(http.StatusOK, jsonContentType, body)
}

// failInternal aborts the request with a 500 carrying the error text
func failInternal(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
}

// getKPIs handles the headline KPI endpoint
func getKPIs(c *gin.Context) {
	serveData(c, "kpis", getKPIData)
}

// getMonthlySalesData handles the monthly sales endpoint
func getMonthlySalesData(c *gin.Context) {
	serveData(c, "monthly sales", getMonthlySales)
}

// getCategories handles the category distribution endpoint
func getCategories(c *gin.Context) {
	serveData(c, "categories", getCategoryData)
}

func getRevenue(c *gin.Context) {
	serveData(c, "monthly revenue", getMonthlyRevenue)
}

func getOrdersData(c *gin.Context) {
	serveData(c, "orders", getOrders)
}

// rootInfo describes the service
func rootInfo(cfg *Config) gin.HandlerFunc {
	info := ServiceInfo{
		Message: cfg.App.Title,
		Version: cfg.App.Version,
		Docs:    cfg.App.DocsPath,
		Status:  "active",
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, info)
	}
}

// healthCheck reports liveness; there are no dependencies to probe
func healthCheck(cfg *Config) gin.HandlerFunc {
	status := HealthStatus{Status: "healthy", Service: cfg.App.Name}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, status)
	}
}

// routeIndex lists every route registered on r
func routeIndex(r *gin.Engine, descriptions map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := r.Routes()
		docs := make([]RouteDoc, 0, len(routes))
		for _, rt := range routes {
			docs = append(docs, RouteDoc{
				Method:      rt.Method,
				Path:        rt.Path,
				Description: descriptions[rt.Path],
			})
		}
		c.JSON(http.StatusOK, docs)
	}
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Not Found"})
}

// recoverWith turns a handler panic into the standard 500 body
func recoverWith(log *zap.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, err any) {
		log.Error("panic recovered",
			zap.Any("panic", err),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)
		failInternal(c, fmt.Errorf("internal server error: %v", err))
	}
}
