package main

import (
	"io"
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// newRouter wires middleware and routes onto a fresh gin engine
func newRouter(cfg *Config, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = false

	r.Use(requestID())
	r.Use(requestLogger(log))
	r.Use(requestMetrics())
	r.Use(gin.CustomRecoveryWithWriter(io.Discard, recoverWith(log)))
	r.Use(echoRequestedHeaders())
	r.Use(cors.New(corsConfig(cfg.CORS)))

	descriptions := map[string]string{
		"/":                    "Service information",
		"/health":              "Health check",
		"/metrics":             "Prometheus metrics",
		cfg.App.DocsPath:       "Route index",
		"/api/kpis":            "Revenue, customers, orders and active users",
		"/api/monthly-sales":   "Sales for the last six months",
		"/api/categories":      "Sales distribution by category",
		"/api/monthly-revenue": "Revenue for the last six months",
		"/api/orders":          "Recent orders",
	}

	r.GET("/", rootInfo(cfg))
	r.GET("/health", healthCheck(cfg))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET(cfg.App.DocsPath, routeIndex(r, descriptions))

	api := r.Group("/api")
	{
		api.GET("/kpis", getKPIs)
		api.GET("/monthly-sales", getMonthlySalesData)
		api.GET("/categories", getCategories)
		api.GET("/monthly-revenue", getRevenue)
		api.GET("/orders", getOrdersData)
	}

	r.NoRoute(notFound)
	return r
}

// corsConfig allows any method from the configured origins. A "*" entry
// accepts every origin and echoes it back, so credentialed calls still work.
func corsConfig(c CORSConfig) cors.Config {
	conf := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: true,
		MaxAge:           c.MaxAge,
	}
	if slices.Contains(c.AllowOrigins, "*") {
		conf.AllowOriginFunc = func(string) bool { return true }
	} else {
		conf.AllowOrigins = c.AllowOrigins
	}
	return conf
}

// echoRequestedHeaders allows whatever headers a preflight asks for.
// cors leaves Access-Control-Allow-Headers alone when AllowHeaders is empty.
func echoRequestedHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			}
		}
		c.Next()
	}
}
