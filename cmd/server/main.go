package main

import (
	"log"
	"net/http"

	config "rental-pricing-api/configs"
	"rental-pricing-api/pkg/handlers"
	"rental-pricing-api/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg := config.LoadConfig()

	policy, err := config.LoadCommercialPolicy(cfg.PolicyFile)
	if err != nil {
		log.Fatalf("Failed to load commercial policy: %v", err)
	}

	r := gin.Default()

	// Service initialization
	monitoringService := services.NewMonitoringService()
	analysisService := services.NewAnalysisService(
		services.NewNormalizerService(cfg.DefaultExchangeRateCLP),
		services.NewMarketStudyService(),
		services.NewVacancyService(),
		services.NewPlanService(),
	)

	// Handler initialization
	analysisHandler := handlers.NewAnalysisHandler(
		analysisService,
		flowSettings(services.FlowBrokerage, policy),
		flowSettings(services.FlowQuick, policy),
	)
	adminHandler := handlers.NewAdminHandler(cfg)
	monitoringHandler := handlers.NewMonitoringHandler(monitoringService)

	// Middleware registration
	r.Use(monitoringService.LoggingMiddleware())
	r.Use(cors.Default())

	// API-key middleware; the default key disables the check for local
	// development.
	authMiddleware := func(apiKey string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if apiKey == "" || apiKey == "default_secret_key" {
				c.Next()
				return
			}
			providedKey := c.GetHeader("X-API-KEY")
			if providedKey != apiKey {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			c.Next()
		}
	}

	// Health check endpoint
	r.GET("/health", handlers.HealthCheck)

	v1 := r.Group("/api/v1")
	v1.Use(authMiddleware(cfg.APIKey))
	{
		// Administrator API
		admin := v1.Group("/admin")
		{
			admin.GET("/health-status", adminHandler.GetHealthStatus)
			admin.POST("/maintenance/start", adminHandler.StartMaintenance)
			admin.POST("/maintenance/stop", adminHandler.StopMaintenance)
		}

		// Monitoring API
		monitoring := v1.Group("/monitoring")
		{
			monitoring.GET("/logs", monitoringHandler.GetLogs)
		}

		// Rental analysis API
		analysis := v1.Group("/analysis")
		{
			analysis.POST("/brokerage", analysisHandler.AnalyzeBrokerage)
			analysis.POST("/quick", analysisHandler.AnalyzeQuick)
			analysis.POST("/suggest-rent", analysisHandler.SuggestRent)
			analysis.POST("/batch", analysisHandler.AnalyzeBatch)
			analysis.GET("/templates", analysisHandler.GetTemplates)
			analysis.GET("/defaults", analysisHandler.GetDefaults)
		}
	}

	log.Printf("Starting Rental Pricing API server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// flowSettings applies the optional policy-file overrides on top of the
// built-in flow defaults.
func flowSettings(flow string, policy *config.CommercialPolicy) services.FlowSettings {
	settings := services.DefaultFlowSettings(flow)
	if policy == nil {
		return settings
	}

	if len(policy.Commissions) > 0 {
		settings.CommissionDefaults = policy.Commissions
	}

	var pair *config.ThresholdPair
	if flow == services.FlowQuick {
		pair = policy.CapRate.Quick
	} else {
		pair = policy.CapRate.Brokerage
	}
	if pair != nil {
		settings.CapRateThresholds = services.CapRateThresholds{Upper: pair.Upper, Lower: pair.Lower}
	}
	return settings
}
