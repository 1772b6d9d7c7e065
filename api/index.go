package handler

import (
	"log"
	"net/http"
	"sync"

	config "rental-pricing-api/configs"
	"rental-pricing-api/pkg/handlers"
	"rental-pricing-api/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	app  *gin.Engine
	once sync.Once
)

// setupApp initializes the gin application. On serverless platforms the
// setup must not re-run per request, hence sync.Once.
func setupApp() *gin.Engine {
	once.Do(func() {
		// .env is provided by the platform's environment settings here,
		// so godotenv is not called.
		cfg := config.LoadConfig()

		policy, err := config.LoadCommercialPolicy(cfg.PolicyFile)
		if err != nil {
			log.Printf("Warning: commercial policy file ignored: %v", err)
			policy = nil
		}

		r := gin.Default()

		monitoringService := services.NewMonitoringService()
		analysisService := services.NewAnalysisService(
			services.NewNormalizerService(cfg.DefaultExchangeRateCLP),
			services.NewMarketStudyService(),
			services.NewVacancyService(),
			services.NewPlanService(),
		)

		analysisHandler := handlers.NewAnalysisHandler(
			analysisService,
			applyPolicy(services.DefaultFlowSettings(services.FlowBrokerage), policy),
			applyPolicy(services.DefaultFlowSettings(services.FlowQuick), policy),
		)
		adminHandler := handlers.NewAdminHandler(cfg)
		monitoringHandler := handlers.NewMonitoringHandler(monitoringService)

		r.Use(monitoringService.LoggingMiddleware())
		r.Use(cors.Default())

		authMiddleware := func(apiKey string) gin.HandlerFunc {
			return func(c *gin.Context) {
				if apiKey == "" || apiKey == "default_secret_key" {
					c.Next()
					return
				}
				if c.GetHeader("X-API-KEY") != apiKey {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
					return
				}
				c.Next()
			}
		}

		r.GET("/health", handlers.HealthCheck)

		v1 := r.Group("/api/v1")
		v1.Use(authMiddleware(cfg.APIKey))
		{
			admin := v1.Group("/admin")
			{
				admin.GET("/health-status", adminHandler.GetHealthStatus)
				admin.POST("/maintenance/start", adminHandler.StartMaintenance)
				admin.POST("/maintenance/stop", adminHandler.StopMaintenance)
			}

			monitoring := v1.Group("/monitoring")
			{
				monitoring.GET("/logs", monitoringHandler.GetLogs)
			}

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

		app = r
	})
	return app
}

// applyPolicy overlays the optional policy-file overrides on a flow.
func applyPolicy(settings services.FlowSettings, policy *config.CommercialPolicy) services.FlowSettings {
	if policy == nil {
		return settings
	}
	if len(policy.Commissions) > 0 {
		settings.CommissionDefaults = policy.Commissions
	}
	pair := policy.CapRate.Brokerage
	if settings.Flow == services.FlowQuick {
		pair = policy.CapRate.Quick
	}
	if pair != nil {
		settings.CapRateThresholds = services.CapRateThresholds{Upper: pair.Upper, Lower: pair.Lower}
	}
	return settings
}

// Handler is the serverless entrypoint for every request.
func Handler(w http.ResponseWriter, r *http.Request) {
	setupApp().ServeHTTP(w, r)
}
