package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	config "rental-pricing-api/configs"
	"rental-pricing-api/pkg/handlers"
	"rental-pricing-api/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	// .env may be absent in CI; ignore load failures.
	godotenv.Load("../../.env")

	os.Exit(m.Run())
}

func TestApplicationSetup(t *testing.T) {
	cfg := config.LoadConfig()
	assert.NotNil(t, cfg, "Config should not be nil")

	analysisService := services.NewAnalysisService(
		services.NewNormalizerService(cfg.DefaultExchangeRateCLP),
		services.NewMarketStudyService(),
		services.NewVacancyService(),
		services.NewPlanService(),
	)
	assert.NotNil(t, analysisService, "AnalysisService should not be nil")

	analysisHandler := handlers.NewAnalysisHandler(
		analysisService,
		flowSettings(services.FlowBrokerage, nil),
		flowSettings(services.FlowQuick, nil),
	)
	assert.NotNil(t, analysisHandler, "AnalysisHandler should not be nil")

	adminHandler := handlers.NewAdminHandler(cfg)
	assert.NotNil(t, adminHandler, "AdminHandler should not be nil")
}

func TestFlowSettingsPolicyOverrides(t *testing.T) {
	policy := &config.CommercialPolicy{
		Commissions: map[string]float64{"A": 14},
	}
	policy.CapRate.Quick = &config.ThresholdPair{Upper: 9, Lower: 7}

	brokerage := flowSettings(services.FlowBrokerage, policy)
	quick := flowSettings(services.FlowQuick, policy)

	assert.Equal(t, map[string]float64{"A": 14}, brokerage.CommissionDefaults)
	assert.Equal(t, services.BrokerageCapThresholds, brokerage.CapRateThresholds)
	assert.Equal(t, services.CapRateThresholds{Upper: 9, Lower: 7}, quick.CapRateThresholds)
}

func TestRouterSetup(t *testing.T) {
	r := gin.New()

	r.GET("/health", handlers.HealthCheck)

	v1 := r.Group("/api/v1")
	{
		analysisService := services.NewAnalysisService(
			services.NewNormalizerService(0),
			services.NewMarketStudyService(),
			services.NewVacancyService(),
			services.NewPlanService(),
		)
		analysisHandler := handlers.NewAnalysisHandler(
			analysisService,
			services.DefaultFlowSettings(services.FlowBrokerage),
			services.DefaultFlowSettings(services.FlowQuick),
		)
		v1.GET("/analysis/templates", analysisHandler.GetTemplates)
	}

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/api/v1/analysis/templates", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
