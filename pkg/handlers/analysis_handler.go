package handlers

import (
	"net/http"

	"rental-pricing-api/pkg/models"
	"rental-pricing-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler exposes the rental-profitability engine.
type AnalysisHandler struct {
	analysisService *services.AnalysisService
	brokerage       services.FlowSettings
	quick           services.FlowSettings
}

// NewAnalysisHandler creates the handler with the per-flow settings
// resolved at startup.
func NewAnalysisHandler(analysisService *services.AnalysisService, brokerage, quick services.FlowSettings) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		brokerage:       brokerage,
		quick:           quick,
	}
}

// AnalyzeBrokerage runs the full analysis for the brokerage/exclusivity
// flow (Template 1 schedules, 6/4 CAP thresholds).
func (h *AnalysisHandler) AnalyzeBrokerage(c *gin.Context) {
	h.analyze(c, h.brokerage)
}

// AnalyzeQuick runs the quick-analysis flow (Template 2 schedules, 8/6
// CAP thresholds).
func (h *AnalysisHandler) AnalyzeQuick(c *gin.Context) {
	h.analyze(c, h.quick)
}

func (h *AnalysisHandler) analyze(c *gin.Context, settings services.FlowSettings) {
	var raw models.RawAnalysisInput
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Request body must be a JSON analysis form record.",
		})
		return
	}

	// The engine is total over any form snapshot; malformed numeric
	// fields degrade to zero-valued figures instead of failing.
	result := h.analysisService.Run(raw, settings)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// SuggestRentRequest carries the size field for the rent suggestion.
type SuggestRentRequest struct {
	SizeM2 string `json:"size_m2"`
}

// SuggestRent returns round(size × average_rent_per_m2).
func (h *AnalysisHandler) SuggestRent(c *gin.Context) {
	var req SuggestRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Request body must contain size_m2.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"suggested_rent_clp": h.analysisService.SuggestInitialRent(req.SizeM2),
	})
}

// GetTemplates returns the two named schedule templates and policy
// tables, for the form/UI collaborator.
func (h *AnalysisHandler) GetTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"schedule_templates": gin.H{
				services.FlowBrokerage: h.brokerage.ScheduleTemplate,
				services.FlowQuick:     h.quick.ScheduleTemplate,
			},
			"policy_tables": gin.H{
				services.FlowBrokerage: h.brokerage.Policies,
				services.FlowQuick:     h.quick.Policies,
			},
			"default_commissions": services.DefaultCommissions,
		},
	})
}

// GetDefaults returns the pre-filled form values.
func (h *AnalysisHandler) GetDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    models.DefaultFormInput(),
	})
}
