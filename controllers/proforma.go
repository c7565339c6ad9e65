package controllers

import (
	"devtrack-api/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProFormaRequest carries the underwriting assumptions. Every field is
// required by binding so a missing or non-numeric value fails with a 400
// instead of defaulting to zero and skewing the projection silently.
type ProFormaRequest struct {
	LandCost        *float64 `json:"land_cost" binding:"required"`
	GLA             *float64 `json:"gla" binding:"required"`
	HardCostPerSqft *float64 `json:"hard_cost_per_sqft" binding:"required"`
	SoftCostPercent *float64 `json:"soft_cost_percent" binding:"required"`
	RentPerSqft     *float64 `json:"rent_per_sqft" binding:"required"`
	VacancyRate     *float64 `json:"vacancy_rate" binding:"required"`
	CapRate         *float64 `json:"cap_rate" binding:"required"`
}

// CalculateProForma runs the pro-forma engine on the posted assumptions.
// Assumptions are session-transient: nothing here is persisted, and the
// endpoint is safe to call on every input change.
func CalculateProForma(c *gin.Context) {
	var req ProFormaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assumptions := services.ProFormaAssumptions{
		LandCost:        *req.LandCost,
		GLA:             *req.GLA,
		HardCostPerSqft: *req.HardCostPerSqft,
		SoftCostPercent: *req.SoftCostPercent,
		RentPerSqft:     *req.RentPerSqft,
		VacancyRate:     *req.VacancyRate,
		CapRate:         *req.CapRate,
	}

	result, err := services.CalculateProForma(assumptions)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAssumptions) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate pro forma"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}
