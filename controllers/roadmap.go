package controllers

import (
	"devtrack-api/config"
	"devtrack-api/models"
	"devtrack-api/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type UpdateStepRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetProjectRoadmap returns the lifecycle template merged with the
// project's step statuses, per-step linked documents and per-phase progress.
func GetProjectRoadmap(c *gin.Context) {
	project, ok := fetchOwnedProject(c)
	if !ok {
		return
	}

	var steps []models.ProjectStep
	if err := config.DB.Where("project_id = ?", project.ID).Find(&steps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch roadmap"})
		return
	}

	statuses := make(map[string]string, len(steps))
	for _, step := range steps {
		statuses[step.StepID] = step.Status
	}

	documents, err := loadProjectDocuments(project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	merged := services.ApplyStepStatuses(services.RoadmapTemplate(), statuses)
	phases, warnings := services.ResolveRoadmap(merged, documents)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     phases,
		"warnings": warnings,
	})
}

// UpdateProjectStep sets the status of one roadmap step for a project,
// creating the row when the project predates per-project step tracking.
func UpdateProjectStep(c *gin.Context) {
	project, ok := fetchOwnedProject(c)
	if !ok {
		return
	}

	stepID := c.Param("step_id")
	known := false
	for _, id := range services.TemplateStepIDs() {
		if id == stepID {
			known = true
			break
		}
	}
	if !known {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown roadmap step"})
		return
	}

	var req UpdateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.IsValidStepStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid step status"})
		return
	}

	now := time.Now()
	step := models.ProjectStep{
		ProjectID: project.ID,
		StepID:    stepID,
		Status:    req.Status,
		UpdatedAt: &now,
	}

	if err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "step_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&step).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update step"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    step,
	})
}
