package controllers

import (
	"devtrack-api/config"
	"devtrack-api/models"
	"devtrack-api/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns portfolio statistics for the caller's projects.
// Admins see the whole portfolio.
func GetDashboardStats(c *gin.Context) {
	userID := c.GetInt("userID")
	roleID := c.GetInt("roleID")

	query := config.DB.Model(&models.Project{}).Where("delete_at IS NULL")
	if roleID != models.RoleAdmin {
		query = query.Where("user_id = ?", userID)
	}

	var projects []models.Project
	if err := query.Order("created_at DESC").Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	var totals struct {
		Projects    int     `json:"projects"`
		TotalBudget float64 `json:"total_budget"`
		TotalSpent  float64 `json:"total_spent"`
	}

	phaseCounts := make(map[string]int, len(models.ProjectPhases))
	for _, phase := range models.ProjectPhases {
		phaseCounts[phase] = 0
	}

	for _, project := range projects {
		totals.Projects++
		totals.TotalBudget += project.Budget
		totals.TotalSpent += project.Spent
		phaseCounts[project.Phase]++
	}

	type projectSummary struct {
		ID           string   `json:"id"`
		Name         string   `json:"name"`
		Phase        string   `json:"phase"`
		Budget       float64  `json:"budget"`
		Spent        float64  `json:"spent"`
		PercentSpent *float64 `json:"percent_spent"`
	}

	summaries := make([]projectSummary, 0, len(projects))
	for _, project := range projects {
		summaries = append(summaries, projectSummary{
			ID:           project.ID,
			Name:         project.Name,
			Phase:        project.Phase,
			Budget:       project.Budget,
			Spent:        project.Spent,
			PercentSpent: services.PercentSpent(project.Spent, project.Budget),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"totals":        totals,
			"by_phase":      phaseCounts,
			"percent_spent": services.PercentSpent(totals.TotalSpent, totals.TotalBudget),
			"projects":      summaries,
			"current_date":  time.Now().Format("2006-01-02"),
		},
	})
}
