package controllers

import (
	"devtrack-api/config"
	"devtrack-api/models"
	"devtrack-api/services"
	"devtrack-api/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateProjectRequest struct {
	Name           string  `json:"name" binding:"required"`
	Location       string  `json:"location" binding:"required"`
	Phase          string  `json:"phase" binding:"required"`
	Budget         float64 `json:"budget"`
	StartDate      *string `json:"start_date"`
	CompletionDate *string `json:"completion_date"`
	ImageURL       *string `json:"image_url"`
}

type UpdateProjectRequest struct {
	Name           *string  `json:"name"`
	Location       *string  `json:"location"`
	Phase          *string  `json:"phase"`
	Budget         *float64 `json:"budget"`
	Spent          *float64 `json:"spent"`
	StartDate      *string  `json:"start_date"`
	CompletionDate *string  `json:"completion_date"`
	ImageURL       *string  `json:"image_url"`
}

// GetProjects returns the caller's projects, newest first. Admins see all
// projects.
func GetProjects(c *gin.Context) {
	userID := c.GetInt("userID")
	roleID := c.GetInt("roleID")

	query := config.DB.Where("delete_at IS NULL")
	if roleID != models.RoleAdmin {
		query = query.Where("user_id = ?", userID)
	}

	var projects []models.Project
	if err := query.Order("created_at DESC").Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    projects,
		"count":   len(projects),
	})
}

// CreateProject creates a project and seeds its roadmap step rows from the
// lifecycle template defaults.
func CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidPhase(req.Phase) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project phase"})
		return
	}
	if req.Budget < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Budget must not be negative"})
		return
	}

	startDate, err := parseDatePtr(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date"})
		return
	}
	completionDate, err := parseDatePtr(req.CompletionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid completion_date"})
		return
	}

	project := models.Project{
		ID:             uuid.New().String(),
		UserID:         c.GetInt("userID"),
		Name:           utils.SanitizeInput(req.Name),
		Location:       utils.SanitizeInput(req.Location),
		Budget:         req.Budget,
		Phase:          req.Phase,
		StartDate:      startDate,
		CompletionDate: completionDate,
		ImageURL:       req.ImageURL,
		CreatedAt:      time.Now(),
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		// Seed per-project step statuses from the template defaults
		for _, phase := range services.RoadmapTemplate() {
			for _, step := range phase.Steps {
				row := models.ProjectStep{
					ProjectID: project.ID,
					StepID:    step.ID,
					Status:    step.Status,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    project,
	})
}

// GetProject returns the composed project aggregate: project fields, the
// rolled-up budget tree and the document list, plus percent_spent.
func GetProject(c *gin.Context) {
	project, ok := fetchOwnedProject(c)
	if !ok {
		return
	}

	categories, err := loadProjectBudget(project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budget"})
		return
	}

	documents, err := loadProjectDocuments(project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    services.BuildProjectAggregate(project, categories, documents),
	})
}

// UpdateProject applies partial edits to a project
func UpdateProject(c *gin.Context) {
	project, ok := fetchOwnedProject(c)
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		project.Name = utils.SanitizeInput(*req.Name)
	}
	if req.Location != nil {
		project.Location = utils.SanitizeInput(*req.Location)
	}
	if req.Phase != nil {
		if !models.IsValidPhase(*req.Phase) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project phase"})
			return
		}
		project.Phase = *req.Phase
	}
	if req.Budget != nil {
		if *req.Budget < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Budget must not be negative"})
			return
		}
		project.Budget = *req.Budget
	}
	if req.Spent != nil {
		if *req.Spent < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Spent must not be negative"})
			return
		}
		project.Spent = *req.Spent
	}
	if req.StartDate != nil {
		startDate, err := parseDatePtr(req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date"})
			return
		}
		project.StartDate = startDate
	}
	if req.CompletionDate != nil {
		completionDate, err := parseDatePtr(req.CompletionDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid completion_date"})
			return
		}
		project.CompletionDate = completionDate
	}
	if req.ImageURL != nil {
		project.ImageURL = req.ImageURL
	}

	if err := config.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    project,
	})
}

// DeleteProject soft-deletes a project
func DeleteProject(c *gin.Context) {
	project, ok := fetchOwnedProject(c)
	if !ok {
		return
	}

	now := time.Now()
	project.DeleteAt = &now
	if err := config.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project deleted successfully",
	})
}

// fetchOwnedProject loads the project in :id and checks the caller owns it
// (admins may access any project). On failure it writes the response and
// returns ok = false.
func fetchOwnedProject(c *gin.Context) (models.Project, bool) {
	id := c.Param("id")
	userID := c.GetInt("userID")
	roleID := c.GetInt("roleID")

	var project models.Project
	if err := config.DB.Where("id = ? AND delete_at IS NULL", id).First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return project, false
	}

	if roleID != models.RoleAdmin && project.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return project, false
	}

	return project, true
}

// loadProjectBudget fetches the full budget tree in creation order. The
// rollup engine requires the order the rows were entered, so every level is
// ordered by created_at ASC.
func loadProjectBudget(projectID string) ([]models.BudgetCategory, error) {
	var categories []models.BudgetCategory
	err := config.DB.Where("project_id = ?", projectID).
		Order("created_at ASC").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("budget_items.created_at ASC")
		}).
		Preload("Items.Invoices", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoices.created_at ASC")
		}).
		Find(&categories).Error
	return categories, err
}

// loadProjectDocuments fetches a project's documents, newest first.
func loadProjectDocuments(projectID string) ([]models.Document, error) {
	var documents []models.Document
	err := config.DB.Where("project_id = ? AND delete_at IS NULL", projectID).
		Order("created_at DESC").
		Find(&documents).Error
	return documents, err
}

// parseDatePtr parses an optional ISO-8601 date (date-only or RFC 3339).
// nil and empty strings stay nil: absence is explicit, never an empty value.
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", *s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
