package controllers

import (
	"devtrack-api/config"
	"devtrack-api/models"
	"devtrack-api/services"
	"devtrack-api/utils"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name      string  `json:"name" binding:"required"`
	Allocated float64 `json:"allocated"`
	Status    *string `json:"status"`
}

type UpdateCategoryRequest struct {
	Name      *string  `json:"name"`
	Allocated *float64 `json:"allocated"`
	Status    *string  `json:"status"`
}

type CreateItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	Vendor    *string `json:"vendor"`
	Estimated float64 `json:"estimated"`
	Actuals   float64 `json:"actuals"`
}

type UpdateItemRequest struct {
	Name      *string  `json:"name"`
	Vendor    *string  `json:"vendor"`
	Estimated *float64 `json:"estimated"`
	Actuals   *float64 `json:"actuals"`
}

type CreateInvoiceRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date" binding:"required"`
	Status      *string `json:"status"`
}

// GetProjectBudget returns the rolled-up budget tree for a project along
// with the project-level percent spent.
func GetProjectBudget(c *gin.Context) {
	project, ok := fetchOwnedProject(c)
	if !ok {
		return
	}

	categories, err := loadProjectBudget(project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budget"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"data":          services.RollupCategories(categories),
		"percent_spent": services.PercentSpent(project.Spent, project.Budget),
	})
}

// CreateBudgetCategory adds a budget category to a project
func CreateBudgetCategory(c *gin.Context) {
	project, ok := fetchOwnedProject(c)
	if !ok {
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Allocated < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Allocated must not be negative"})
		return
	}

	status := models.CategoryStatusOnTrack
	if req.Status != nil {
		if !models.IsValidCategoryStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category status"})
			return
		}
		status = *req.Status
	}

	category := models.BudgetCategory{
		ID:        uuid.New().String(),
		ProjectID: project.ID,
		Name:      utils.SanitizeInput(req.Name),
		Allocated: req.Allocated,
		Status:    status,
		CreatedAt: time.Now(),
	}

	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    category,
	})
}

// UpdateBudgetCategory edits a category's name, allocation or health status
func UpdateBudgetCategory(c *gin.Context) {
	category, ok := fetchOwnedCategory(c)
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		category.Name = utils.SanitizeInput(*req.Name)
	}
	if req.Allocated != nil {
		if *req.Allocated < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Allocated must not be negative"})
			return
		}
		category.Allocated = *req.Allocated
	}
	if req.Status != nil {
		if !models.IsValidCategoryStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category status"})
			return
		}
		category.Status = *req.Status
	}

	if err := config.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    category,
	})
}

// CreateBudgetItem adds a line item to a category
func CreateBudgetItem(c *gin.Context) {
	category, ok := fetchOwnedCategory(c)
	if !ok {
		return
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Estimated < 0 || req.Actuals < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amounts must not be negative"})
		return
	}

	item := models.BudgetLineItem{
		ID:         uuid.New().String(),
		CategoryID: category.ID,
		Name:       utils.SanitizeInput(req.Name),
		Vendor:     req.Vendor,
		Estimated:  req.Estimated,
		Actuals:    req.Actuals,
		CreatedAt:  time.Now(),
	}

	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    item,
	})
}

// UpdateBudgetItem edits a line item
func UpdateBudgetItem(c *gin.Context) {
	item, category, ok := fetchOwnedItem(c)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		item.Name = utils.SanitizeInput(*req.Name)
	}
	if req.Vendor != nil {
		item.Vendor = req.Vendor
	}
	if req.Estimated != nil {
		if *req.Estimated < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amounts must not be negative"})
			return
		}
		item.Estimated = *req.Estimated
	}
	if req.Actuals != nil {
		if *req.Actuals < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amounts must not be negative"})
			return
		}
		item.Actuals = *req.Actuals
	}

	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	if req.Actuals != nil {
		notifyIfOverBudget(category.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}

// GetItemInvoices lists a line item's invoices in creation order
func GetItemInvoices(c *gin.Context) {
	item, _, ok := fetchOwnedItem(c)
	if !ok {
		return
	}

	var invoices []models.Invoice
	if err := config.DB.Where("budget_item_id = ?", item.ID).
		Order("created_at ASC").
		Find(&invoices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    invoices,
		"count":   len(invoices),
	})
}

// CreateInvoice records an invoice against a line item. When the owning
// category's rolled-up spend ends up above its allocation an alert email is
// sent to the project owner.
func CreateInvoice(c *gin.Context) {
	item, category, ok := fetchOwnedItem(c)
	if !ok {
		return
	}

	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must not be negative"})
		return
	}

	date, err := parseDatePtr(&req.Date)
	if err != nil || date == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	status := models.InvoiceStatusPending
	if req.Status != nil {
		if !models.IsValidInvoiceStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice status"})
			return
		}
		status = *req.Status
	}

	invoice := models.Invoice{
		ID:           uuid.New().String(),
		BudgetItemID: item.ID,
		Description:  utils.SanitizeInput(req.Description),
		Amount:       req.Amount,
		Date:         *date,
		Status:       status,
		CreatedAt:    time.Now(),
	}

	if err := config.DB.Create(&invoice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		return
	}

	notifyIfOverBudget(category.ID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    invoice,
	})
}

// fetchOwnedCategory loads the category in :category_id and checks the
// caller may access its project.
func fetchOwnedCategory(c *gin.Context) (models.BudgetCategory, bool) {
	return authorizeCategory(c, c.Param("category_id"))
}

// fetchOwnedItem loads the line item in :item_id plus its owning category,
// with the same ownership check.
func fetchOwnedItem(c *gin.Context) (models.BudgetLineItem, models.BudgetCategory, bool) {
	itemID := c.Param("item_id")

	var item models.BudgetLineItem
	if err := config.DB.Where("id = ?", itemID).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return item, models.BudgetCategory{}, false
	}

	category, ok := authorizeCategory(c, item.CategoryID)
	return item, category, ok
}

func authorizeCategory(c *gin.Context, categoryID string) (models.BudgetCategory, bool) {
	userID := c.GetInt("userID")
	roleID := c.GetInt("roleID")

	var category models.BudgetCategory
	if err := config.DB.Where("id = ?", categoryID).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return category, false
	}

	var project models.Project
	if err := config.DB.Where("id = ? AND delete_at IS NULL", category.ProjectID).First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return category, false
	}
	if roleID != models.RoleAdmin && project.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return category, false
	}

	return category, true
}

// notifyIfOverBudget re-rolls the category and mails the project owner when
// derived spend exceeds the allocation. Failures are logged, never surfaced.
func notifyIfOverBudget(categoryID string) {
	var category models.BudgetCategory
	if err := config.DB.Where("id = ?", categoryID).
		Preload("Items").
		Preload("Items.Invoices").
		First(&category).Error; err != nil {
		log.Printf("budget alert: failed to load category %s: %v", categoryID, err)
		return
	}

	rollup := services.RollupCategory(category)
	if rollup.Spent <= category.Allocated {
		return
	}

	var project models.Project
	if err := config.DB.Where("id = ?", category.ProjectID).Preload("Owner").First(&project).Error; err != nil {
		log.Printf("budget alert: failed to load project %s: %v", category.ProjectID, err)
		return
	}
	if project.Owner.Email == "" {
		return
	}

	subject := fmt.Sprintf("Budget alert: %s is over allocation", category.Name)
	body := fmt.Sprintf(
		"<p>Category <b>%s</b> in project <b>%s</b> has spent %s of its %s allocation.</p>",
		category.Name,
		project.Name,
		utils.FormatMoney(rollup.Spent),
		utils.FormatMoney(category.Allocated),
	)

	if err := config.SendMail([]string{project.Owner.Email}, subject, body); err != nil {
		log.Printf("budget alert: failed to send email for category %s: %v", categoryID, err)
	}
}
