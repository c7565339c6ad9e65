package controllers

import (
	"devtrack-api/config"
	"devtrack-api/models"
	"devtrack-api/utils"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadDocument stores a file under UPLOAD_PATH and records its metadata.
// An optional step_id form field links the document to a roadmap step; the
// link is weak and is never validated against the template here.
func UploadDocument(c *gin.Context) {
	project, ok := fetchOwnedProject(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	docType := c.PostForm("type")
	if !models.IsValidDocumentType(docType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document type"})
		return
	}
	docCategory := c.PostForm("category")
	if !models.IsValidDocumentCategory(docCategory) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document category"})
		return
	}

	var stepID *string
	if s := c.PostForm("step_id"); s != "" {
		stepID = &s
	}

	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	projectDir := filepath.Join(uploadPath, project.ID)
	if err := os.MkdirAll(projectDir, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}

	// Stored name is a uuid; the original name lives in the metadata row
	storedName := uuid.New().String() + filepath.Ext(file.Filename)
	storedPath := filepath.Join(projectDir, storedName)

	if err := c.SaveUploadedFile(file, storedPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	now := time.Now()
	size := utils.FormatFileSize(file.Size)
	document := models.Document{
		ID:        uuid.New().String(),
		ProjectID: project.ID,
		Name:      filepath.Base(file.Filename),
		Type:      docType,
		Category:  docCategory,
		Size:      &size,
		Date:      &now,
		StepID:    stepID,
		FilePath:  storedPath,
		CreatedAt: now,
	}

	if err := config.DB.Create(&document).Error; err != nil {
		// Best effort cleanup of the orphaned file
		os.Remove(storedPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document metadata"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    document,
	})
}

// GetProjectDocuments lists a project's documents, newest first
func GetProjectDocuments(c *gin.Context) {
	project, ok := fetchOwnedProject(c)
	if !ok {
		return
	}

	documents, err := loadProjectDocuments(project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    documents,
		"count":   len(documents),
	})
}

// DownloadDocument serves the stored file for a document
func DownloadDocument(c *gin.Context) {
	document, ok := fetchOwnedDocument(c)
	if !ok {
		return
	}

	if _, err := os.Stat(document.FilePath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found on server"})
		return
	}

	c.FileAttachment(document.FilePath, document.Name)
}

// DeleteDocument soft-deletes a document's metadata row. The stored file is
// kept; reclaiming disk space is an operator concern.
func DeleteDocument(c *gin.Context) {
	document, ok := fetchOwnedDocument(c)
	if !ok {
		return
	}

	now := time.Now()
	document.DeleteAt = &now
	if err := config.DB.Save(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Document deleted successfully",
	})
}

// fetchOwnedDocument loads the document in :document_id and checks the
// caller may access its project.
func fetchOwnedDocument(c *gin.Context) (models.Document, bool) {
	documentID := c.Param("document_id")
	userID := c.GetInt("userID")
	roleID := c.GetInt("roleID")

	var document models.Document
	if err := config.DB.Where("id = ? AND delete_at IS NULL", documentID).First(&document).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return document, false
	}

	var project models.Project
	if err := config.DB.Where("id = ? AND delete_at IS NULL", document.ProjectID).First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return document, false
	}
	if roleID != models.RoleAdmin && project.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return document, false
	}

	return document, true
}
