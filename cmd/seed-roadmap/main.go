// Backfill script for per-project roadmap step rows
// cmd/seed-roadmap/main.go
package main

import (
	"devtrack-api/config"
	"devtrack-api/models"
	"devtrack-api/services"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	// Get all projects
	var projects []models.Project
	if err := config.DB.Where("delete_at IS NULL").Find(&projects).Error; err != nil {
		log.Fatal("Failed to fetch projects:", err)
	}

	template := services.RoadmapTemplate()

	for _, project := range projects {
		var existing []models.ProjectStep
		if err := config.DB.Where("project_id = ?", project.ID).Find(&existing).Error; err != nil {
			log.Printf("Failed to fetch steps for project %s: %v\n", project.ID, err)
			continue
		}

		seeded := make(map[string]bool, len(existing))
		for _, step := range existing {
			seeded[step.StepID] = true
		}

		created := 0
		for _, phase := range template {
			for _, step := range phase.Steps {
				if seeded[step.ID] {
					continue
				}
				row := models.ProjectStep{
					ProjectID: project.ID,
					StepID:    step.ID,
					Status:    step.Status,
				}
				if err := config.DB.Create(&row).Error; err != nil {
					log.Printf("Failed to seed step %s for project %s: %v\n", step.ID, project.ID, err)
					continue
				}
				created++
			}
		}

		if created > 0 {
			log.Printf("Seeded %d step rows for project %s\n", created, project.Name)
		} else {
			log.Printf("Project %s already seeded, skipping\n", project.Name)
		}
	}

	log.Println("Roadmap seeding completed!")
}
