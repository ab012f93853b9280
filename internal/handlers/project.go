package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere-dev/synergysphere/db"
	"github.com/synergysphere-dev/synergysphere/internal/models"
	"github.com/synergysphere-dev/synergysphere/internal/services"
	"github.com/synergysphere-dev/synergysphere/internal/types"
	"github.com/synergysphere-dev/synergysphere/internal/utils"
	"gorm.io/gorm"
)

type CreateProjectRequest struct {
	Name      string `json:"name"`
	CreatorID *uint  `json:"creator_id"`
}

type AddMemberRequest struct {
	UserID *uint `json:"user_id"`
}

// projectQuery preloads everything the canonical project representation
// needs: tasks, members and the full message set, all in insertion order.
func projectQuery() *gorm.DB {
	return db.DB.
		Preload("Tasks", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("tasks.id ASC")
		}).
		Preload("ProjectMemberships", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("project_memberships.id ASC")
		}).
		Preload("ProjectMemberships.User").
		Preload("Messages", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("messages.id ASC")
		}).
		Preload("Messages.Author")
}

func loadProject(projectID uint) (models.Project, error) {
	var project models.Project

	err := projectQuery().First(&project, projectID).Error

	return project, err
}

func ListProjects(ctx *gin.Context) {
	var projects []models.Project

	if err := projectQuery().Order("projects.id ASC").Find(&projects).Error; err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]types.ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, types.NewProjectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetProject(ctx *gin.Context) {
	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := loadProject(projectID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to retrieve project %d: %v", projectID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewProjectResponse(project))
}

func CreateProject(ctx *gin.Context) {
	var body CreateProjectRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if body.Name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Project name is required"})
		return
	}

	project := models.Project{Name: body.Name}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		// An unknown creator_id is ignored rather than rejected; the
		// project is still created. The creator gets no notification.
		if body.CreatorID != nil {
			var creator models.User

			err := tx.First(&creator, *body.CreatorID).Error

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}

			if err != nil {
				return err
			}

			membership := models.ProjectMembership{
				UserID:    creator.ID,
				ProjectID: project.ID,
			}

			return tx.Create(&membership).Error
		}

		return nil
	})

	if err != nil {
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	created, err := loadProject(project.ID)

	if err != nil {
		log.Printf("Failed to reload project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}

	ctx.JSON(http.StatusCreated, types.NewProjectResponse(created))
}

func DeleteProject(ctx *gin.Context) {
	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project models.Project

	if err := db.DB.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to retrieve project %d: %v", projectID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	// Tasks, messages and memberships go with it via ON DELETE CASCADE.
	if err := db.DB.Delete(&project).Error; err != nil {
		log.Printf("Failed to delete project %d: %v", projectID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func AddProjectMember(ctx *gin.Context) {
	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body AddMemberRequest

	if err := ctx.ShouldBindJSON(&body); err != nil || body.UserID == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	var project models.Project

	if err := db.DB.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to retrieve project %d: %v", projectID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	var user models.User

	if err := db.DB.First(&user, *body.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Failed to retrieve user %d: %v", *body.UserID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	var existing models.ProjectMembership

	err = db.DB.Where("project_id = ? AND user_id = ?", project.ID, user.ID).First(&existing).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to check membership: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member"})
		return
	}

	// Adding an existing member is a no-op that still returns the
	// current project representation.
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = db.DB.Transaction(func(tx *gorm.DB) error {
			membership := models.ProjectMembership{
				UserID:    user.ID,
				ProjectID: project.ID,
			}

			if err := tx.Create(&membership).Error; err != nil {
				return err
			}

			content := fmt.Sprintf("You have been added to the project '%s'.", project.Name)

			return services.CreateNotification(tx, user.ID, content, services.ProjectLink(project.ID))
		})

		if err != nil {
			log.Printf("Failed to add member to project %d: %v", project.ID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member"})
			return
		}
	}

	updated, err := loadProject(project.ID)

	if err != nil {
		log.Printf("Failed to reload project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}

	ctx.JSON(http.StatusCreated, types.NewProjectResponse(updated))
}
