package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere-dev/synergysphere/db"
	"github.com/synergysphere-dev/synergysphere/internal/models"
	"github.com/synergysphere-dev/synergysphere/internal/services"
	"github.com/synergysphere-dev/synergysphere/internal/types"
	"github.com/synergysphere-dev/synergysphere/internal/utils"
	"gorm.io/gorm"
)

type CreateMessageRequest struct {
	Content  string `json:"content"`
	UserID   *uint  `json:"user_id"`
	ParentID *uint  `json:"parent_id"`
}

// ListMessages returns the project's top-level messages in insertion order,
// replies nested recursively inside each one.
func ListMessages(ctx *gin.Context) {
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

	var messages []models.Message

	if err := db.DB.Preload("Author").Where("project_id = ?", project.ID).Order("id ASC").Find(&messages).Error; err != nil {
		log.Printf("Failed to retrieve messages for project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve messages"})
		return
	}

	ctx.JSON(http.StatusOK, types.BuildMessageTree(messages))
}

func CreateMessage(ctx *gin.Context) {
	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body CreateMessageRequest

	if err := ctx.ShouldBindJSON(&body); err != nil || body.Content == "" || body.UserID == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Content and user_id are required"})
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

	var author models.User

	if err := db.DB.First(&author, *body.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Failed to retrieve user %d: %v", *body.UserID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	// A reply must stay inside its parent's project, otherwise the thread
	// tree of either project would render a message that is not there.
	if body.ParentID != nil {
		var parent models.Message

		if err := db.DB.First(&parent, *body.ParentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Parent message not found"})
			} else {
				log.Printf("Failed to retrieve message %d: %v", *body.ParentID, err)
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve message"})
			}
			return
		}

		if parent.ProjectID != project.ID {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Parent message belongs to a different project"})
			return
		}
	}

	message := models.Message{
		Content:   body.Content,
		Timestamp: time.Now().UTC(),
		UserID:    author.ID,
		ProjectID: project.ID,
		ParentID:  body.ParentID,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&message).Error; err != nil {
			return err
		}

		content := fmt.Sprintf("New message in '%s' by %s.", project.Name, author.Name)

		return services.NotifyProjectMembers(tx, project, content, author.ID)
	})

	if err != nil {
		log.Printf("Failed to create message in project %d: %v", project.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create message"})
		return
	}

	message.Author = author

	ctx.JSON(http.StatusCreated, types.NewMessageResponse(message))
}
