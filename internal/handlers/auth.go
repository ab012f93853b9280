package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere-dev/synergysphere/db"
	"github.com/synergysphere-dev/synergysphere/internal/models"
	"github.com/synergysphere-dev/synergysphere/internal/types"
	"gorm.io/gorm"
)

type GoogleAuthRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	UID   string `json:"uid"`
}

// GoogleAuth looks a user up by email and creates one if absent. This is an
// identity assertion, not authentication: the asserted email and uid are
// taken at face value, no credential is verified.
func GoogleAuth(ctx *gin.Context) {
	var body GoogleAuthRequest

	if err := ctx.ShouldBindJSON(&body); err != nil || body.Email == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var user models.User

	err := db.DB.Where("email = ?", email).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			Email: email,
			Name:  body.Name,
		}

		if body.UID != "" {
			user.GoogleID = &body.UID
		}

		if err := db.DB.Create(&user).Error; err != nil {
			log.Printf("Failed to create user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
	} else if err != nil {
		log.Printf("Failed to look up user by email: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	if err := db.DB.Preload("ProjectMemberships").First(&user, user.ID).Error; err != nil {
		log.Printf("Failed to reload user %d: %v", user.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(user))
}
