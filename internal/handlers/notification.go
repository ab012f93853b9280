package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere-dev/synergysphere/db"
	"github.com/synergysphere-dev/synergysphere/internal/models"
	"github.com/synergysphere-dev/synergysphere/internal/types"
	"github.com/synergysphere-dev/synergysphere/internal/utils"
	"gorm.io/gorm"
)

// ListNotifications returns a user's unread notifications, newest first.
// The user is taken from the query string; there is no caller identity, so
// any caller may read any user's notifications. Known capability gap.
func ListNotifications(ctx *gin.Context) {
	userIDStr := ctx.Query("user_id")

	if userIDStr == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	userID, err := strconv.ParseUint(userIDStr, 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid User ID"})
		return
	}

	var user models.User

	if err := db.DB.First(&user, uint(userID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Failed to retrieve user %d: %v", userID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	var notifications []models.Notification

	// The id tiebreak keeps fan-outs written in one transaction stable.
	err = db.DB.
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Order("timestamp DESC").
		Order("id DESC").
		Find(&notifications).Error

	if err != nil {
		log.Printf("Failed to retrieve notifications for user %d: %v", user.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}

	response := make([]types.NotificationResponse, 0, len(notifications))

	for _, notification := range notifications {
		response = append(response, types.NewNotificationResponse(notification))
	}

	ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead sets is_read unconditionally, so repeating the call
// is harmless. No ownership check is performed. Known capability gap.
func MarkNotificationRead(ctx *gin.Context) {
	notificationID, err := utils.GetNotificationID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var notification models.Notification

	if err := db.DB.First(&notification, notificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		} else {
			log.Printf("Failed to retrieve notification %d: %v", notificationID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notification"})
		}
		return
	}

	notification.IsRead = true

	if err := db.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		log.Printf("Failed to mark notification %d read: %v", notification.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewNotificationResponse(notification))
}
