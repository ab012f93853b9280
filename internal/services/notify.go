package services

import (
	"fmt"
	"time"

	"github.com/synergysphere-dev/synergysphere/internal/models"
	"gorm.io/gorm"
)

// ProjectLink is the client-side route stored on a notification so the
// frontend can jump to the project that produced it.
func ProjectLink(projectID uint) string {
	return fmt.Sprintf("#/projects/%d", projectID)
}

// CreateNotification inserts one notification on the caller's transaction,
// so it commits or rolls back together with the triggering mutation.
func CreateNotification(tx *gorm.DB, userID uint, content string, link string) error {
	notification := models.Notification{
		Content:   content,
		Timestamp: time.Now().UTC(),
		UserID:    userID,
		Link:      link,
	}

	return tx.Create(&notification).Error
}

// NotifyProjectMembers fans content out to every member of the project,
// skipping excludeUserID when it is non-zero. Every row rides the caller's
// transaction: a partial fan-out is never observable.
func NotifyProjectMembers(tx *gorm.DB, project models.Project, content string, excludeUserID uint) error {
	var memberships []models.ProjectMembership

	if err := tx.Where("project_id = ?", project.ID).Find(&memberships).Error; err != nil {
		return err
	}

	for _, membership := range memberships {
		if excludeUserID != 0 && membership.UserID == excludeUserID {
			continue
		}

		if err := CreateNotification(tx, membership.UserID, content, ProjectLink(project.ID)); err != nil {
			return err
		}
	}

	return nil
}
