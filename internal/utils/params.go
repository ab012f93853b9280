package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	idStr := ctx.Param(name)

	if idStr == "" {
		return 0, errors.New("ID not found")
	}

	id, err := strconv.ParseUint(idStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid ID")
	}

	return uint(id), nil
}

func GetProjectID(ctx *gin.Context) (uint, error) {
	id, err := parseIDParam(ctx, "project_id")

	if err != nil {
		return 0, errors.New("Invalid Project ID")
	}

	return id, nil
}

func GetTaskID(ctx *gin.Context) (uint, error) {
	id, err := parseIDParam(ctx, "task_id")

	if err != nil {
		return 0, errors.New("Invalid Task ID")
	}

	return id, nil
}

func GetNotificationID(ctx *gin.Context) (uint, error) {
	id, err := parseIDParam(ctx, "notification_id")

	if err != nil {
		return 0, errors.New("Invalid Notification ID")
	}

	return id, nil
}
