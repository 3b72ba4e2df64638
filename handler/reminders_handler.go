package handler

import (
	"errors"
	"time"

	"main/dto"
	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetRemindersHandler(c *gin.Context, remindersService *usecase.RemindersService) {
	userID := middleware.CurrentUserID(c)
	p := utils.GetPagination(c)

	reminders, total, err := remindersService.List(c.Request.Context(), userID, p)
	if err != nil {
		utils.InternalError(c, "Failed to fetch reminders")
		return
	}

	utils.Paginated(c, reminders, total, p.Page, p.Limit)
}

// GetUpcomingRemindersHandler serves the client's recurring alert poll:
// incomplete reminders due within the next 24 hours.
func GetUpcomingRemindersHandler(c *gin.Context, remindersService *usecase.RemindersService) {
	userID := middleware.CurrentUserID(c)

	reminders, err := remindersService.Upcoming(c.Request.Context(), userID, time.Now())
	if err != nil {
		utils.InternalError(c, "Failed to fetch upcoming reminders")
		return
	}

	utils.Success(c, reminders)
}

func CreateReminderHandler(c *gin.Context, remindersService *usecase.RemindersService) {
	var req dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", bindingErrorDetails(err))
		return
	}

	reminder, err := remindersService.Create(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		utils.InternalError(c, "Failed to create reminder")
		return
	}

	middleware.TrackEntityOperation("reminder", "create")
	utils.Created(c, reminder)
}

func UpdateReminderHandler(c *gin.Context, remindersService *usecase.RemindersService) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", bindingErrorDetails(err))
		return
	}

	reminder, err := remindersService.Update(c.Request.Context(), middleware.CurrentUserID(c), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Reminder not found")
			return
		}
		utils.InternalError(c, "Failed to update reminder")
		return
	}

	middleware.TrackEntityOperation("reminder", "update")
	utils.Success(c, reminder)
}

func DeleteReminderHandler(c *gin.Context, remindersService *usecase.RemindersService) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := remindersService.Delete(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Reminder not found")
			return
		}
		utils.InternalError(c, "Failed to delete reminder")
		return
	}

	middleware.TrackEntityOperation("reminder", "delete")
	utils.Success(c, gin.H{"message": "Reminder deleted successfully"})
}
