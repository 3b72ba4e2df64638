package handler

import (
	"errors"

	"main/dto"
	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetTimetableHandler(c *gin.Context, timetableService *usecase.TimetableService) {
	userID := middleware.CurrentUserID(c)
	p := utils.GetPagination(c)

	entries, total, err := timetableService.List(c.Request.Context(), userID, p)
	if err != nil {
		utils.InternalError(c, "Failed to fetch timetable")
		return
	}

	utils.Paginated(c, entries, total, p.Page, p.Limit)
}

func CreateTimetableEntryHandler(c *gin.Context, timetableService *usecase.TimetableService) {
	var req dto.CreateTimetableEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", bindingErrorDetails(err))
		return
	}

	entry, err := timetableService.Create(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		utils.InternalError(c, "Failed to create timetable entry")
		return
	}

	middleware.TrackEntityOperation("timetable_entry", "create")
	utils.Created(c, entry)
}

func UpdateTimetableEntryHandler(c *gin.Context, timetableService *usecase.TimetableService) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTimetableEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", bindingErrorDetails(err))
		return
	}

	entry, err := timetableService.Update(c.Request.Context(), middleware.CurrentUserID(c), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Timetable entry not found")
			return
		}
		utils.InternalError(c, "Failed to update timetable entry")
		return
	}

	middleware.TrackEntityOperation("timetable_entry", "update")
	utils.Success(c, entry)
}

func DeleteTimetableEntryHandler(c *gin.Context, timetableService *usecase.TimetableService) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := timetableService.Delete(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Timetable entry not found")
			return
		}
		utils.InternalError(c, "Failed to delete timetable entry")
		return
	}

	middleware.TrackEntityOperation("timetable_entry", "delete")
	utils.Success(c, gin.H{"message": "Timetable entry deleted successfully"})
}
