package handler

import (
	"errors"

	"main/dto"
	"main/middleware"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetAssignmentsHandler(c *gin.Context, assignmentsService *usecase.AssignmentsService) {
	status := c.Query("status")
	switch status {
	case "", model.AssignmentPending, model.AssignmentInProgress, model.AssignmentCompleted:
	default:
		utils.BadRequest(c, "Status must be pending, in-progress, or completed")
		return
	}

	userID := middleware.CurrentUserID(c)
	p := utils.GetPagination(c)

	assignments, total, err := assignmentsService.List(c.Request.Context(), userID, status, p)
	if err != nil {
		utils.InternalError(c, "Failed to fetch assignments")
		return
	}

	utils.Paginated(c, assignments, total, p.Page, p.Limit)
}

func CreateAssignmentHandler(c *gin.Context, assignmentsService *usecase.AssignmentsService) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", bindingErrorDetails(err))
		return
	}

	assignment, err := assignmentsService.Create(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		utils.InternalError(c, "Failed to create assignment")
		return
	}

	middleware.TrackEntityOperation("assignment", "create")
	utils.Created(c, assignment)
}

func UpdateAssignmentHandler(c *gin.Context, assignmentsService *usecase.AssignmentsService) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", bindingErrorDetails(err))
		return
	}

	assignment, err := assignmentsService.Update(c.Request.Context(), middleware.CurrentUserID(c), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Assignment not found")
			return
		}
		utils.InternalError(c, "Failed to update assignment")
		return
	}

	middleware.TrackEntityOperation("assignment", "update")
	utils.Success(c, assignment)
}

func DeleteAssignmentHandler(c *gin.Context, assignmentsService *usecase.AssignmentsService) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := assignmentsService.Delete(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Assignment not found")
			return
		}
		utils.InternalError(c, "Failed to delete assignment")
		return
	}

	middleware.TrackEntityOperation("assignment", "delete")
	utils.Success(c, gin.H{"message": "Assignment deleted successfully"})
}
