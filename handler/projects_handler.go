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

func GetProjectsHandler(c *gin.Context, projectsService *usecase.ProjectsService) {
	status := c.Query("status")
	switch status {
	case "", model.ProjectActive, model.ProjectCompleted, model.ProjectArchived:
	default:
		utils.BadRequest(c, "Status must be active, completed, or archived")
		return
	}

	userID := middleware.CurrentUserID(c)
	p := utils.GetPagination(c)

	projects, total, err := projectsService.List(c.Request.Context(), userID, status, p)
	if err != nil {
		utils.InternalError(c, "Failed to fetch projects")
		return
	}

	utils.Paginated(c, projects, total, p.Page, p.Limit)
}

func CreateProjectHandler(c *gin.Context, projectsService *usecase.ProjectsService) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", bindingErrorDetails(err))
		return
	}

	project, err := projectsService.Create(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		utils.InternalError(c, "Failed to create project")
		return
	}

	middleware.TrackEntityOperation("project", "create")
	utils.Created(c, project)
}

func UpdateProjectHandler(c *gin.Context, projectsService *usecase.ProjectsService) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", bindingErrorDetails(err))
		return
	}

	project, err := projectsService.Update(c.Request.Context(), middleware.CurrentUserID(c), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Project not found")
			return
		}
		utils.InternalError(c, "Failed to update project")
		return
	}

	middleware.TrackEntityOperation("project", "update")
	utils.Success(c, project)
}

func DeleteProjectHandler(c *gin.Context, projectsService *usecase.ProjectsService) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := projectsService.Delete(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Project not found")
			return
		}
		utils.InternalError(c, "Failed to delete project")
		return
	}

	middleware.TrackEntityOperation("project", "delete")
	utils.Success(c, gin.H{"message": "Project deleted successfully"})
}

func AddProjectMemberHandler(c *gin.Context, projectsService *usecase.ProjectsService) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddProjectMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", bindingErrorDetails(err))
		return
	}

	project, err := projectsService.AddMember(c.Request.Context(), middleware.CurrentUserID(c), id, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateMember):
			utils.Conflict(c, "User is already a member of this project")
		case errors.Is(err, repository.ErrNotFound):
			utils.NotFound(c, "Project not found")
		default:
			utils.InternalError(c, "Failed to add project member")
		}
		return
	}

	middleware.TrackEntityOperation("project", "add_member")
	utils.Success(c, project)
}

func RemoveProjectMemberHandler(c *gin.Context, projectsService *usecase.ProjectsService) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	memberID := c.Param("userId")
	project, err := projectsService.RemoveMember(c.Request.Context(), middleware.CurrentUserID(c), id, memberID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			utils.BadRequest(c, "Invalid user ID format")
		case errors.Is(err, repository.ErrNotFound):
			utils.NotFound(c, "Project not found")
		default:
			utils.InternalError(c, "Failed to remove project member")
		}
		return
	}

	middleware.TrackEntityOperation("project", "remove_member")
	utils.Success(c, project)
}
