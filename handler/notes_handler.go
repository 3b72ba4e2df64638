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

func GetNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := middleware.CurrentUserID(c)
	p := utils.GetPagination(c)

	notes, total, err := notesService.List(c.Request.Context(), userID, p)
	if err != nil {
		utils.InternalError(c, "Failed to fetch notes")
		return
	}

	utils.Paginated(c, notes, total, p.Page, p.Limit)
}

func GetSharedNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := middleware.CurrentUserID(c)

	notes, err := notesService.ListShared(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch shared notes")
		return
	}

	utils.Success(c, notes)
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", bindingErrorDetails(err))
		return
	}

	note, err := notesService.Create(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		utils.InternalError(c, "Failed to create note")
		return
	}

	middleware.TrackEntityOperation("note", "create")
	utils.Created(c, note)
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", bindingErrorDetails(err))
		return
	}

	note, err := notesService.Update(c.Request.Context(), middleware.CurrentUserID(c), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.InternalError(c, "Failed to update note")
		return
	}

	middleware.TrackEntityOperation("note", "update")
	utils.Success(c, note)
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := notesService.Delete(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.InternalError(c, "Failed to delete note")
		return
	}

	middleware.TrackEntityOperation("note", "delete")
	utils.Success(c, gin.H{"message": "Note deleted successfully"})
}
