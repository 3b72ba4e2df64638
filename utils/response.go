package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody carries the failure message and optional field-level details.
type ErrorBody struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Response is the uniform envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// PageData is the data shape of list endpoints.
type PageData struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Pages int         `json:"pages"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

// Paginated wraps a page of items; pages is ceil(total/limit).
func Paginated(c *gin.Context, items interface{}, total int64, page, limit int) {
	pages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: PageData{
			Items: items,
			Total: total,
			Page:  page,
			Pages: pages,
		},
	})
}

func errorJSON(c *gin.Context, status int, message string, details ...interface{}) {
	body := &ErrorBody{Message: message}
	if len(details) > 0 {
		body.Details = details[0]
	}
	c.JSON(status, Response{Success: false, Error: body})
}

func BadRequest(c *gin.Context, message string, details ...interface{}) {
	errorJSON(c, http.StatusBadRequest, message, details...)
}

func Unauthorized(c *gin.Context, message string) {
	errorJSON(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	errorJSON(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	errorJSON(c, http.StatusConflict, message)
}

func TooManyRequests(c *gin.Context, message string) {
	errorJSON(c, http.StatusTooManyRequests, message)
}

func InternalError(c *gin.Context, message string, details ...interface{}) {
	errorJSON(c, http.StatusInternalServerError, message, details...)
}
