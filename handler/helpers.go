package handler

import (
	"errors"

	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseIDParam reads a path parameter as an ObjectID, answering 400 on
// malformed input.
func parseIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		utils.BadRequest(c, "Invalid ID format")
		return primitive.NilObjectID, false
	}
	return id, true
}

// bindingErrorDetails turns validator errors into field-level detail entries
// for the error envelope.
func bindingErrorDetails(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make([]gin.H, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, gin.H{
			"field":   fe.Field(),
			"message": fe.Tag(),
		})
	}
	return details
}
