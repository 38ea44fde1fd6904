package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorDetail represents the structure of a single validation error.
type ValidationErrorDetail struct {
	Field    string      `json:"field"`
	Message  string      `json:"message"`
	Expected string      `json:"expected"`
	Received interface{} `json:"received"`
}

// BindAndValidate binds the request body to the given object and validates it.
// If validation fails, it sends a formatted error response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var details []ValidationErrorDetail

	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			detail := ValidationErrorDetail{
				Field:    e.Field(),
				Message:  fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", e.Field(), e.Tag()),
				Expected: e.Tag(),
				Received: e.Value(),
			}
			switch e.Tag() {
			case "required":
				detail.Message = fmt.Sprintf("Field '%s' is required", e.Field())
				detail.Expected = "not null"
			case "email":
				detail.Message = fmt.Sprintf("Field '%s' must be a valid email address", e.Field())
				detail.Expected = "email format"
			case "gt", "gte", "min":
				detail.Message = fmt.Sprintf("Field '%s' must be at least %s", e.Field(), e.Param())
				detail.Expected = fmt.Sprintf("%s %s", e.Tag(), e.Param())
			}
			details = append(details, detail)
		}
	} else if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
		details = append(details, ValidationErrorDetail{
			Field:    jsonErr.Field,
			Message:  fmt.Sprintf("Field '%s' has invalid type", jsonErr.Field),
			Expected: jsonErr.Type.String(),
			Received: jsonErr.Value,
		})
	} else {
		details = append(details, ValidationErrorDetail{
			Field:    "body",
			Message:  "Malformed JSON or invalid request body",
			Expected: "valid JSON",
			Received: "invalid",
		})
	}

	c.JSON(http.StatusBadRequest, Response{
		Status:  http.StatusBadRequest,
		Message: "Invalid request parameters",
		Data:    gin.H{"errors": details},
	})
	return false
}
