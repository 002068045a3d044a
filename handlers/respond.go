package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"expense-api/models"
	"expense-api/services"
)

// respondError writes the uniform failure envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// respondValidation writes a 400 with every accumulated field error.
func respondValidation(c *gin.Context, errs []models.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation Error",
		"errors":  errs,
	})
}

// respondBindError maps a JSON decode failure to the validation envelope.
// A type mismatch on a known field (e.g. a string amount) is reported
// against that field; anything else is reported against the body.
func respondBindError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		respondValidation(c, []models.FieldError{
			{Field: typeErr.Field, Message: typeErr.Field + " has an invalid type"},
		})
		return
	}
	respondValidation(c, []models.FieldError{
		{Field: "body", Message: "Request body must be valid JSON"},
	})
}

// respondStoreError classifies a store failure into the error taxonomy.
// Unclassified errors become a 500 carrying the internal message; the
// caller is expected to have logged the failure already.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		respondError(c, http.StatusBadRequest, "Invalid expense ID format")
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, "Expense not found")
	case errors.Is(err, services.ErrDuplicate):
		respondError(c, http.StatusBadRequest, "Duplicate field value entered")
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server Error",
			"error":   err.Error(),
		})
	}
}
