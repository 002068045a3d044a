package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Categories is the fixed set of accepted expense categories.
var Categories = []string{
	"Food",
	"Transportation",
	"Entertainment",
	"Utilities",
	"Healthcare",
	"Shopping",
	"Education",
	"Travel",
	"Other",
}

const MaxDescriptionLength = 200

type Expense struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Date        time.Time     `json:"date" bson:"date"`
	Description string        `json:"description" bson:"description"`
	Category    string        `json:"category" bson:"category"`
	Amount      float64       `json:"amount" bson:"amount"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// ExpenseRequest is the write payload for create and update.
// Amount is a pointer so a missing field is distinguishable from 0.
type ExpenseRequest struct {
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Amount      *float64 `json:"amount"`
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field error accumulated for a request.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// Validate checks every field and returns all failures together, never
// just the first. Description and category are trimmed in place. On
// success the parsed date (zero if omitted) is returned.
func (r *ExpenseRequest) Validate() (time.Time, *ValidationError) {
	var errs []FieldError

	r.Description = strings.TrimSpace(r.Description)
	if r.Description == "" {
		errs = append(errs, FieldError{Field: "description", Message: "Description is required"})
	} else if len(r.Description) > MaxDescriptionLength {
		errs = append(errs, FieldError{
			Field:   "description",
			Message: fmt.Sprintf("Description cannot exceed %d characters", MaxDescriptionLength),
		})
	}

	r.Category = strings.TrimSpace(r.Category)
	if r.Category == "" {
		errs = append(errs, FieldError{Field: "category", Message: "Category is required"})
	} else if !validCategory(r.Category) {
		errs = append(errs, FieldError{
			Field:   "category",
			Message: "Category must be one of: " + strings.Join(Categories, ", "),
		})
	}

	if r.Amount == nil {
		errs = append(errs, FieldError{Field: "amount", Message: "Amount is required"})
	} else if *r.Amount < 0 {
		errs = append(errs, FieldError{Field: "amount", Message: "Amount must be a positive number"})
	}

	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(time.RFC3339, r.Date)
		if err != nil {
			errs = append(errs, FieldError{Field: "date", Message: "Date must be in valid ISO 8601 format"})
		} else {
			date = parsed
		}
	}

	if len(errs) > 0 {
		return time.Time{}, &ValidationError{Errors: errs}
	}
	return date, nil
}

func validCategory(c string) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}
