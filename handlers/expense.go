package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"expense-api/models"
	"expense-api/services"
	"expense-api/utils"
)

// ExpenseStore is the store surface the handlers need. The MongoDB-backed
// ExpenseService implements it; tests substitute a mock.
type ExpenseStore interface {
	List(ctx context.Context, q services.ListQuery) ([]models.Expense, error)
	Create(ctx context.Context, date time.Time, description, category string, amount float64) (*models.Expense, error)
	Update(ctx context.Context, id string, date time.Time, description, category string, amount float64) (*models.Expense, error)
	Delete(ctx context.Context, id string) error
}

type ExpenseHandler struct {
	Store ExpenseStore
}

func NewExpenseHandler(store ExpenseStore) *ExpenseHandler {
	return &ExpenseHandler{Store: store}
}

// parseQueryDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
// An unparsable value drops the bound rather than failing the request.
func parseQueryDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t
	}
	return nil
}

// ListExpenses returns all expenses matching the optional category and
// date-range filters, sorted as requested.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	query := services.ListQuery{
		Category:  c.Query("category"),
		StartDate: parseQueryDate(c.Query("startDate")),
		EndDate:   parseQueryDate(c.Query("endDate")),
		SortBy:    c.Query("sortBy"),
		Order:     c.Query("order"),
	}

	expenses, err := h.Store.List(c.Request.Context(), query)
	if err != nil {
		utils.SafeError("Error fetching expenses: %v", err)
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(expenses),
		"data":    expenses,
	})
}

// CreateExpense validates the payload and inserts a new expense. The date
// defaults to the current time when omitted.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req models.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SafeWarn("Rejected expense payload: %v", err)
		respondBindError(c, err)
		return
	}

	date, verr := req.Validate()
	if verr != nil {
		respondValidation(c, verr.Errors)
		return
	}

	expense, err := h.Store.Create(c.Request.Context(), date, req.Description, req.Category, *req.Amount)
	if err != nil {
		utils.SafeError("Error creating expense: %v", err)
		respondStoreError(c, err)
		return
	}

	utils.LogExpenseAction("created", expense.ID.Hex())
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Expense created successfully",
		"data":    expense,
	})
}

// UpdateExpense replaces the mutable fields of an existing expense. The
// payload is validated like a create; an omitted date keeps the stored one.
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id := c.Param("id")

	var req models.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SafeWarn("Rejected expense payload: %v", err)
		respondBindError(c, err)
		return
	}

	date, verr := req.Validate()
	if verr != nil {
		respondValidation(c, verr.Errors)
		return
	}

	expense, err := h.Store.Update(c.Request.Context(), id, date, req.Description, req.Category, *req.Amount)
	if err != nil {
		utils.SafeError("Error updating expense %s: %v", utils.MaskID(id), err)
		respondStoreError(c, err)
		return
	}

	utils.LogExpenseAction("updated", id)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expense updated successfully",
		"data":    expense,
	})
}

// DeleteExpense removes an expense by ID.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id := c.Param("id")

	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		utils.SafeError("Error deleting expense %s: %v", utils.MaskID(id), err)
		respondStoreError(c, err)
		return
	}

	utils.LogExpenseAction("deleted", id)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expense deleted successfully",
	})
}
