package routes

import (
	"github.com/gin-gonic/gin"

	"expense-api/handlers"
)

// SetupExpenseRoutes registers the expense CRUD routes on the group.
func SetupExpenseRoutes(rg *gin.RouterGroup, store handlers.ExpenseStore) {
	h := handlers.NewExpenseHandler(store)

	rg.GET("/expenses", h.ListExpenses)
	rg.POST("/expenses", h.CreateExpense)
	rg.PUT("/expenses/:id", h.UpdateExpense)
	rg.DELETE("/expenses/:id", h.DeleteExpense)
}
