// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"payday/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("due_day", validateDueDay)
		_ = v.RegisterValidation("bill_category", validateBillCategory)
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
	}
}

func validateDueDay(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= 1 && day <= 31
}

func validateBillCategory(fl validator.FieldLevel) bool {
	return models.IsBillCategory(fl.Field().String())
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.IsExpenseCategory(fl.Field().String())
}
