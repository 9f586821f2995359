package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "payday/internal/errors"
	"payday/internal/models"
	"payday/internal/pagination"
)

// expenseService handles expense-related business logic. Creation lives in
// the import service; this one covers listing and triage.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// GetExpenses returns a paginated list of expenses with optional filters,
// most recent spend first.
func (s *expenseService) GetExpenses(page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{})
	if filter.Category != nil {
		base = base.Where("category = ?", *filter.Category)
	}
	if filter.FromDate != nil {
		base = base.Where("spent_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("spent_date <= ?", *filter.ToDate)
	}
	if filter.DuplicatesOnly {
		base = base.Where("is_duplicate = ?", true)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Order("spent_date desc, id desc").Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetExpenseByID returns an expense by ID.
func (s *expenseService) GetExpenseByID(expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.First(&expense, expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateCategory recategorizes a single expense.
func (s *expenseService) UpdateCategory(expenseID uint, category string) (*models.Expense, error) {
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Category is required")
	}

	expense, err := s.GetExpenseByID(expenseID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(expense).Update("category", category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// BulkUpdateCategory recategorizes many expenses at once and returns the
// number of rows changed. IDs that match nothing are skipped silently.
func (s *expenseService) BulkUpdateCategory(expenseIDs []uint, category string) (int64, error) {
	if category == "" {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Category is required")
	}
	if len(expenseIDs) == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "At least one expense ID is required")
	}

	result := s.db.Model(&models.Expense{}).Where("id IN ?", expenseIDs).Update("category", category)
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteExpense soft-deletes an expense.
func (s *expenseService) DeleteExpense(expenseID uint) error {
	expense, err := s.GetExpenseByID(expenseID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// BulkDeleteExpenses soft-deletes many expenses and returns the number removed.
func (s *expenseService) BulkDeleteExpenses(expenseIDs []uint) (int64, error) {
	if len(expenseIDs) == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "At least one expense ID is required")
	}

	result := s.db.Where("id IN ?", expenseIDs).Delete(&models.Expense{})
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return result.RowsAffected, nil
}
