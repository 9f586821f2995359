package services

import (
	"time"

	"payday/internal/csvimport"
	"payday/internal/models"
	"payday/internal/pagination"
)

// BillServicer defines the contract for bill-related business logic.
type BillServicer interface {
	CreateBill(name, category string, amount float64, dueDay int) (*models.Bill, error)
	GetBills() ([]models.Bill, error)
	GetBillByID(billID uint) (*models.Bill, error)
	UpdateBill(billID uint, name, category string, amount *float64, dueDay *int, isActive *bool) (*models.Bill, error)
	DeleteBill(billID uint) error
	MarkPaid(billID uint, today time.Time) (*models.Bill, error)
	MarkUnpaid(billID uint) (*models.Bill, error)
}

// PaycheckServicer defines the contract for paycheck-related business logic.
// GetPaychecks optionally narrows to the calendar month containing month.
type PaycheckServicer interface {
	CreatePaycheck(source string, amount float64, payDate time.Time) (*models.Paycheck, error)
	GetPaychecks(month *time.Time) ([]models.Paycheck, error)
	GetPaycheckByID(paycheckID uint) (*models.Paycheck, error)
	UpdatePaycheck(paycheckID uint, source string, amount *float64, payDate *time.Time) (*models.Paycheck, error)
	DeletePaycheck(paycheckID uint) error
}

// PayPeriod is the inclusive 14-day window containing a given day.
// Fallback is true when no schedule was saved and the trailing window was used.
type PayPeriod struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Fallback bool      `json:"fallback"`
}

// PayScheduleServicer defines the contract for pay-schedule configuration.
type PayScheduleServicer interface {
	Save(anchorPayday time.Time) (*models.PaySchedule, error)
	Current() (*models.PaySchedule, error)
	CurrentPeriod(today time.Time) (PayPeriod, error)
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	Category       *string
	FromDate       *time.Time
	ToDate         *time.Time
	DuplicatesOnly bool
}

// ExpenseServicer defines the contract for expense-related business logic.
// Expenses are only created through the import pipeline.
type ExpenseServicer interface {
	GetExpenses(page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(expenseID uint) (*models.Expense, error)
	UpdateCategory(expenseID uint, category string) (*models.Expense, error)
	BulkUpdateCategory(expenseIDs []uint, category string) (int64, error)
	DeleteExpense(expenseID uint) error
	BulkDeleteExpenses(expenseIDs []uint) (int64, error)
}

// ImportPreview is what the user reviews between staging and committing.
// Rows holds at most csvimport.PreviewRows entries; TotalRows is the full
// accepted count that a commit would write.
type ImportPreview struct {
	Rows       []csvimport.Row `json:"rows"`
	TotalRows  int             `json:"total_rows"`
	ErrorCount int             `json:"error_count"`
}

// ImportResult summarizes a committed import.
type ImportResult struct {
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
}

// ImportServicer defines the contract for the two-phase CSV import pipeline.
type ImportServicer interface {
	Stage(sessionID string, raw []byte) (*ImportPreview, error)
	Preview(sessionID string) (*ImportPreview, error)
	Commit(sessionID string) (*ImportResult, error)
	Discard(sessionID string)
}

// BillDue is a bill paired with its projected next due date.
type BillDue struct {
	BillID   uint      `json:"bill_id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
	DueDate  time.Time `json:"due_date"`
}

// DashboardSummary aggregates the budgeting signals shown on the dashboard.
type DashboardSummary struct {
	TotalBills  float64 `json:"total_bills"`
	MonthIncome float64 `json:"month_income"`
	Remaining   float64 `json:"remaining"`

	NextPaycheck *models.Paycheck `json:"next_paycheck,omitempty"`

	DueBeforePayday      []BillDue `json:"due_before_payday"`
	DueBeforePaydayTotal float64   `json:"due_before_payday_total"`
	Upcoming             []BillDue `json:"upcoming"`
}

// DashboardServicer defines the contract for dashboard aggregation.
type DashboardServicer interface {
	Summary(today time.Time) (*DashboardSummary, error)
}
