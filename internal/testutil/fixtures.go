package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"payday/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestBill creates an active bill due on the given day of the month.
func CreateTestBill(t *testing.T, db *gorm.DB, dueDay int, amount float64) *models.Bill {
	t.Helper()

	bill := &models.Bill{
		Name:     fmt.Sprintf("Test Bill %d", nextID()),
		Category: "Utilities",
		Amount:   amount,
		DueDay:   dueDay,
		IsActive: true,
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create test bill: %v", err)
	}
	return bill
}

// CreateTestPaycheck creates a paycheck received on the given date.
func CreateTestPaycheck(t *testing.T, db *gorm.DB, payDate time.Time, amount float64) *models.Paycheck {
	t.Helper()

	paycheck := &models.Paycheck{
		Source:  fmt.Sprintf("Test Source %d", nextID()),
		Amount:  amount,
		PayDate: payDate,
	}
	if err := db.Create(paycheck).Error; err != nil {
		t.Fatalf("failed to create test paycheck: %v", err)
	}
	return paycheck
}

// CreateTestPaySchedule saves a pay-cycle anchor.
func CreateTestPaySchedule(t *testing.T, db *gorm.DB, anchor time.Time) *models.PaySchedule {
	t.Helper()

	row := &models.PaySchedule{AnchorPayday: anchor}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create test pay schedule: %v", err)
	}
	return row
}

// CreateTestExpense creates a committed expense with a fingerprint already set.
func CreateTestExpense(t *testing.T, db *gorm.DB, spentDate time.Time, amount float64, description, fp string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		SpentDate:   spentDate,
		Description: description,
		Amount:      amount,
		Category:    "Uncategorized",
		Fingerprint: fp,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
