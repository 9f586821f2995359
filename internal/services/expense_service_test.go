package services

import (
	"testing"
	"time"

	"payday/internal/models"
	"payday/internal/pagination"
	"payday/internal/testutil"
)

func expenseDay(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestGetExpenses(t *testing.T) {
	t.Run("filters", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		coffee := testutil.CreateTestExpense(t, db, expenseDay(5), 4.5, "Coffee", "fp1")
		if err := db.Model(coffee).Update("category", "Dining").Error; err != nil {
			t.Fatalf("failed to categorize: %v", err)
		}
		testutil.CreateTestExpense(t, db, expenseDay(10), 80, "Groceries", "fp2")
		dupe := testutil.CreateTestExpense(t, db, expenseDay(5), 4.5, "Coffee", "fp1")
		if err := db.Model(dupe).Updates(map[string]interface{}{"is_duplicate": true, "duplicate_of_id": coffee.ID}).Error; err != nil {
			t.Fatalf("failed to flag duplicate: %v", err)
		}

		page := pagination.PageRequest{}

		all, err := svc.GetExpenses(page, ExpenseFilter{})
		testutil.AssertNoError(t, err)
		if all.TotalItems != 3 {
			t.Errorf("total = %d, want 3", all.TotalItems)
		}
		// Most recent spend first.
		if all.Data[0].Description != "Groceries" {
			t.Errorf("first expense = %s, want Groceries", all.Data[0].Description)
		}

		dining := "Dining"
		byCategory, err := svc.GetExpenses(page, ExpenseFilter{Category: &dining})
		testutil.AssertNoError(t, err)
		if byCategory.TotalItems != 1 {
			t.Errorf("dining total = %d, want 1", byCategory.TotalItems)
		}

		from := expenseDay(6)
		byDate, err := svc.GetExpenses(page, ExpenseFilter{FromDate: &from})
		testutil.AssertNoError(t, err)
		if byDate.TotalItems != 1 {
			t.Errorf("from-date total = %d, want 1", byDate.TotalItems)
		}

		dupes, err := svc.GetExpenses(page, ExpenseFilter{DuplicatesOnly: true})
		testutil.AssertNoError(t, err)
		if dupes.TotalItems != 1 {
			t.Errorf("duplicates total = %d, want 1", dupes.TotalItems)
		}
		if dupes.Data[0].DuplicateOfID == nil || *dupes.Data[0].DuplicateOfID != coffee.ID {
			t.Error("expected duplicate to reference the original expense")
		}
	})

	t.Run("pagination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		for i := 1; i <= 7; i++ {
			testutil.CreateTestExpense(t, db, expenseDay(i), 1, "x", "fp")
		}

		page := pagination.PageRequest{Page: 2, PageSize: 3}
		result, err := svc.GetExpenses(page, ExpenseFilter{})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 7 {
			t.Errorf("total = %d, want 7", result.TotalItems)
		}
		if result.TotalPages != 3 {
			t.Errorf("pages = %d, want 3", result.TotalPages)
		}
		if len(result.Data) != 3 {
			t.Errorf("page size = %d, want 3", len(result.Data))
		}
	})
}

func TestUpdateExpenseCategory(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		expense := testutil.CreateTestExpense(t, db, expenseDay(5), 4.5, "Coffee", "fp1")

		updated, err := svc.UpdateCategory(expense.ID, "Dining")
		testutil.AssertNoError(t, err)

		got, err := svc.GetExpenseByID(updated.ID)
		testutil.AssertNoError(t, err)
		if got.Category != "Dining" {
			t.Errorf("category = %s, want Dining", got.Category)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		_, err := svc.UpdateCategory(9999, "Dining")
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})

	t.Run("bulk", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		a := testutil.CreateTestExpense(t, db, expenseDay(5), 4.5, "Coffee", "fp1")
		b := testutil.CreateTestExpense(t, db, expenseDay(6), 3.0, "Tea", "fp2")
		testutil.CreateTestExpense(t, db, expenseDay(7), 9.0, "Lunch", "fp3")

		affected, err := svc.BulkUpdateCategory([]uint{a.ID, b.ID, 9999}, "Dining")
		testutil.AssertNoError(t, err)
		if affected != 2 {
			t.Errorf("affected = %d, want 2", affected)
		}
	})

	t.Run("bulk_requires_ids", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		_, err := svc.BulkUpdateCategory(nil, "Dining")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestDeleteExpenses(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		expense := testutil.CreateTestExpense(t, db, expenseDay(5), 4.5, "Coffee", "fp1")

		testutil.AssertNoError(t, svc.DeleteExpense(expense.ID))

		_, err := svc.GetExpenseByID(expense.ID)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})

	t.Run("bulk", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		a := testutil.CreateTestExpense(t, db, expenseDay(5), 4.5, "Coffee", "fp1")
		b := testutil.CreateTestExpense(t, db, expenseDay(6), 3.0, "Tea", "fp2")
		keep := testutil.CreateTestExpense(t, db, expenseDay(7), 9.0, "Lunch", "fp3")

		removed, err := svc.BulkDeleteExpenses([]uint{a.ID, b.ID})
		testutil.AssertNoError(t, err)
		if removed != 2 {
			t.Errorf("removed = %d, want 2", removed)
		}

		var count int64
		if err := db.Model(&models.Expense{}).Count(&count).Error; err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 1 {
			t.Errorf("remaining = %d, want 1", count)
		}
		if _, err := svc.GetExpenseByID(keep.ID); err != nil {
			t.Errorf("kept expense should still exist: %v", err)
		}
	})
}
