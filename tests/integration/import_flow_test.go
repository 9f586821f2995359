package integration

import (
	"fmt"
	"net/http"
	"testing"
)

const importCSV = `date,description,amount,category
2024-01-15,Coffee Shop,4.50,Dining
2024-01-16,"Grocery Store","$82.35",Groceries
2024-01-17,Gas Station,not-a-number,
2024-01-18,Book Store,15.00,
`

func TestImportFlow_StagePreviewCommit(t *testing.T) {
	app := setupApp(t)

	// Step 1: Stage the upload; a session cookie is minted
	rec := app.upload("/api/v1/imports/expenses", importCSV, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cookie := sessionCookie(t, rec)
	preview := parseJSON(t, rec)["preview"].(map[string]interface{})
	if preview["total_rows"].(float64) != 3 {
		t.Errorf("expected 3 accepted rows, got %v", preview["total_rows"])
	}
	if preview["error_count"].(float64) != 1 {
		t.Errorf("expected 1 rejected row, got %v", preview["error_count"])
	}

	// Step 2: Nothing is committed yet
	var count int64
	app.DB.Table("expenses").Count(&count)
	if count != 0 {
		t.Fatalf("expected no expenses before commit, got %d", count)
	}

	// Step 3: Preview with the same cookie sees the staged rows
	rec = app.request("GET", "/api/v1/imports/expenses/preview", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	preview = parseJSON(t, rec)["preview"].(map[string]interface{})
	rows := preview["rows"].([]interface{})
	if len(rows) != 3 {
		t.Fatalf("expected 3 preview rows, got %d", len(rows))
	}
	first := rows[0].(map[string]interface{})
	if first["amount"].(float64) != 4.50 {
		t.Errorf("expected first amount 4.50, got %v", first["amount"])
	}
	last := rows[2].(map[string]interface{})
	if last["category"] != "Uncategorized" {
		t.Errorf("expected blank category to default to Uncategorized, got %v", last["category"])
	}

	// Step 4: Commit
	rec = app.request("POST", "/api/v1/imports/expenses/commit", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)["result"].(map[string]interface{})
	if result["imported"].(float64) != 3 {
		t.Errorf("expected 3 imported, got %v", result["imported"])
	}
	if result["duplicates"].(float64) != 0 {
		t.Errorf("expected 0 duplicates, got %v", result["duplicates"])
	}

	// Step 5: Committing again without staging fails
	rec = app.request("POST", "/api/v1/imports/expenses/commit", "", cookie)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty commit, got %d", rec.Code)
	}

	// Step 6: Expenses are queryable
	rec = app.request("GET", "/api/v1/expenses", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	page := parseJSON(t, rec)
	if page["total_items"].(float64) != 3 {
		t.Errorf("expected 3 expenses, got %v", page["total_items"])
	}
}

func TestImportFlow_DuplicateDetectionAcrossImports(t *testing.T) {
	app := setupApp(t)

	// First import
	rec := app.upload("/api/v1/imports/expenses", importCSV, "")
	cookie := sessionCookie(t, rec)
	rec = app.request("POST", "/api/v1/imports/expenses/commit", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("first commit failed: %d %s", rec.Code, rec.Body.String())
	}

	// Second import of the same file: every row is flagged, none rejected
	rec = app.upload("/api/v1/imports/expenses", importCSV, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("second stage failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/api/v1/imports/expenses/commit", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("second commit failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)["result"].(map[string]interface{})
	if result["imported"].(float64) != 3 {
		t.Errorf("expected 3 imported on re-import, got %v", result["imported"])
	}
	if result["duplicates"].(float64) != 3 {
		t.Errorf("expected 3 duplicates flagged, got %v", result["duplicates"])
	}

	// Duplicates filter returns only the flagged rows
	rec = app.request("GET", "/api/v1/expenses?duplicates_only=true", "", "")
	page := parseJSON(t, rec)
	if page["total_items"].(float64) != 3 {
		t.Errorf("expected 3 duplicate expenses, got %v", page["total_items"])
	}

	// Each duplicate points at its original
	data := page["data"].([]interface{})
	for _, e := range data {
		exp := e.(map[string]interface{})
		if exp["duplicate_of_id"] == nil {
			t.Error("expected duplicate_of_id on flagged expense")
		}
	}
}

func TestImportFlow_RecategorizeAndDelete(t *testing.T) {
	app := setupApp(t)

	rec := app.upload("/api/v1/imports/expenses", importCSV, "")
	cookie := sessionCookie(t, rec)
	rec = app.request("POST", "/api/v1/imports/expenses/commit", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("commit failed: %d %s", rec.Code, rec.Body.String())
	}

	// Find the uncategorized expense
	rec = app.request("GET", "/api/v1/expenses?category=Uncategorized", "", "")
	data := parseJSON(t, rec)["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected 1 uncategorized expense, got %d", len(data))
	}
	id := data[0].(map[string]interface{})["id"].(float64)

	// Recategorize it
	rec = app.request("PUT", fmt.Sprintf("/api/v1/expenses/%.0f/category", id),
		`{"category":"Shopping"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	expense := parseJSON(t, rec)["expense"].(map[string]interface{})
	if expense["category"] != "Shopping" {
		t.Errorf("expected category Shopping, got %v", expense["category"])
	}

	// Unknown categories are rejected
	rec = app.request("PUT", fmt.Sprintf("/api/v1/expenses/%.0f/category", id),
		`{"category":"Yachts"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown category, got %d", rec.Code)
	}

	// Bulk delete everything
	rec = app.request("POST", "/api/v1/expenses/bulk-delete",
		`{"expense_ids":[1,2,3]}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, rec)["deleted"].(float64) != 3 {
		t.Error("expected 3 deletions")
	}

	rec = app.request("GET", "/api/v1/expenses", "", "")
	if parseJSON(t, rec)["total_items"].(float64) != 0 {
		t.Errorf("expected no expenses after bulk delete")
	}
}

func TestImportFlow_BadUploads(t *testing.T) {
	app := setupApp(t)

	t.Run("empty file", func(t *testing.T) {
		rec := app.upload("/api/v1/imports/expenses", "", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("missing required columns", func(t *testing.T) {
		rec := app.upload("/api/v1/imports/expenses", "foo,bar\n1,2\n", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("no parseable rows", func(t *testing.T) {
		rec := app.upload("/api/v1/imports/expenses",
			"date,description,amount\nbad-date,Coffee,4.50\n", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("discard is idempotent", func(t *testing.T) {
		rec := app.request("DELETE", "/api/v1/imports/expenses", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
