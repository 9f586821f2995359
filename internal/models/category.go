package models

// BillCategories is the closed list of recommended bill categories.
var BillCategories = []string{
	"Housing",
	"Utilities",
	"Transportation",
	"Insurance",
	"Subscriptions",
	"Debt",
	"Other",
}

// ExpenseCategories is the closed list of recommended expense categories.
// "Uncategorized" is the default applied by the import pipeline when the
// category column is absent or blank.
var ExpenseCategories = []string{
	"Groceries",
	"Dining",
	"Transportation",
	"Entertainment",
	"Shopping",
	"Health",
	"Travel",
	"Uncategorized",
	"Other",
}

// IsBillCategory reports whether name is one of the recommended bill categories.
func IsBillCategory(name string) bool {
	for _, c := range BillCategories {
		if c == name {
			return true
		}
	}
	return false
}

// IsExpenseCategory reports whether name is one of the recommended expense categories.
func IsExpenseCategory(name string) bool {
	for _, c := range ExpenseCategories {
		if c == name {
			return true
		}
	}
	return false
}
