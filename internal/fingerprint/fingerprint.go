// Package fingerprint derives stable duplicate-detection keys for expenses.
//
// Two expense rows with the same spent date, the same amount (to the cent),
// and a description that differs only in casing, whitespace, or punctuation
// produce the same fingerprint. This lets re-imported CSV rows be flagged
// without an external transaction ID.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	disallowed     = regexp.MustCompile(`[^a-z0-9 \-]`)
)

// Expense returns the hex-encoded SHA-256 fingerprint for an expense.
// Callers round amount to cents before calling; sub-cent differences are
// deliberately collapsed by the 2-decimal formatting here.
func Expense(spentDate time.Time, amount float64, description string) string {
	key := fmt.Sprintf("%s|%.2f|%s",
		spentDate.Format("2006-01-02"), amount, NormalizeDescription(description))
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// NormalizeDescription canonicalizes a free-text description: lower-case,
// whitespace runs collapsed to single spaces, characters outside
// [a-z0-9 -] stripped, and the result trimmed.
func NormalizeDescription(description string) string {
	s := strings.ToLower(description)
	s = whitespaceRuns.ReplaceAllString(s, " ")
	s = disallowed.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
