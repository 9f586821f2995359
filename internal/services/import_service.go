package services

import (
	"errors"

	"gorm.io/gorm"

	"payday/internal/csvimport"
	apperrors "payday/internal/errors"
	"payday/internal/fingerprint"
	"payday/internal/logger"
	"payday/internal/models"
	"payday/internal/session"
)

// importService implements the two-phase CSV expense import: stage into
// session scratch space, then commit into the permanent store.
type importService struct {
	db    *gorm.DB
	store session.Store
}

// NewImportService creates a new ImportServicer.
func NewImportService(db *gorm.DB, store session.Store) ImportServicer {
	return &importService{db: db, store: store}
}

// Stage decodes and parses an upload, replaces whatever the session had
// staged before, and returns the review preview. Nothing touches the
// permanent store here.
func (s *importService) Stage(sessionID string, raw []byte) (*ImportPreview, error) {
	text, encName := csvimport.Decode(raw)

	staged, err := csvimport.Parse(text)
	if err != nil {
		switch {
		case errors.Is(err, csvimport.ErrEmptyInput):
			return nil, apperrors.ErrEmptyImport
		case errors.Is(err, csvimport.ErrMissingColumns):
			return nil, apperrors.ErrMissingColumns
		case errors.Is(err, csvimport.ErrNoValidRows):
			return nil, apperrors.ErrNoValidRows
		default:
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	s.store.Put(sessionID, staged)

	logger.Get().Infow("staged expense import",
		"session_id", sessionID,
		"encoding", encName,
		"rows", len(staged.Rows),
		"errors", staged.ErrorCount,
	)
	return previewOf(staged), nil
}

// Preview returns the staged rows for review without committing them.
func (s *importService) Preview(sessionID string) (*ImportPreview, error) {
	staged, ok := s.store.Get(sessionID)
	if !ok {
		return nil, apperrors.ErrNothingStaged
	}
	return previewOf(staged), nil
}

// Commit writes every staged row to the permanent store. A row whose
// fingerprint already exists is imported anyway and flagged as a duplicate
// of the earliest matching expense, so re-imports surface for human triage
// instead of being silently dropped. The scratch space is cleared on success.
func (s *importService) Commit(sessionID string) (*ImportResult, error) {
	staged, ok := s.store.Get(sessionID)
	if !ok {
		return nil, apperrors.ErrNothingStaged
	}

	result := &ImportResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, row := range staged.Rows {
			fp := fingerprint.Expense(row.SpentDate, row.Amount, row.Description)

			var existing models.Expense
			lookupErr := tx.Where("fingerprint = ?", fp).Order("id asc").First(&existing).Error

			expense := models.Expense{
				SpentDate:   row.SpentDate,
				Description: row.Description,
				Amount:      row.Amount,
				Category:    row.Category,
				Fingerprint: fp,
			}
			switch {
			case lookupErr == nil:
				expense.IsDuplicate = true
				expense.DuplicateOfID = &existing.ID
				result.Duplicates++
			case errors.Is(lookupErr, gorm.ErrRecordNotFound):
				// First occurrence of this fingerprint.
			default:
				return lookupErr
			}

			if err := tx.Create(&expense).Error; err != nil {
				return err
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.store.Clear(sessionID)

	logger.Get().Infow("committed expense import",
		"session_id", sessionID,
		"imported", result.Imported,
		"duplicates", result.Duplicates,
	)
	return result, nil
}

// Discard drops any staged rows for the session. Discarding an empty
// session is a no-op.
func (s *importService) Discard(sessionID string) {
	s.store.Clear(sessionID)
}

func previewOf(staged *csvimport.Staged) *ImportPreview {
	return &ImportPreview{
		Rows:       staged.Preview(csvimport.PreviewRows),
		TotalRows:  len(staged.Rows),
		ErrorCount: staged.ErrorCount,
	}
}
