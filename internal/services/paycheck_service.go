package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "payday/internal/errors"
	"payday/internal/models"
)

// paycheckService handles paycheck-related business logic.
type paycheckService struct {
	db *gorm.DB
}

// NewPaycheckService creates a new PaycheckServicer.
func NewPaycheckService(db *gorm.DB) PaycheckServicer {
	return &paycheckService{db: db}
}

// CreatePaycheck records a payment from a source.
func (s *paycheckService) CreatePaycheck(source string, amount float64, payDate time.Time) (*models.Paycheck, error) {
	if source == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Paycheck source is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be positive")
	}

	paycheck := &models.Paycheck{
		Source:  source,
		Amount:  amount,
		PayDate: payDate,
	}
	if err := s.db.Create(paycheck).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return paycheck, nil
}

// GetPaychecks returns paychecks, most recent pay date first. When month is
// set, only paychecks within that calendar month are returned.
func (s *paycheckService) GetPaychecks(month *time.Time) ([]models.Paycheck, error) {
	query := s.db.Order("pay_date desc")
	if month != nil {
		monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
		query = query.Where("pay_date BETWEEN ? AND ?", monthStart, monthEnd)
	}

	var paychecks []models.Paycheck
	if err := query.Find(&paychecks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return paychecks, nil
}

// GetPaycheckByID returns a paycheck by ID.
func (s *paycheckService) GetPaycheckByID(paycheckID uint) (*models.Paycheck, error) {
	var paycheck models.Paycheck
	if err := s.db.First(&paycheck, paycheckID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaycheckNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &paycheck, nil
}

// UpdatePaycheck updates an existing paycheck's fields.
func (s *paycheckService) UpdatePaycheck(paycheckID uint, source string, amount *float64, payDate *time.Time) (*models.Paycheck, error) {
	paycheck, err := s.GetPaycheckByID(paycheckID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if source != "" {
		updates["source"] = source
	}
	if amount != nil {
		if *amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be positive")
		}
		updates["amount"] = *amount
	}
	if payDate != nil {
		updates["pay_date"] = *payDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(paycheck).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return paycheck, nil
}

// DeletePaycheck soft-deletes a paycheck.
func (s *paycheckService) DeletePaycheck(paycheckID uint) error {
	paycheck, err := s.GetPaycheckByID(paycheckID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(paycheck).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
