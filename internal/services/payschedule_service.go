package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "payday/internal/errors"
	"payday/internal/models"
	"payday/internal/schedule"
)

// payScheduleService manages the bi-weekly pay-cycle anchor.
type payScheduleService struct {
	db *gorm.DB
}

// NewPayScheduleService creates a new PayScheduleServicer.
func NewPayScheduleService(db *gorm.DB) PayScheduleServicer {
	return &payScheduleService{db: db}
}

// Save inserts a new schedule row. Saves are append-only; earlier rows stay
// behind as an audit trail and the newest row is the active schedule.
func (s *payScheduleService) Save(anchorPayday time.Time) (*models.PaySchedule, error) {
	if anchorPayday.Weekday() != schedule.AnchorWeekday {
		return nil, apperrors.ErrAnchorNotFriday
	}

	row := &models.PaySchedule{AnchorPayday: anchorPayday}
	if err := s.db.Create(row).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return row, nil
}

// Current returns the most recently saved schedule.
func (s *payScheduleService) Current() (*models.PaySchedule, error) {
	var row models.PaySchedule
	if err := s.db.Order("id desc").First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPayScheduleNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &row, nil
}

// CurrentPeriod returns the pay-period window containing today. Without a
// saved schedule it degrades to the trailing 14-day window rather than
// failing.
func (s *payScheduleService) CurrentPeriod(today time.Time) (PayPeriod, error) {
	current, err := s.Current()
	if err != nil {
		if errors.Is(err, apperrors.ErrPayScheduleNotFound) {
			start, end := schedule.FallbackPayPeriod(today)
			return PayPeriod{Start: start, End: end, Fallback: true}, nil
		}
		return PayPeriod{}, err
	}

	start, end := schedule.PayPeriod(current.AnchorPayday, today)
	return PayPeriod{Start: start, End: end}, nil
}
