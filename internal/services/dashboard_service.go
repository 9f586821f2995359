package services

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	apperrors "payday/internal/errors"
	"payday/internal/models"
	"payday/internal/schedule"
)

// upcomingHorizonDays bounds the "upcoming" bucket: bills due more than 30
// days out are not shown at all.
const upcomingHorizonDays = 30

// dashboardService composes stored bills and paychecks with the due-date
// projection into the dashboard's budgeting signals.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// Summary computes the dashboard for the given day.
func (s *dashboardService) Summary(today time.Time) (*DashboardSummary, error) {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	summary := &DashboardSummary{
		DueBeforePayday: []BillDue{},
		Upcoming:        []BillDue{},
	}

	if err := s.db.Model(&models.Bill{}).
		Where("is_active = ?", true).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&summary.TotalBills).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
	if err := s.db.Model(&models.Paycheck{}).
		Where("pay_date BETWEEN ? AND ?", monthStart, monthEnd).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&summary.MonthIncome).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	summary.Remaining = summary.MonthIncome - summary.TotalBills

	var next models.Paycheck
	err := s.db.Where("pay_date >= ?", today).Order("pay_date asc").First(&next).Error
	switch {
	case err == nil:
		summary.NextPaycheck = &next
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No future paycheck known; bucketing falls back to the 30-day horizon.
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var bills []models.Bill
	if err := s.db.Where("is_active = ?", true).Find(&bills).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	horizon := today.AddDate(0, 0, upcomingHorizonDays)
	var payday time.Time
	if summary.NextPaycheck != nil {
		p := summary.NextPaycheck.PayDate
		payday = time.Date(p.Year(), p.Month(), p.Day(), 0, 0, 0, 0, today.Location())
	}

	for _, bill := range bills {
		dueDate := schedule.NextDueDate(bill.DueDay, today)

		// Settled for this cycle: already paid through the projected due date.
		if bill.PaidThrough != nil && !bill.PaidThrough.Before(dueDate) {
			continue
		}

		due := BillDue{
			BillID:   bill.ID,
			Name:     bill.Name,
			Category: bill.Category,
			Amount:   bill.Amount,
			DueDate:  dueDate,
		}

		switch {
		case summary.NextPaycheck != nil && !dueDate.After(payday):
			summary.DueBeforePayday = append(summary.DueBeforePayday, due)
			summary.DueBeforePaydayTotal += bill.Amount
		case !dueDate.After(horizon):
			summary.Upcoming = append(summary.Upcoming, due)
		}
	}

	sortByDueDate(summary.DueBeforePayday)
	sortByDueDate(summary.Upcoming)
	return summary, nil
}

func sortByDueDate(dues []BillDue) {
	sort.Slice(dues, func(i, j int) bool {
		if dues[i].DueDate.Equal(dues[j].DueDate) {
			return dues[i].Name < dues[j].Name
		}
		return dues[i].DueDate.Before(dues[j].DueDate)
	})
}
