package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "payday/internal/errors"
	"payday/internal/models"
	"payday/internal/schedule"
)

// billService handles bill-related business logic.
type billService struct {
	db *gorm.DB
}

// NewBillService creates a new BillServicer.
func NewBillService(db *gorm.DB) BillServicer {
	return &billService{db: db}
}

// CreateBill creates a new active bill.
func (s *billService) CreateBill(name, category string, amount float64, dueDay int) (*models.Bill, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Bill name is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be positive")
	}
	if dueDay < 1 || dueDay > 31 {
		return nil, apperrors.ErrInvalidDueDay
	}
	if category == "" {
		category = "Other"
	}

	bill := &models.Bill{
		Name:     name,
		Category: category,
		Amount:   amount,
		DueDay:   dueDay,
		IsActive: true,
	}

	if err := s.db.Create(bill).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bill, nil
}

// GetBills returns all bills ordered by due day, then name.
func (s *billService) GetBills() ([]models.Bill, error) {
	var bills []models.Bill
	if err := s.db.Order("due_day asc, name asc").Find(&bills).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bills, nil
}

// GetBillByID returns a bill by ID.
func (s *billService) GetBillByID(billID uint) (*models.Bill, error) {
	var bill models.Bill
	if err := s.db.First(&bill, billID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &bill, nil
}

// UpdateBill updates an existing bill's fields.
func (s *billService) UpdateBill(billID uint, name, category string, amount *float64, dueDay *int, isActive *bool) (*models.Bill, error) {
	bill, err := s.GetBillByID(billID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if category != "" {
		updates["category"] = category
	}
	if amount != nil {
		if *amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be positive")
		}
		updates["amount"] = *amount
	}
	if dueDay != nil {
		if *dueDay < 1 || *dueDay > 31 {
			return nil, apperrors.ErrInvalidDueDay
		}
		updates["due_day"] = *dueDay
	}
	if isActive != nil {
		updates["is_active"] = *isActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(bill).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return bill, nil
}

// DeleteBill soft-deletes a bill.
func (s *billService) DeleteBill(billID uint) error {
	bill, err := s.GetBillByID(billID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(bill).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// MarkPaid records payment through the bill's next projected due date.
// Storing the projection, never a caller-supplied date, keeps PaidThrough
// equal to a computed due date.
func (s *billService) MarkPaid(billID uint, today time.Time) (*models.Bill, error) {
	bill, err := s.GetBillByID(billID)
	if err != nil {
		return nil, err
	}

	dueDate := schedule.NextDueDate(bill.DueDay, today)
	if err := s.db.Model(bill).Update("paid_through", dueDate).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	bill.PaidThrough = &dueDate
	return bill, nil
}

// MarkUnpaid clears the paid-through marker.
func (s *billService) MarkUnpaid(billID uint) (*models.Bill, error) {
	bill, err := s.GetBillByID(billID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(bill).Update("paid_through", nil).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	bill.PaidThrough = nil
	return bill, nil
}
