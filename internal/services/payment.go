package services

import (
	"errors"

	"illyrian-api/internal/models"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentService struct{}

func NewPaymentService() *PaymentService {
	return &PaymentService{}
}

// GetPayments returns all payments joined to their user and membership type.
func (s *PaymentService) GetPayments() ([]models.Payment, error) {
	var payments []models.Payment
	err := models.DB.
		Preload("User").
		Preload("Membership.MembershipType").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *PaymentService) GetPayment(id int) (*models.Payment, error) {
	var payment models.Payment
	err := models.DB.
		Preload("User").
		Preload("Membership.MembershipType").
		First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) CreatePayment(payment *models.Payment) (*models.Payment, error) {
	if err := models.DB.Create(payment).Error; err != nil {
		return nil, err
	}
	return s.GetPayment(payment.ID)
}

func (s *PaymentService) DeletePayment(id int) error {
	var payment models.Payment
	if err := models.DB.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentNotFound
		}
		return err
	}
	return models.DB.Delete(&payment).Error
}
