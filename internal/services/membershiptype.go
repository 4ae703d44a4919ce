package services

import (
	"errors"

	"illyrian-api/internal/models"

	"gorm.io/gorm"
)

var ErrMembershipTypeNotFound = errors.New("membership type not found")

type MembershipTypeService struct{}

func NewMembershipTypeService() *MembershipTypeService {
	return &MembershipTypeService{}
}

func (s *MembershipTypeService) GetMembershipTypes() ([]models.MembershipType, error) {
	var types []models.MembershipType
	if err := models.DB.Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (s *MembershipTypeService) GetMembershipType(id int) (*models.MembershipType, error) {
	var membershipType models.MembershipType
	if err := models.DB.First(&membershipType, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMembershipTypeNotFound
		}
		return nil, err
	}
	return &membershipType, nil
}

func (s *MembershipTypeService) CreateMembershipType(membershipType *models.MembershipType) error {
	return models.DB.Create(membershipType).Error
}

func (s *MembershipTypeService) UpdateMembershipType(id int, update *models.MembershipType) error {
	var membershipType models.MembershipType
	if err := models.DB.First(&membershipType, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMembershipTypeNotFound
		}
		return err
	}

	membershipType.Name = update.Name
	membershipType.Description = update.Description
	membershipType.DurationInDays = update.DurationInDays
	membershipType.Price = update.Price

	return models.DB.Save(&membershipType).Error
}

func (s *MembershipTypeService) DeleteMembershipType(id int) error {
	var membershipType models.MembershipType
	if err := models.DB.First(&membershipType, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMembershipTypeNotFound
		}
		return err
	}
	return models.DB.Delete(&membershipType).Error
}
