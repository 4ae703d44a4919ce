package services

import (
	"errors"

	"illyrian-api/internal/models"

	"gorm.io/gorm"
)

var ErrMembershipNotFound = errors.New("membership not found")

type MembershipService struct{}

func NewMembershipService() *MembershipService {
	return &MembershipService{}
}

// GetMemberships returns all memberships with their user and type loaded.
func (s *MembershipService) GetMemberships() ([]models.Membership, error) {
	var memberships []models.Membership
	err := models.DB.
		Preload("User").
		Preload("MembershipType").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// GetMembership returns a specific membership by ID.
func (s *MembershipService) GetMembership(id int) (*models.Membership, error) {
	var membership models.Membership
	err := models.DB.
		Preload("User").
		Preload("MembershipType").
		First(&membership, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}
	return &membership, nil
}

// CreateMembership inserts a membership and reloads it with associations.
func (s *MembershipService) CreateMembership(membership *models.Membership) (*models.Membership, error) {
	if err := models.DB.Create(membership).Error; err != nil {
		return nil, err
	}
	return s.GetMembership(membership.ID)
}

// UpdateMembership overwrites the membership fields.
func (s *MembershipService) UpdateMembership(id int, update *models.Membership) error {
	var membership models.Membership
	if err := models.DB.First(&membership, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMembershipNotFound
		}
		return err
	}

	membership.UserID = update.UserID
	membership.MembershipTypeID = update.MembershipTypeID
	membership.StartDate = update.StartDate
	membership.EndDate = update.EndDate
	membership.IsActive = update.IsActive

	return models.DB.Save(&membership).Error
}

// DeleteMembership removes a membership.
func (s *MembershipService) DeleteMembership(id int) error {
	var membership models.Membership
	if err := models.DB.First(&membership, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMembershipNotFound
		}
		return err
	}
	return models.DB.Delete(&membership).Error
}
