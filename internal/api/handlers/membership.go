package handlers

import (
	"errors"
	"strconv"
	"time"

	"illyrian-api/internal/models"
	"illyrian-api/internal/services"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	membershipService *services.MembershipService
}

func NewMembershipHandler() *MembershipHandler {
	return &MembershipHandler{
		membershipService: services.NewMembershipService(),
	}
}

type MembershipDTO struct {
	MembershipID       int       `json:"membershipId"`
	UserID             string    `json:"userId"`
	UserFullName       string    `json:"userFullName"`
	MembershipTypeID   int       `json:"membershipTypeId"`
	MembershipTypeName string    `json:"membershipTypeName"`
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
	IsActive           bool      `json:"isActive"`
	Price              float64   `json:"price"`
	FormattedPrice     string    `json:"formattedPrice"`
	FormattedStartDate string    `json:"formattedStartDate"`
	FormattedEndDate   string    `json:"formattedEndDate"`
	DurationInDays     int       `json:"durationInDays"`
	FormattedDuration  string    `json:"formattedDuration"`
}

func membershipToDTO(m *models.Membership) MembershipDTO {
	dto := MembershipDTO{
		MembershipID:       m.ID,
		UserID:             m.UserID,
		MembershipTypeID:   m.MembershipTypeID,
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		FormattedStartDate: FormatDate(m.StartDate),
		FormattedEndDate:   FormatDate(m.EndDate),
	}
	if m.IsActive != nil {
		dto.IsActive = *m.IsActive
	}
	if m.User != nil {
		dto.UserFullName = FullName(m.User.Firstname, m.User.Lastname)
	}
	if m.MembershipType != nil {
		dto.MembershipTypeName = m.MembershipType.Name
		dto.Price = m.MembershipType.Price
		dto.DurationInDays = m.MembershipType.DurationInDays
	}
	dto.FormattedPrice = FormatPrice(dto.Price)
	dto.FormattedDuration = FormatDuration(dto.DurationInDays)
	return dto
}

// GetMemberships returns all memberships
func (h *MembershipHandler) GetMemberships(c *gin.Context) {
	memberships, err := h.membershipService.GetMemberships()
	if err != nil {
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while fetching memberships", "error": err.Error()})
		return
	}

	dtos := make([]MembershipDTO, 0, len(memberships))
	for i := range memberships {
		dtos = append(dtos, membershipToDTO(&memberships[i]))
	}
	c.JSON(200, dtos)
}

// GetMembership returns a specific membership
func (h *MembershipHandler) GetMembership(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid membership ID"})
		return
	}

	membership, err := h.membershipService.GetMembership(id)
	if err != nil {
		if errors.Is(err, services.ErrMembershipNotFound) {
			c.Status(404)
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while fetching membership", "error": err.Error()})
		return
	}

	c.JSON(200, membershipToDTO(membership))
}

// CreateMembership creates a new membership
func (h *MembershipHandler) CreateMembership(c *gin.Context) {
	var req MembershipDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	isActive := req.IsActive
	membership := &models.Membership{
		UserID:           req.UserID,
		MembershipTypeID: req.MembershipTypeID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		IsActive:         &isActive,
	}

	created, err := h.membershipService.CreateMembership(membership)
	if err != nil {
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while creating membership", "error": err.Error()})
		return
	}

	c.JSON(201, membershipToDTO(created))
}

// UpdateMembership overwrites a membership
func (h *MembershipHandler) UpdateMembership(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid membership ID"})
		return
	}

	var req MembershipDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	if req.MembershipID != id {
		c.Status(400)
		return
	}

	isActive := req.IsActive
	update := &models.Membership{
		UserID:           req.UserID,
		MembershipTypeID: req.MembershipTypeID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		IsActive:         &isActive,
	}

	if err := h.membershipService.UpdateMembership(id, update); err != nil {
		if errors.Is(err, services.ErrMembershipNotFound) {
			c.Status(404)
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while updating membership", "error": err.Error()})
		return
	}

	c.Status(204)
}

// DeleteMembership removes a membership
func (h *MembershipHandler) DeleteMembership(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid membership ID"})
		return
	}

	if err := h.membershipService.DeleteMembership(id); err != nil {
		if errors.Is(err, services.ErrMembershipNotFound) {
			c.Status(404)
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while deleting membership", "error": err.Error()})
		return
	}

	c.Status(204)
}
