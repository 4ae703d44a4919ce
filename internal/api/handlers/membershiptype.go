package handlers

import (
	"errors"
	"strconv"

	"illyrian-api/internal/models"
	"illyrian-api/internal/services"

	"github.com/gin-gonic/gin"
)

type MembershipTypeHandler struct {
	membershipTypeService *services.MembershipTypeService
}

func NewMembershipTypeHandler() *MembershipTypeHandler {
	return &MembershipTypeHandler{
		membershipTypeService: services.NewMembershipTypeService(),
	}
}

type MembershipTypeDTO struct {
	MembershipTypeID  int     `json:"membershipTypeId"`
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	DurationInDays    int     `json:"durationInDays"`
	Price             float64 `json:"price"`
	FormattedDuration string  `json:"formattedDuration"`
	FormattedPrice    string  `json:"formattedPrice"`
}

func membershipTypeToDTO(mt *models.MembershipType) MembershipTypeDTO {
	return MembershipTypeDTO{
		MembershipTypeID:  mt.ID,
		Name:              mt.Name,
		Description:       mt.Description,
		DurationInDays:    mt.DurationInDays,
		Price:             mt.Price,
		FormattedDuration: FormatDuration(mt.DurationInDays),
		FormattedPrice:    FormatPrice(mt.Price),
	}
}

func (h *MembershipTypeHandler) GetMembershipTypes(c *gin.Context) {
	types, err := h.membershipTypeService.GetMembershipTypes()
	if err != nil {
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while fetching membership types", "error": err.Error()})
		return
	}

	dtos := make([]MembershipTypeDTO, 0, len(types))
	for i := range types {
		dtos = append(dtos, membershipTypeToDTO(&types[i]))
	}
	c.JSON(200, dtos)
}

func (h *MembershipTypeHandler) GetMembershipType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid membership type ID"})
		return
	}

	membershipType, err := h.membershipTypeService.GetMembershipType(id)
	if err != nil {
		if errors.Is(err, services.ErrMembershipTypeNotFound) {
			c.Status(404)
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while fetching membership type", "error": err.Error()})
		return
	}

	c.JSON(200, membershipTypeToDTO(membershipType))
}

func (h *MembershipTypeHandler) CreateMembershipType(c *gin.Context) {
	var req MembershipTypeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	membershipType := &models.MembershipType{
		Name:           req.Name,
		Description:    req.Description,
		DurationInDays: req.DurationInDays,
		Price:          req.Price,
	}

	if err := h.membershipTypeService.CreateMembershipType(membershipType); err != nil {
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while creating membership type", "error": err.Error()})
		return
	}

	c.JSON(201, membershipTypeToDTO(membershipType))
}

func (h *MembershipTypeHandler) UpdateMembershipType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid membership type ID"})
		return
	}

	var req MembershipTypeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	if req.MembershipTypeID != id {
		c.Status(400)
		return
	}

	update := &models.MembershipType{
		Name:           req.Name,
		Description:    req.Description,
		DurationInDays: req.DurationInDays,
		Price:          req.Price,
	}

	if err := h.membershipTypeService.UpdateMembershipType(id, update); err != nil {
		if errors.Is(err, services.ErrMembershipTypeNotFound) {
			c.Status(404)
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while updating membership type", "error": err.Error()})
		return
	}

	c.Status(204)
}

func (h *MembershipTypeHandler) DeleteMembershipType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid membership type ID"})
		return
	}

	if err := h.membershipTypeService.DeleteMembershipType(id); err != nil {
		if errors.Is(err, services.ErrMembershipTypeNotFound) {
			c.Status(404)
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while deleting membership type", "error": err.Error()})
		return
	}

	c.Status(204)
}
