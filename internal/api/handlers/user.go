package handlers

import (
	"errors"
	"time"

	"illyrian-api/internal/config"
	"illyrian-api/internal/models"
	"illyrian-api/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(cfg *config.Config) *UserHandler {
	return &UserHandler{
		userService: services.NewUserService(cfg),
	}
}

type UserDTO struct {
	ID                    string     `json:"id"`
	PersonalNumber        *string    `json:"personalNumber"`
	Firstname             *string    `json:"firstname"`
	Lastname              *string    `json:"lastname"`
	Email                 string     `json:"email"`
	UserName              string     `json:"userName"`
	PhoneNumber           *string    `json:"phoneNumber"`
	Address               *string    `json:"address"`
	Birthdate             *time.Time `json:"birthdate"`
	Active                bool       `json:"active"`
	InsertedDate          time.Time  `json:"insertedDate"`
	FormattedBirthdate    *string    `json:"formattedBirthdate"`
	FormattedInsertedDate string     `json:"formattedInsertedDate"`
	FullName              string     `json:"fullName"`
	Roles                 []string   `json:"roles"`
}

type CreateUserRequest struct {
	Email          string     `json:"email" binding:"required"`
	Password       string     `json:"password" binding:"required"`
	UserName       string     `json:"userName"`
	PersonalNumber *string    `json:"personalNumber"`
	Firstname      *string    `json:"firstname"`
	Lastname       *string    `json:"lastname"`
	Birthdate      *time.Time `json:"birthdate"`
	CityID         *int       `json:"cityId"`
	SettlementID   *int       `json:"settlementId"`
	Address        *string    `json:"address"`
	PhoneNumber    *string    `json:"phoneNumber"`
	Active         *bool      `json:"active"`
	Roles          []string   `json:"roles"`
}

type UpdateUserRequest struct {
	Email          string     `json:"email"`
	UserName       string     `json:"userName"`
	PersonalNumber *string    `json:"personalNumber"`
	Firstname      *string    `json:"firstname"`
	Lastname       *string    `json:"lastname"`
	Birthdate      *time.Time `json:"birthdate"`
	CityID         *int       `json:"cityId"`
	SettlementID   *int       `json:"settlementId"`
	Address        *string    `json:"address"`
	PhoneNumber    *string    `json:"phoneNumber"`
	Active         *bool      `json:"active"`
	Roles          []string   `json:"roles"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

type RoleDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	NameSq      string  `json:"nameSq"`
	NameEn      string  `json:"nameEn"`
	Description *string `json:"description"`
}

func userToDTO(u *models.User) UserDTO {
	roles := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		roles = append(roles, role.Name)
	}

	dto := UserDTO{
		ID:                    u.ID,
		PersonalNumber:        u.PersonalNumber,
		Firstname:             u.Firstname,
		Lastname:              u.Lastname,
		Email:                 u.Email,
		UserName:              u.Username,
		PhoneNumber:           u.PhoneNumber,
		Address:               u.Address,
		Birthdate:             u.Birthdate,
		Active:                u.Active,
		InsertedDate:          u.InsertedDate,
		FormattedInsertedDate: FormatDate(u.InsertedDate),
		FullName:              FullName(u.Firstname, u.Lastname),
		Roles:                 roles,
	}
	if u.Birthdate != nil {
		formatted := FormatDate(*u.Birthdate)
		dto.FormattedBirthdate = &formatted
	}
	return dto
}

// GetUsers returns all users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetUsers()
	if err != nil {
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while fetching users", "error": err.Error()})
		return
	}

	dtos := make([]UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, userToDTO(&users[i]))
	}
	c.JSON(200, dtos)
}

// GetUser returns a specific user
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.Status(404)
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while fetching user", "error": err.Error()})
		return
	}

	c.JSON(200, userToDTO(user))
}

// CreateUser creates a new user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	user, err := h.userService.CreateUser(services.CreateUserInput{
		Email:          req.Email,
		Password:       req.Password,
		Username:       req.UserName,
		PersonalNumber: req.PersonalNumber,
		Firstname:      req.Firstname,
		Lastname:       req.Lastname,
		Birthdate:      req.Birthdate,
		CityID:         req.CityID,
		SettlementID:   req.SettlementID,
		Address:        req.Address,
		PhoneNumber:    req.PhoneNumber,
		Active:         req.Active,
		Roles:          req.Roles,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			c.JSON(400, gin.H{"message": "User with this email already exists"})
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while creating user", "error": err.Error()})
		return
	}

	c.JSON(201, userToDTO(user))
}

// UpdateUser updates a user
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	_, err := h.userService.UpdateUser(c.Param("id"), services.UpdateUserInput{
		Email:          req.Email,
		Username:       req.UserName,
		PersonalNumber: req.PersonalNumber,
		Firstname:      req.Firstname,
		Lastname:       req.Lastname,
		Birthdate:      req.Birthdate,
		CityID:         req.CityID,
		SettlementID:   req.SettlementID,
		Address:        req.Address,
		PhoneNumber:    req.PhoneNumber,
		Active:         req.Active,
		Roles:          req.Roles,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.Status(404)
			return
		}
		if errors.Is(err, services.ErrUserExists) {
			c.JSON(400, gin.H{"message": "User update failed", "error": err.Error()})
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while updating user", "error": err.Error()})
		return
	}

	c.Status(204)
}

// DeleteUser deletes a user
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.Status(404)
			return
		}
		if err.Error() == "cannot delete the last administrator account" {
			c.JSON(400, gin.H{"message": err.Error()})
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while deleting user", "error": err.Error()})
		return
	}

	c.Status(204)
}

// GetRoles returns all roles
func (h *UserHandler) GetRoles(c *gin.Context) {
	roles, err := h.userService.GetRoles()
	if err != nil {
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while fetching roles", "error": err.Error()})
		return
	}

	dtos := make([]RoleDTO, 0, len(roles))
	for _, role := range roles {
		dtos = append(dtos, RoleDTO{
			ID:          role.ID,
			Name:        role.Name,
			NameSq:      role.NameSq,
			NameEn:      role.NameEn,
			Description: role.Description,
		})
	}
	c.JSON(200, dtos)
}

// ResetPassword replaces a user's password and restarts the expiry window.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	if err := h.userService.ResetPassword(c.Param("id"), req.NewPassword); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.Status(404)
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while resetting password", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"message": "Password reset successful"})
}
