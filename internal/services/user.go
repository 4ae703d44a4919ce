package services

import (
	"errors"
	"strings"
	"time"

	"illyrian-api/internal/config"
	"illyrian-api/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	cfg         *config.Config
	authService *AuthService
}

func NewUserService(cfg *config.Config) *UserService {
	return &UserService{
		cfg:         cfg,
		authService: NewAuthService(cfg),
	}
}

type CreateUserInput struct {
	Email          string
	Password       string
	Username       string
	PersonalNumber *string
	Firstname      *string
	Lastname       *string
	Birthdate      *time.Time
	CityID         *int
	SettlementID   *int
	Address        *string
	PhoneNumber    *string
	Active         *bool
	Roles          []string
}

type UpdateUserInput struct {
	Email          string
	Username       string
	PersonalNumber *string
	Firstname      *string
	Lastname       *string
	Birthdate      *time.Time
	CityID         *int
	SettlementID   *int
	Address        *string
	PhoneNumber    *string
	Active         *bool
	Roles          []string
}

// GetUsers returns all users with their roles
func (s *UserService) GetUsers() ([]models.User, error) {
	var users []models.User
	if err := models.DB.Preload("Roles").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns a specific user by ID
func (s *UserService) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := models.DB.Preload("Roles").First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a new account with the given roles, defaulting to the
// "User" role when none are supplied.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	user, err := s.authService.Register(RegisterInput{
		Email:          input.Email,
		Password:       input.Password,
		PersonalNumber: input.PersonalNumber,
		Firstname:      input.Firstname,
		Lastname:       input.Lastname,
		Birthdate:      input.Birthdate,
		CityID:         input.CityID,
		SettlementID:   input.SettlementID,
		Address:        input.Address,
		PhoneNumber:    input.PhoneNumber,
	})
	if err != nil {
		return nil, err
	}

	if input.Username != "" && input.Username != user.Username {
		user.Username = input.Username
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	if err := models.DB.Save(user).Error; err != nil {
		return nil, err
	}

	roleNames := input.Roles
	if len(roleNames) == 0 {
		roleNames = []string{"User"}
	}
	if err := s.assignRoles(user, roleNames); err != nil {
		return nil, err
	}

	return s.GetUser(user.ID)
}

// UpdateUser updates account fields; empty/nil inputs leave the field alone.
// A non-empty role list replaces the existing assignments.
func (s *UserService) UpdateUser(id string, input UpdateUserInput) (*models.User, error) {
	var user models.User
	if err := models.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if input.Email != "" && input.Email != user.Email {
		var existing models.User
		if err := models.DB.Where("email = ? AND id != ?", input.Email, id).First(&existing).Error; err == nil {
			return nil, ErrUserExists
		}
		user.Email = input.Email
	}
	if input.Username != "" && input.Username != user.Username {
		var existing models.User
		if err := models.DB.Where("username = ? AND id != ?", input.Username, id).First(&existing).Error; err == nil {
			return nil, ErrUserExists
		}
		user.Username = input.Username
	}

	if input.PersonalNumber != nil {
		user.PersonalNumber = input.PersonalNumber
	}
	if input.Firstname != nil {
		user.Firstname = input.Firstname
	}
	if input.Lastname != nil {
		user.Lastname = input.Lastname
	}
	if input.Birthdate != nil {
		user.Birthdate = input.Birthdate
	}
	if input.CityID != nil {
		user.CityID = input.CityID
	}
	if input.SettlementID != nil {
		user.SettlementID = input.SettlementID
	}
	if input.Address != nil {
		user.Address = input.Address
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	if err := models.DB.Save(&user).Error; err != nil {
		return nil, err
	}

	if len(input.Roles) > 0 {
		if err := models.DB.Model(&user).Association("Roles").Clear(); err != nil {
			return nil, err
		}
		if err := s.assignRoles(&user, input.Roles); err != nil {
			return nil, err
		}
	}

	return s.GetUser(user.ID)
}

// DeleteUser deletes a user, refusing to remove the last admin account.
func (s *UserService) DeleteUser(id string) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	if hasAdminRole(user.Roles) {
		admins, err := s.countAdmins()
		if err != nil {
			return err
		}
		if admins <= 1 {
			return errors.New("cannot delete the last administrator account")
		}
	}

	if err := models.DB.Model(user).Association("Roles").Clear(); err != nil {
		return err
	}
	return models.DB.Delete(&models.User{}, "id = ?", id).Error
}

// GetRoles returns all roles
func (s *UserService) GetRoles() ([]models.Role, error) {
	var roles []models.Role
	if err := models.DB.Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// ResetPassword replaces the password hash and restarts the expiry window.
func (s *UserService) ResetPassword(id, newPassword string) error {
	var user models.User
	if err := models.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	hashedPassword, err := s.authService.HashPassword(newPassword)
	if err != nil {
		return err
	}

	validFor := time.Duration(s.cfg.Security.PasswordValidMonths) * 30 * 24 * time.Hour
	user.PasswordHash = hashedPassword
	user.PasswordExpires = time.Now().Add(validFor)
	return models.DB.Save(&user).Error
}

func (s *UserService) assignRoles(user *models.User, roleNames []string) error {
	for _, name := range roleNames {
		var role models.Role
		if err := models.DB.Where("name = ?", name).First(&role).Error; err != nil {
			continue // unknown role names are skipped, not an error
		}
		if err := models.DB.Model(user).Association("Roles").Append(&role); err != nil {
			return err
		}
	}
	return nil
}

func (s *UserService) countAdmins() (int64, error) {
	var count int64
	err := models.DB.Model(&models.User{}).
		Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("roles.name IN ?", []string{"Admin", "Administrator"}).
		Distinct("users.id").
		Count(&count).Error
	return count, err
}

func hasAdminRole(roles []models.Role) bool {
	for _, role := range roles {
		if strings.EqualFold(role.Name, "Admin") || strings.EqualFold(role.Name, "Administrator") {
			return true
		}
	}
	return false
}
