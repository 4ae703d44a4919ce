package services

import (
	"errors"
	"time"

	"illyrian-api/internal/config"
	"illyrian-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("the account is inactive")
	ErrPasswordExpired    = errors.New("password has expired")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleExists         = errors.New("role already exists")
	ErrRoleNotFound       = errors.New("role not found")
)

type AuthService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// LoginResult carries everything the login response returns to the client.
type LoginResult struct {
	Token        string
	UserID       string
	UserRole     string
	UserLanguage string
	Expiration   time.Time
}

type RegisterInput struct {
	Email          string
	Password       string
	RoleID         string
	PersonalNumber *string
	Firstname      *string
	Lastname       *string
	Birthdate      *time.Time
	CityID         *int
	SettlementID   *int
	Address        *string
	PhoneNumber    *string
}

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.Security.BcryptCost)
	return string(bytes), err
}

// VerifyPassword verifies a password against a hash
func (s *AuthService) VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// Login verifies the credential pair and account state, then issues a signed
// token. Unknown email and wrong password both return ErrInvalidCredentials
// so the response never reveals whether the account exists.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	var user models.User
	err := models.DB.Where("email = ?", email).
		Preload("Roles").
		Preload("Language").
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	if !user.Active {
		return nil, ErrAccountInactive
	}

	if user.PasswordExpires.Before(time.Now()) {
		return nil, ErrPasswordExpired
	}

	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, role.Name)
	}

	token, expiresAt, err := s.generateToken(&user, roles)
	if err != nil {
		return nil, err
	}

	result := &LoginResult{
		Token:      token,
		UserID:     user.ID,
		Expiration: expiresAt,
	}
	if len(roles) > 0 {
		result.UserRole = roles[0]
	}
	if user.Language != nil && user.Language.NameEn != nil {
		result.UserLanguage = *user.Language.NameEn
	}

	return result, nil
}

// Register creates a new account. The caller must log in separately; no token
// is issued here.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	var existing models.User
	if err := models.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := s.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	validFor := time.Duration(s.cfg.Security.PasswordValidMonths) * 30 * 24 * time.Hour
	now := time.Now()

	user := &models.User{
		ID:                     uuid.NewString(),
		Email:                  input.Email,
		Username:               input.Email,
		PasswordHash:           hashedPassword,
		SecurityStamp:          uuid.NewString(),
		PersonalNumber:         input.PersonalNumber,
		Firstname:              input.Firstname,
		Lastname:               input.Lastname,
		Birthdate:              input.Birthdate,
		CityID:                 input.CityID,
		SettlementID:           input.SettlementID,
		Address:                input.Address,
		PhoneNumber:            input.PhoneNumber,
		Active:                 true,
		PasswordExpires:        now.Add(validFor),
		AllowNotifications:     true,
		AllowAdminNotification: true,
		EmailConfirmed:         true,
		PhoneNumberConfirmed:   true,
		TwoFactorEnabled:       false,
		LockoutEnabled:         false,
		AccessFailedCount:      0,
		InsertedDate:           now,
	}

	if err := models.DB.Create(user).Error; err != nil {
		return nil, err
	}

	// A role id that does not resolve is not an error; the account is simply
	// created without a role.
	if input.RoleID != "" {
		var role models.Role
		if err := models.DB.First(&role, "id = ?", input.RoleID).Error; err == nil {
			models.DB.Model(user).Association("Roles").Append(&role)
		}
	}

	return user, nil
}

// RegisterRole creates a role with bilingual names.
func (s *AuthService) RegisterRole(nameSq, nameEn string, description *string) (*models.Role, error) {
	var existing models.Role
	if err := models.DB.Where("name = ?", nameEn).First(&existing).Error; err == nil {
		return nil, ErrRoleExists
	}

	role := &models.Role{
		ID:          uuid.NewString(),
		Name:        nameEn,
		NameSq:      nameSq,
		NameEn:      nameEn,
		Description: description,
	}

	if err := models.DB.Create(role).Error; err != nil {
		return nil, err
	}

	return role, nil
}

// generateToken signs an HS256 token over the user's identity and role claims.
func (s *AuthService) generateToken(user *models.User, roles []string) (string, time.Time, error) {
	expiresIn, err := time.ParseDuration(s.cfg.JWT.ExpiresIn)
	if err != nil || expiresIn <= 0 {
		expiresIn = 3 * time.Hour
	}

	now := time.Now()
	expiresAt := now.Add(expiresIn)

	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"email":    user.Email,
		"roles":    roles,
		"jti":      uuid.NewString(),
		"exp":      expiresAt.Unix(),
		"iat":      now.Unix(),
		"iss":      s.cfg.JWT.Issuer,
		"aud":      s.cfg.JWT.Audience,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// SeedDefaults creates the built-in roles, languages and the first admin
// account on an empty database.
func (s *AuthService) SeedDefaults() error {
	for _, role := range []models.Role{
		{Name: "Admin", NameSq: "Administrator", NameEn: "Admin"},
		{Name: "User", NameSq: "Përdorues", NameEn: "User"},
	} {
		var count int64
		models.DB.Model(&models.Role{}).Where("name = ?", role.Name).Count(&count)
		if count == 0 {
			role.ID = uuid.NewString()
			if err := models.DB.Create(&role).Error; err != nil {
				return err
			}
		}
	}

	for _, lang := range []models.Language{
		{ID: 1, NameSq: strPtr("Shqip"), NameEn: strPtr("Albanian")},
		{ID: 2, NameSq: strPtr("Anglisht"), NameEn: strPtr("English")},
	} {
		var count int64
		models.DB.Model(&models.Language{}).Where("id = ?", lang.ID).Count(&count)
		if count == 0 {
			if err := models.DB.Create(&lang).Error; err != nil {
				return err
			}
		}
	}

	var userCount int64
	models.DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 && s.cfg.Seed.AdminEmail != "" {
		user, err := s.Register(RegisterInput{
			Email:    s.cfg.Seed.AdminEmail,
			Password: s.cfg.Seed.AdminPassword,
		})
		if err != nil {
			return err
		}
		var admin models.Role
		if err := models.DB.Where("name = ?", "Admin").First(&admin).Error; err == nil {
			return models.DB.Model(user).Association("Roles").Append(&admin)
		}
	}

	return nil
}

func strPtr(s string) *string {
	return &s
}
