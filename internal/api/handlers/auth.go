package handlers

import (
	"errors"
	"time"

	"illyrian-api/internal/config"
	"illyrian-api/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token        string    `json:"token"`
	UserID       string    `json:"userid"`
	UserRole     string    `json:"userrole"`
	UserLanguage string    `json:"userlanguage"`
	Expiration   time.Time `json:"expiration"`
}

type RegisterRequest struct {
	Email          string     `json:"email" binding:"required"`
	Password       string     `json:"password" binding:"required"`
	Role           string     `json:"role"`
	PersonalNumber *string    `json:"personalNumber"`
	Firstname      *string    `json:"firstname"`
	Lastname       *string    `json:"lastname"`
	Birthdate      *time.Time `json:"birthdate"`
	CityID         *int       `json:"cityId"`
	SettlementID   *int       `json:"settlementId"`
	Address        *string    `json:"address"`
	PhoneNumber    *string    `json:"phoneNumber"`
}

type RegisterRoleRequest struct {
	NameSQ      string  `json:"name_sq" binding:"required"`
	NameEN      string  `json:"name_en" binding:"required"`
	Description *string `json:"description"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Login authenticates a credential pair and issues a bearer token. Unknown
// email and wrong password produce the same response body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request"})
		return
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(401, gin.H{"message": "Invalid email or password"})
		case errors.Is(err, services.ErrAccountInactive):
			c.JSON(401, gin.H{"message": "The account is inactive"})
		case errors.Is(err, services.ErrPasswordExpired):
			c.JSON(401, gin.H{"message": "Password has expired. Please reset your password."})
		default:
			c.Error(err)
			c.JSON(500, gin.H{"message": "An error occurred during login"})
		}
		return
	}

	c.JSON(200, LoginResponse{
		Token:        result.Token,
		UserID:       result.UserID,
		UserRole:     result.UserRole,
		UserLanguage: result.UserLanguage,
		Expiration:   result.Expiration,
	})
}

// Register creates a new account. No token is issued; the caller logs in
// separately.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, StatusResponse{Status: "Error", Message: "Invalid request"})
		return
	}

	_, err := h.authService.Register(services.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		RoleID:         req.Role,
		PersonalNumber: req.PersonalNumber,
		Firstname:      req.Firstname,
		Lastname:       req.Lastname,
		Birthdate:      req.Birthdate,
		CityID:         req.CityID,
		SettlementID:   req.SettlementID,
		Address:        req.Address,
		PhoneNumber:    req.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			c.JSON(409, StatusResponse{Status: "Error", Message: "User already exists!"})
			return
		}
		c.Error(err)
		c.JSON(500, StatusResponse{Status: "Error", Message: "User creation failed! Please check user details and try again."})
		return
	}

	c.JSON(200, StatusResponse{Status: "Success", Message: "User created successfully!"})
}

// RegisterRole creates a role with bilingual names.
func (h *AuthHandler) RegisterRole(c *gin.Context) {
	var req RegisterRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, StatusResponse{Status: "Error", Message: "Invalid request"})
		return
	}

	_, err := h.authService.RegisterRole(req.NameSQ, req.NameEN, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrRoleExists) {
			c.JSON(409, StatusResponse{Status: "Error", Message: "Role already exists!"})
			return
		}
		c.Error(err)
		c.JSON(500, StatusResponse{Status: "Error", Message: "Role creation failed! Please check role details and try again."})
		return
	}

	c.JSON(200, StatusResponse{Status: "Success", Message: "Role created successfully!"})
}

// Logout acknowledges the request. Tokens are stateless, so nothing is
// revoked server-side; the client discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(200, gin.H{"message": "Logged out successfully"})
}

// GetAuthStatus reports whether a valid bearer token was presented.
func (h *AuthHandler) GetAuthStatus(c *gin.Context) {
	_, authenticated := c.Get("user_id")
	c.JSON(200, gin.H{"isAuthenticated": authenticated})
}

// GetUsername returns the authenticated user's name claim.
func (h *AuthHandler) GetUsername(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		c.JSON(401, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(200, gin.H{"username": username})
}
