package routes

import (
	"encoding/json"
	"testing"
	"time"

	"illyrian-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	user := createTestUser(t, cfg, "member@example.com", "secret123", "Admin")
	router := setupTestRouter(cfg)

	t.Run("success returns token and claims", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/auth/login", "", gin.H{
			"email":    "member@example.com",
			"password": "secret123",
		})
		require.Equal(t, 200, w.Code)

		var resp struct {
			Token      string    `json:"token"`
			UserID     string    `json:"userid"`
			UserRole   string    `json:"userrole"`
			Expiration time.Time `json:"expiration"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, user.ID, resp.UserID)
		assert.Equal(t, "Admin", resp.UserRole)

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWT.Secret), nil
		})
		require.NoError(t, err)

		assert.Equal(t, user.ID, claims["sub"])
		assert.Equal(t, "member@example.com", claims["email"])
		assert.Equal(t, "member@example.com", claims["username"])
		assert.NotEmpty(t, claims["jti"])

		// Expiry is exactly three hours after issue time
		exp := int64(claims["exp"].(float64))
		iat := int64(claims["iat"].(float64))
		assert.Equal(t, int64((3 * time.Hour).Seconds()), exp-iat)
		assert.WithinDuration(t, resp.Expiration, time.Unix(exp, 0), time.Second)
	})

	t.Run("two logins issue distinct token ids with identical claims", func(t *testing.T) {
		decode := func(token string) jwt.MapClaims {
			claims := jwt.MapClaims{}
			_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(cfg.JWT.Secret), nil
			})
			require.NoError(t, err)
			return claims
		}

		first := decode(loginAs(t, router, "member@example.com", "secret123"))
		second := decode(loginAs(t, router, "member@example.com", "secret123"))

		assert.NotEqual(t, first["jti"], second["jti"])
		assert.Equal(t, first["sub"], second["sub"])
		assert.Equal(t, first["username"], second["username"])
		assert.Equal(t, first["email"], second["email"])
		assert.Equal(t, first["roles"], second["roles"])
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		wrongPassword := doJSON(router, "POST", "/api/auth/login", "", gin.H{
			"email":    "member@example.com",
			"password": "not-the-password",
		})
		unknownEmail := doJSON(router, "POST", "/api/auth/login", "", gin.H{
			"email":    "nobody@example.com",
			"password": "secret123",
		})

		assert.Equal(t, 401, wrongPassword.Code)
		assert.Equal(t, 401, unknownEmail.Code)
		assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
		assert.Contains(t, wrongPassword.Body.String(), "Invalid email or password")
	})

	t.Run("inactive account is rejected", func(t *testing.T) {
		inactive := createTestUser(t, cfg, "inactive@example.com", "secret123", "User")
		require.NoError(t, models.DB.Model(&models.User{}).Where("id = ?", inactive.ID).Update("active", false).Error)

		w := doJSON(router, "POST", "/api/auth/login", "", gin.H{
			"email":    "inactive@example.com",
			"password": "secret123",
		})
		assert.Equal(t, 401, w.Code)
		assert.Contains(t, w.Body.String(), "The account is inactive")
	})

	t.Run("expired password is rejected", func(t *testing.T) {
		expired := createTestUser(t, cfg, "expired@example.com", "secret123", "User")
		past := time.Now().Add(-24 * time.Hour)
		require.NoError(t, models.DB.Model(&models.User{}).Where("id = ?", expired.ID).Update("password_expires", past).Error)

		w := doJSON(router, "POST", "/api/auth/login", "", gin.H{
			"email":    "expired@example.com",
			"password": "secret123",
		})
		assert.Equal(t, 401, w.Code)
		assert.Contains(t, w.Body.String(), "Password has expired")
	})
}

func TestRegister(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)
	router := setupTestRouter(cfg)

	t.Run("creates account without issuing a token", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/auth/register", "", gin.H{
			"email":     "new@example.com",
			"password":  "secret123",
			"firstname": "Arben",
			"lastname":  "Krasniqi",
		})
		require.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), "User created successfully!")
		assert.NotContains(t, w.Body.String(), "token")

		var user models.User
		require.NoError(t, models.DB.Where("email = ?", "new@example.com").First(&user).Error)
		assert.True(t, user.Active)
		assert.True(t, user.AllowNotifications)
		assert.True(t, user.EmailConfirmed)
		assert.NotEmpty(t, user.SecurityStamp)

		// Password expiry is three months out
		expected := time.Now().Add(3 * 30 * 24 * time.Hour)
		assert.WithinDuration(t, expected, user.PasswordExpires, time.Minute)
	})

	t.Run("assigns role when a valid role id is supplied", func(t *testing.T) {
		var role models.Role
		require.NoError(t, models.DB.Where("name = ?", "User").First(&role).Error)

		w := doJSON(router, "POST", "/api/auth/register", "", gin.H{
			"email":    "withrole@example.com",
			"password": "secret123",
			"role":     role.ID,
		})
		require.Equal(t, 200, w.Code)

		var user models.User
		require.NoError(t, models.DB.Preload("Roles").Where("email = ?", "withrole@example.com").First(&user).Error)
		require.Len(t, user.Roles, 1)
		assert.Equal(t, "User", user.Roles[0].Name)
	})

	t.Run("unknown role id creates the account without a role", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/auth/register", "", gin.H{
			"email":    "norole@example.com",
			"password": "secret123",
			"role":     "does-not-exist",
		})
		require.Equal(t, 200, w.Code)

		var user models.User
		require.NoError(t, models.DB.Preload("Roles").Where("email = ?", "norole@example.com").First(&user).Error)
		assert.Empty(t, user.Roles)
	})

	t.Run("duplicate email is rejected and no account is created", func(t *testing.T) {
		var before int64
		models.DB.Model(&models.User{}).Count(&before)

		w := doJSON(router, "POST", "/api/auth/register", "", gin.H{
			"email":    "new@example.com",
			"password": "other456",
		})
		assert.Equal(t, 409, w.Code)
		assert.Contains(t, w.Body.String(), "User already exists!")

		var after int64
		models.DB.Model(&models.User{}).Count(&after)
		assert.Equal(t, before, after)
	})
}

func TestAuthStatusAndUsername(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	createTestUser(t, cfg, "member@example.com", "secret123", "User")
	router := setupTestRouter(cfg)

	t.Run("status without token", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/auth/status", "", nil)
		require.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), `"isAuthenticated":false`)
	})

	t.Run("status with token", func(t *testing.T) {
		token := loginAs(t, router, "member@example.com", "secret123")
		w := doJSON(router, "GET", "/api/auth/status", token, nil)
		require.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), `"isAuthenticated":true`)
	})

	t.Run("username requires auth", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/auth/username", "", nil)
		assert.Equal(t, 401, w.Code)

		token := loginAs(t, router, "member@example.com", "secret123")
		w = doJSON(router, "GET", "/api/auth/username", token, nil)
		require.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), "member@example.com")
	})
}
