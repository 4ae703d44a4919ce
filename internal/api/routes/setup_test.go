package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"illyrian-api/internal/config"
	"illyrian-api/internal/models"
	"illyrian-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// setupTestDB initializes a test database
func setupTestDB(t *testing.T) *config.Config {
	tmpDir := os.TempDir()
	testDBPath := fmt.Sprintf("%s/illyrian_test_%d.db", tmpDir, time.Now().UnixNano())

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Type: "sqlite",
			SQLite: config.SQLiteConfig{
				Path: testDBPath,
			},
		},
		JWT: config.JWTConfig{
			Secret:    "test-secret-key-for-testing-only",
			ExpiresIn: "3h",
			Issuer:    "illyrian-api-test",
			Audience:  "illyrian-test-clients",
		},
		Security: config.SecurityConfig{
			BcryptCost:          4,
			PasswordValidMonths: 3,
		},
	}

	err := models.InitDB(cfg)
	require.NoError(t, err)

	authService := services.NewAuthService(cfg)
	require.NoError(t, authService.SeedDefaults())

	return cfg
}

// cleanupTestDB cleans up test database
func cleanupTestDB(t *testing.T, cfg *config.Config) {
	if models.DB != nil {
		sqlDB, err := models.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
		if cfg != nil && cfg.Database.Type == "sqlite" {
			os.Remove(cfg.Database.SQLite.Path)
		}
	}
	models.DB = nil
}

// setupTestRouter creates a test router with routes
func setupTestRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, cfg)
	return r
}

// createTestUser registers an account and assigns it a role
func createTestUser(t *testing.T, cfg *config.Config, email, password, roleName string) *models.User {
	authService := services.NewAuthService(cfg)
	user, err := authService.Register(services.RegisterInput{
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)

	if roleName != "" {
		var role models.Role
		require.NoError(t, models.DB.Where("name = ?", roleName).First(&role).Error)
		require.NoError(t, models.DB.Model(user).Association("Roles").Append(&role))
	}

	return user
}

// doJSON performs a JSON request against the router
func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// loginAs logs in through the API and returns the issued token
func loginAs(t *testing.T, router *gin.Engine, email, password string) string {
	w := doJSON(router, "POST", "/api/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, 200, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// countAuditLogs returns the number of audit records
func countAuditLogs(t *testing.T) int64 {
	var count int64
	require.NoError(t, models.DB.Model(&models.AuditLog{}).Count(&count).Error)
	return count
}
