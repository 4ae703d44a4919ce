package middleware

import (
	"bytes"
	"errors"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuditDB(t *testing.T) func() {
	path := fmt.Sprintf("%s/illyrian_audit_test_%d.db", os.TempDir(), time.Now().UnixNano())
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Type:   "sqlite",
			SQLite: config.SQLiteConfig{Path: path},
		},
	}
	require.NoError(t, models.InitDB(cfg))

	return func() {
		if models.DB != nil {
			if sqlDB, err := models.DB.DB(); err == nil {
				sqlDB.Close()
			}
		}
		models.DB = nil
		os.Remove(path)
	}
}

func auditRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.Use(AuditMiddleware(services.NewAuditService()))
	return r
}

func lastRecord(t *testing.T) *models.AuditLog {
	var record models.AuditLog
	require.NoError(t, models.DB.Order("id desc").First(&record).Error)
	return &record
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuditMiddlewarePanic(t *testing.T) {
	cleanup := setupAuditDB(t)
	defer cleanup()

	r := auditRouter()
	r.GET("/boom", func(c *gin.Context) {
		panic("handler exploded")
	})

	w := perform(r, "GET", "/boom", "")
	assert.Equal(t, 500, w.Code)

	record := lastRecord(t)
	assert.True(t, record.Error)
	require.NotNil(t, record.Exception)
	assert.Contains(t, *record.Exception, "panic")
	assert.Contains(t, *record.Exception, "handler exploded")
}

func TestAuditMiddlewareHandlerError(t *testing.T) {
	cleanup := setupAuditDB(t)
	defer cleanup()

	r := auditRouter()
	r.GET("/fails", func(c *gin.Context) {
		c.Error(errors.New("downstream unavailable"))
		c.JSON(500, gin.H{"message": "internal error"})
	})

	perform(r, "GET", "/fails", "")

	record := lastRecord(t)
	assert.True(t, record.Error)
	require.NotNil(t, record.Exception)
	assert.Contains(t, *record.Exception, "downstream unavailable")
}

func TestAuditMiddlewareTokenRedaction(t *testing.T) {
	cleanup := setupAuditDB(t)
	defer cleanup()

	r := auditRouter()
	r.GET("/token", func(c *gin.Context) {
		c.JSON(200, gin.H{"token": "eyJhbGciOi"})
	})
	r.GET("/plain", func(c *gin.Context) {
		c.JSON(200, gin.H{"name": "Bench Press"})
	})

	perform(r, "GET", "/token", "")
	record := lastRecord(t)
	require.NotNil(t, record.Response)
	assert.Equal(t, RedactedPlaceholder, *record.Response)

	perform(r, "GET", "/plain", "")
	record = lastRecord(t)
	require.NotNil(t, record.Response)
	assert.Contains(t, *record.Response, "Bench Press")
}

func TestAuditMiddlewareContainment(t *testing.T) {
	cleanup := setupAuditDB(t)

	r := auditRouter()
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Close the database underneath the middleware. The handler must still
	// run and return its own result.
	cleanup()

	w := perform(r, "GET", "/ok", "")
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestAuditMiddlewareMalformedBody(t *testing.T) {
	cleanup := setupAuditDB(t)
	defer cleanup()

	r := auditRouter()
	r.POST("/echo", func(c *gin.Context) {
		c.JSON(200, gin.H{"received": true})
	})

	w := perform(r, "POST", "/echo", "{not json")
	assert.Equal(t, 200, w.Code)

	record := lastRecord(t)
	require.NotNil(t, record.FormContent)
	assert.Contains(t, *record.FormContent, "failed to serialize request payload")
}

func TestControllerAction(t *testing.T) {
	tests := []struct {
		name       string
		handler    string
		controller string
		action     string
	}{
		{
			name:       "bound method",
			handler:    "illyrian-api/internal/api/handlers.(*AuthHandler).Login-fm",
			controller: "Auth",
			action:     "Login",
		},
		{
			name:       "handler suffix trimmed",
			handler:    "illyrian-api/internal/api/handlers.(*MembershipHandler).GetMemberships-fm",
			controller: "Membership",
			action:     "GetMemberships",
		},
		{
			name:       "anonymous function",
			handler:    "illyrian-api/internal/api/routes.SetupRoutes.func1",
			controller: "SetupRoutes",
			action:     "func1",
		},
		{
			name:       "empty",
			handler:    "",
			controller: "",
			action:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, action := controllerAction(tt.handler)
			assert.Equal(t, tt.controller, controller)
			assert.Equal(t, tt.action, action)
		})
	}
}

func TestRedactResponse(t *testing.T) {
	t.Run("sensitive action is always hidden", func(t *testing.T) {
		assert.Equal(t, RedactedPlaceholder, redactResponse("Login", `{"userid":"abc"}`))
		assert.Equal(t, RedactedPlaceholder, redactResponse("ResetPassword", `{}`))
	})

	t.Run("token field is hidden on any action", func(t *testing.T) {
		assert.Equal(t, RedactedPlaceholder, redactResponse("GetStuff", `{"token":"xyz"}`))
	})

	t.Run("plain bodies pass through", func(t *testing.T) {
		body := `{"name":"Squat"}`
		assert.Equal(t, body, redactResponse("GetExercise", body))
	})

	t.Run("non-object bodies pass through", func(t *testing.T) {
		body := `[1,2,3]`
		assert.Equal(t, body, redactResponse("GetExercise", body))
	})
}
