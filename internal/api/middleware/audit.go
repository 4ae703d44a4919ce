package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"runtime/debug"
	"strings"

	"illyrian-api/internal/models"
	"illyrian-api/internal/services"

	"github.com/gin-gonic/gin"
)

// RedactedPlaceholder replaces request and response payloads that must never
// reach the audit table verbatim.
const RedactedPlaceholder = "[sensitive data hidden]"

// sensitiveActions are matched by logical action name, lowercased. Their
// request and response bodies are never persisted.
var sensitiveActions = map[string]bool{
	"login":         true,
	"register":      true,
	"registerrole":  true,
	"resetpassword": true,
}

// AuditMiddleware records every API call: one row inserted before the handler
// runs, updated in place with the response or exception afterwards. A fault
// anywhere in the middleware never prevents the handler from running or
// changes its outcome.
func AuditMiddleware(audits *services.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		record := &models.AuditLog{}

		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("audit: pre-phase failed: %v", r)
				}
			}()
			buildRecord(c, record)
			if err := audits.Begin(record); err != nil {
				log.Printf("audit: insert failed: %v", err)
			}
		}()

		capture := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = capture

		defer func() {
			panicked := recover()
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.Printf("audit: post-phase failed: %v", r)
					}
				}()
				attachResult(c, record, capture, panicked)
				if err := audits.Finish(record); err != nil {
					log.Printf("audit: update failed: %v", err)
				}
			}()
			if panicked != nil {
				// The recovery middleware still owns the error response.
				panic(panicked)
			}
		}()

		c.Next()
	}
}

// buildRecord fills the pre-phase fields. A missing identity claim leaves
// UserID null; that is the normal state for unauthenticated calls.
func buildRecord(c *gin.Context, record *models.AuditLog) {
	controller, action := controllerAction(c.HandlerName())

	record.IP = c.ClientIP()
	record.URL = c.Request.URL.RequestURI()
	record.HTTPMethod = c.Request.Method
	record.Controller = controller
	record.Action = action
	record.Error = false

	if userID, ok := c.Get("user_id"); ok {
		if id, ok := userID.(string); ok && id != "" {
			record.UserID = &id
		}
	}

	if sensitiveActions[strings.ToLower(action)] {
		placeholder := RedactedPlaceholder
		record.FormContent = &placeholder
		return
	}

	payload := serializeRequestBody(c)
	if payload != "" {
		record.FormContent = &payload
	}
}

// serializeRequestBody reads and restores the request body. Failures degrade
// to an error-description string, never to an aborted call.
func serializeRequestBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return fmt.Sprintf("failed to read request payload: %v", err)
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))

	if len(raw) == 0 {
		return ""
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return fmt.Sprintf("failed to serialize request payload: %v", err)
	}
	return compact.String()
}

// attachResult fills the post-phase fields on the same logical record.
func attachResult(c *gin.Context, record *models.AuditLog, capture *bodyCaptureWriter, panicked any) {
	// The identity claims may only have been resolved after the pre-phase,
	// once the auth middleware ran.
	if record.UserID == nil {
		if userID, ok := c.Get("user_id"); ok {
			if id, ok := userID.(string); ok && id != "" {
				record.UserID = &id
			}
		}
	}

	if panicked != nil {
		record.Error = true
		detail := fmt.Sprintf("panic: %v\n%s", panicked, debug.Stack())
		record.Exception = &detail
	} else if len(c.Errors) > 0 {
		record.Error = true
		detail := c.Errors.String()
		record.Exception = &detail
	}

	if body := capture.body.String(); body != "" {
		response := redactResponse(record.Action, body)
		record.Response = &response
	}
}

// redactResponse hides sensitive-action responses and any body that
// structurally carries a bearer token.
func redactResponse(action, body string) string {
	if sensitiveActions[strings.ToLower(action)] {
		return RedactedPlaceholder
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err == nil {
		if _, ok := fields["token"]; ok {
			return RedactedPlaceholder
		}
	}
	return body
}

// controllerAction derives the logical controller/action pair from a gin
// handler name such as
// "illyrian-api/internal/api/handlers.(*AuthHandler).Login-fm".
func controllerAction(handlerName string) (string, string) {
	parts := strings.Split(handlerName, ".")
	if len(parts) == 0 {
		return "", ""
	}

	action := strings.TrimSuffix(parts[len(parts)-1], "-fm")

	controller := ""
	if len(parts) >= 2 {
		controller = strings.TrimSuffix(strings.TrimPrefix(parts[len(parts)-2], "(*"), ")")
		controller = strings.TrimSuffix(controller, "Handler")
	}

	return controller, action
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
