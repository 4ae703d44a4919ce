package models

import (
	"time"
)

// AuditLog records one API call. The row is inserted before the handler runs
// and updated in place with the response or exception once it finishes.
type AuditLog struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       *string   `json:"user_id" gorm:"type:varchar(36);index"` // null for unauthenticated calls
	IP           string    `json:"ip" gorm:"type:varchar(45)"`
	URL          string    `json:"url" gorm:"type:varchar(500)"`
	HTTPMethod   string    `json:"http_method" gorm:"type:varchar(10)"`
	Controller   string    `json:"controller" gorm:"type:varchar(100)"`
	Action       string    `json:"action" gorm:"type:varchar(100)"`
	Error        bool      `json:"error"`
	FormContent  *string   `json:"form_content" gorm:"type:text"`
	Response     *string   `json:"response" gorm:"type:text"`
	Exception    *string   `json:"exception" gorm:"type:text"`
	InsertedDate time.Time `json:"inserted_date" gorm:"index"`
}
