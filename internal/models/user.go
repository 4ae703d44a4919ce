package models

import (
	"time"
)

type User struct {
	ID                     string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	Email                  string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Username               string     `json:"username" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash           string     `json:"-" gorm:"type:varchar(255);not null"`
	SecurityStamp          string     `json:"-" gorm:"type:varchar(36)"`
	PersonalNumber         *string    `json:"personal_number" gorm:"type:varchar(20)"`
	Firstname              *string    `json:"firstname" gorm:"type:varchar(255)"`
	Lastname               *string    `json:"lastname" gorm:"type:varchar(255)"`
	Birthdate              *time.Time `json:"birthdate"`
	CityID                 *int       `json:"city_id"`
	SettlementID           *int       `json:"settlement_id"`
	Address                *string    `json:"address" gorm:"type:varchar(500)"`
	PhoneNumber            *string    `json:"phone_number" gorm:"type:varchar(30)"`
	Active                 bool       `json:"active" gorm:"default:true"`
	PasswordExpires        time.Time  `json:"password_expires"`
	AllowNotifications     bool       `json:"allow_notifications" gorm:"default:true"`
	AllowAdminNotification bool       `json:"allow_admin_notification" gorm:"default:true"`
	EmailConfirmed         bool       `json:"email_confirmed" gorm:"default:true"`
	PhoneNumberConfirmed   bool       `json:"phone_number_confirmed" gorm:"default:true"`
	TwoFactorEnabled       bool       `json:"two_factor_enabled" gorm:"default:false"`
	LockoutEnabled         bool       `json:"lockout_enabled" gorm:"default:false"`
	AccessFailedCount      int        `json:"access_failed_count" gorm:"default:0"`
	LanguageID             *int       `json:"language_id"`
	InsertedDate           time.Time  `json:"inserted_date"`
	Roles                  []Role     `json:"roles,omitempty" gorm:"many2many:user_roles"`
	Language               *Language  `json:"language,omitempty" gorm:"foreignKey:LanguageID"`
}

type Role struct {
	ID          string  `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name        string  `json:"name" gorm:"type:varchar(128);uniqueIndex;not null"`
	NameSq      string  `json:"name_sq" gorm:"type:varchar(128);not null"`
	NameEn      string  `json:"name_en" gorm:"type:varchar(128);not null"`
	Description *string `json:"description" gorm:"type:varchar(4000)"`
}

type Language struct {
	ID     int     `json:"id" gorm:"primaryKey"`
	NameSq *string `json:"name_sq" gorm:"type:varchar(100)"`
	NameEn *string `json:"name_en" gorm:"type:varchar(100)"`
	Notes  *string `json:"notes" gorm:"type:varchar(500)"`
}
