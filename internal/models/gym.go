package models

import (
	"time"
)

type MembershipType struct {
	ID             int     `json:"id" gorm:"primaryKey"`
	Name           string  `json:"name" gorm:"type:varchar(100);not null"`
	Description    *string `json:"description" gorm:"type:varchar(500)"`
	DurationInDays int     `json:"duration_in_days" gorm:"not null"`
	Price          float64 `json:"price" gorm:"type:decimal(10,2);not null"`
}

type Membership struct {
	ID               int             `json:"id" gorm:"primaryKey"`
	UserID           string          `json:"user_id" gorm:"type:varchar(36);not null;index"`
	MembershipTypeID int             `json:"membership_type_id" gorm:"not null"`
	StartDate        time.Time       `json:"start_date" gorm:"not null"`
	EndDate          time.Time       `json:"end_date" gorm:"not null"`
	IsActive         *bool           `json:"is_active"`
	User             *User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	MembershipType   *MembershipType `json:"membership_type,omitempty" gorm:"foreignKey:MembershipTypeID"`
	Payments         []Payment       `json:"payments,omitempty" gorm:"foreignKey:MembershipID"`
}

type Payment struct {
	ID            int         `json:"id" gorm:"primaryKey"`
	UserID        string      `json:"user_id" gorm:"type:varchar(36);not null;index"`
	MembershipID  int         `json:"membership_id" gorm:"not null;index"`
	Amount        float64     `json:"amount" gorm:"type:decimal(10,2);not null"`
	PaymentDate   time.Time   `json:"payment_date" gorm:"not null"`
	PaymentMethod *string     `json:"payment_method" gorm:"type:varchar(50)"`
	TransactionID *string     `json:"transaction_id" gorm:"type:varchar(100)"`
	Notes         *string     `json:"notes" gorm:"type:varchar(500)"`
	User          *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Membership    *Membership `json:"membership,omitempty" gorm:"foreignKey:MembershipID"`
}

type Exercise struct {
	ID              int     `json:"id" gorm:"primaryKey"`
	ExerciseName    string  `json:"exercise_name" gorm:"type:varchar(100);not null"`
	Description     *string `json:"description" gorm:"type:varchar(500)"`
	MuscleGroup     *string `json:"muscle_group" gorm:"type:varchar(50)"`
	DifficultyLevel *string `json:"difficulty_level" gorm:"type:varchar(20)"`
}

type Schedule struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	StartTime time.Time `json:"start_time" gorm:"not null"`
	EndTime   time.Time `json:"end_time" gorm:"not null"`
	DayOfWeek string    `json:"day_of_week" gorm:"type:varchar(10);not null"`
}

type UserSchedule struct {
	ID         int       `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"type:varchar(36);not null;index"`
	ScheduleID int       `json:"schedule_id" gorm:"not null;index"`
	User       *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Schedule   *Schedule `json:"schedule,omitempty" gorm:"foreignKey:ScheduleID"`
}

type Class struct {
	ID           int     `json:"id" gorm:"primaryKey"`
	ClassName    string  `json:"class_name" gorm:"type:varchar(100);not null"`
	Description  *string `json:"description" gorm:"type:varchar(500)"`
	Capacity     *int    `json:"capacity"`
	ScheduleTime *string `json:"schedule_time" gorm:"type:varchar(8)"` // "HH:MM"
	ScheduleDay  *string `json:"schedule_day" gorm:"type:varchar(10)"`
}

type UserClass struct {
	ID             int        `json:"id" gorm:"primaryKey"`
	UserID         string     `json:"user_id" gorm:"type:varchar(36);not null;index"`
	ClassID        int        `json:"class_id" gorm:"not null;index"`
	AttendanceDate *time.Time `json:"attendance_date"`
	User           *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Class          *Class     `json:"class,omitempty" gorm:"foreignKey:ClassID"`
}
