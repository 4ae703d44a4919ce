package services

import (
	"errors"
	"fmt"
	"time"

	"illyrian-api/internal/models"

	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrInvalidTime      = errors.New("invalid time, expected HH:MM")
)

type ScheduleService struct{}

func NewScheduleService() *ScheduleService {
	return &ScheduleService{}
}

func (s *ScheduleService) GetSchedules() ([]models.Schedule, error) {
	var schedules []models.Schedule
	if err := models.DB.Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (s *ScheduleService) GetSchedule(id int) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := models.DB.First(&schedule, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

// CreateSchedule accepts "HH:MM" wall-clock strings and anchors them on the
// current date.
func (s *ScheduleService) CreateSchedule(startTime, endTime, dayOfWeek string) (*models.Schedule, error) {
	start, err := parseClock(startTime)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(endTime)
	if err != nil {
		return nil, err
	}

	schedule := &models.Schedule{
		StartTime: start,
		EndTime:   end,
		DayOfWeek: dayOfWeek,
	}
	if err := models.DB.Create(schedule).Error; err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) UpdateSchedule(id int, startTime, endTime, dayOfWeek string) error {
	var schedule models.Schedule
	if err := models.DB.First(&schedule, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		return err
	}

	start, err := parseClock(startTime)
	if err != nil {
		return err
	}
	end, err := parseClock(endTime)
	if err != nil {
		return err
	}

	schedule.StartTime = start
	schedule.EndTime = end
	schedule.DayOfWeek = dayOfWeek

	return models.DB.Save(&schedule).Error
}

func (s *ScheduleService) DeleteSchedule(id int) error {
	var schedule models.Schedule
	if err := models.DB.First(&schedule, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		return err
	}
	return models.DB.Delete(&schedule).Error
}

func parseClock(value string) (time.Time, error) {
	clock, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local), nil
}
