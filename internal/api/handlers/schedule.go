package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"illyrian-api/internal/models"
	"illyrian-api/internal/services"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: services.NewScheduleService(),
	}
}

type ScheduleDTO struct {
	ScheduleID         int       `json:"scheduleId"`
	StartTime          time.Time `json:"startTime"`
	EndTime            time.Time `json:"endTime"`
	DayOfWeek          string    `json:"dayOfWeek"`
	FormattedStartTime string    `json:"formattedStartTime"`
	FormattedEndTime   string    `json:"formattedEndTime"`
	Duration           string    `json:"duration"`
}

type CreateScheduleRequest struct {
	StartTime string `json:"startTime" binding:"required"` // "HH:MM"
	EndTime   string `json:"endTime" binding:"required"`   // "HH:MM"
	DayOfWeek string `json:"dayOfWeek" binding:"required"`
}

type UpdateScheduleRequest struct {
	ScheduleID int    `json:"scheduleId"`
	StartTime  string `json:"startTime" binding:"required"`
	EndTime    string `json:"endTime" binding:"required"`
	DayOfWeek  string `json:"dayOfWeek" binding:"required"`
}

func scheduleToDTO(s *models.Schedule) ScheduleDTO {
	duration := s.EndTime.Sub(s.StartTime)
	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60

	return ScheduleDTO{
		ScheduleID:         s.ID,
		StartTime:          s.StartTime,
		EndTime:            s.EndTime,
		DayOfWeek:          s.DayOfWeek,
		FormattedStartTime: s.StartTime.Format("15:04"),
		FormattedEndTime:   s.EndTime.Format("15:04"),
		Duration:           fmt.Sprintf("%dh %dm", hours, minutes),
	}
}

func (h *ScheduleHandler) GetSchedules(c *gin.Context) {
	schedules, err := h.scheduleService.GetSchedules()
	if err != nil {
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while fetching schedules", "error": err.Error()})
		return
	}

	dtos := make([]ScheduleDTO, 0, len(schedules))
	for i := range schedules {
		dtos = append(dtos, scheduleToDTO(&schedules[i]))
	}
	c.JSON(200, dtos)
}

func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid schedule ID"})
		return
	}

	schedule, err := h.scheduleService.GetSchedule(id)
	if err != nil {
		if errors.Is(err, services.ErrScheduleNotFound) {
			c.Status(404)
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while fetching schedule", "error": err.Error()})
		return
	}

	c.JSON(200, scheduleToDTO(schedule))
}

func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	schedule, err := h.scheduleService.CreateSchedule(req.StartTime, req.EndTime, req.DayOfWeek)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTime) {
			c.JSON(400, gin.H{"message": err.Error()})
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while creating schedule", "error": err.Error()})
		return
	}

	c.JSON(201, scheduleToDTO(schedule))
}

func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid schedule ID"})
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	if req.ScheduleID != id {
		c.Status(400)
		return
	}

	if err := h.scheduleService.UpdateSchedule(id, req.StartTime, req.EndTime, req.DayOfWeek); err != nil {
		if errors.Is(err, services.ErrScheduleNotFound) {
			c.Status(404)
			return
		}
		if errors.Is(err, services.ErrInvalidTime) {
			c.JSON(400, gin.H{"message": err.Error()})
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while updating schedule", "error": err.Error()})
		return
	}

	c.Status(204)
}

func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid schedule ID"})
		return
	}

	if err := h.scheduleService.DeleteSchedule(id); err != nil {
		if errors.Is(err, services.ErrScheduleNotFound) {
			c.Status(404)
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while deleting schedule", "error": err.Error()})
		return
	}

	c.Status(204)
}
