package handlers

import (
	"errors"
	"strconv"

	"illyrian-api/internal/models"
	"illyrian-api/internal/services"

	"github.com/gin-gonic/gin"
)

type ExerciseHandler struct {
	exerciseService *services.ExerciseService
}

func NewExerciseHandler() *ExerciseHandler {
	return &ExerciseHandler{
		exerciseService: services.NewExerciseService(),
	}
}

type ExerciseDTO struct {
	ExerciseID      int     `json:"exerciseId"`
	ExerciseName    string  `json:"exerciseName"`
	Description     *string `json:"description"`
	MuscleGroup     *string `json:"muscleGroup"`
	DifficultyLevel *string `json:"difficultyLevel"`
}

func exerciseToDTO(e *models.Exercise) ExerciseDTO {
	return ExerciseDTO{
		ExerciseID:      e.ID,
		ExerciseName:    e.ExerciseName,
		Description:     e.Description,
		MuscleGroup:     e.MuscleGroup,
		DifficultyLevel: e.DifficultyLevel,
	}
}

func (h *ExerciseHandler) GetExercises(c *gin.Context) {
	exercises, err := h.exerciseService.GetExercises()
	if err != nil {
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while fetching exercises", "error": err.Error()})
		return
	}

	dtos := make([]ExerciseDTO, 0, len(exercises))
	for i := range exercises {
		dtos = append(dtos, exerciseToDTO(&exercises[i]))
	}
	c.JSON(200, dtos)
}

func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid exercise ID"})
		return
	}

	exercise, err := h.exerciseService.GetExercise(id)
	if err != nil {
		if errors.Is(err, services.ErrExerciseNotFound) {
			c.Status(404)
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while fetching exercise", "error": err.Error()})
		return
	}

	c.JSON(200, exerciseToDTO(exercise))
}

func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req ExerciseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	exercise := &models.Exercise{
		ExerciseName:    req.ExerciseName,
		Description:     req.Description,
		MuscleGroup:     req.MuscleGroup,
		DifficultyLevel: req.DifficultyLevel,
	}

	if err := h.exerciseService.CreateExercise(exercise); err != nil {
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while creating exercise", "error": err.Error()})
		return
	}

	c.JSON(201, exerciseToDTO(exercise))
}

func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid exercise ID"})
		return
	}

	var req ExerciseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	if req.ExerciseID != id {
		c.Status(400)
		return
	}

	update := &models.Exercise{
		ExerciseName:    req.ExerciseName,
		Description:     req.Description,
		MuscleGroup:     req.MuscleGroup,
		DifficultyLevel: req.DifficultyLevel,
	}

	if err := h.exerciseService.UpdateExercise(id, update); err != nil {
		if errors.Is(err, services.ErrExerciseNotFound) {
			c.Status(404)
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while updating exercise", "error": err.Error()})
		return
	}

	c.Status(204)
}

func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid exercise ID"})
		return
	}

	if err := h.exerciseService.DeleteExercise(id); err != nil {
		if errors.Is(err, services.ErrExerciseNotFound) {
			c.Status(404)
			return
		}
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while deleting exercise", "error": err.Error()})
		return
	}

	c.Status(204)
}
