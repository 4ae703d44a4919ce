package services

import (
	"errors"

	"illyrian-api/internal/models"

	"gorm.io/gorm"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type ExerciseService struct{}

func NewExerciseService() *ExerciseService {
	return &ExerciseService{}
}

func (s *ExerciseService) GetExercises() ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := models.DB.Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (s *ExerciseService) GetExercise(id int) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := models.DB.First(&exercise, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

func (s *ExerciseService) CreateExercise(exercise *models.Exercise) error {
	return models.DB.Create(exercise).Error
}

func (s *ExerciseService) UpdateExercise(id int, update *models.Exercise) error {
	var exercise models.Exercise
	if err := models.DB.First(&exercise, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}

	exercise.ExerciseName = update.ExerciseName
	exercise.Description = update.Description
	exercise.MuscleGroup = update.MuscleGroup
	exercise.DifficultyLevel = update.DifficultyLevel

	return models.DB.Save(&exercise).Error
}

func (s *ExerciseService) DeleteExercise(id int) error {
	var exercise models.Exercise
	if err := models.DB.First(&exercise, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return models.DB.Delete(&exercise).Error
}
