package controllers_test

import (
	"soiladvisor/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPredictor struct {
	mock.Mock
}

func (m *MockPredictor) PredictCrop(s models.SoilSample) (string, error) {
	args := m.Called(s)
	return args.String(0), args.Error(1)
}

func (m *MockPredictor) PredictCropBatch(samples []models.SoilSample) ([]string, error) {
	args := m.Called(samples)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPredictor) PredictFertility(s models.SoilSample) (string, error) {
	args := m.Called(s)
	return args.String(0), args.Error(1)
}

func (m *MockPredictor) PredictFertilityBatch(samples []models.SoilSample) ([]string, error) {
	args := m.Called(samples)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
