// Package mocks provides mock implementations of the luhn use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/luhn/internal/luhn/domain"
	"github.com/allisson/luhn/internal/luhn/usecase"
)

// MockLuhnUseCase is a mock implementation of usecase.LuhnUseCase for testing.
type MockLuhnUseCase struct {
	mock.Mock
}

// Validate mocks the Validate method of LuhnUseCase.
func (m *MockLuhnUseCase) Validate(ctx context.Context, number string) domain.ValidationResult {
	args := m.Called(ctx, number)
	return args.Get(0).(domain.ValidationResult)
}

// CheckDigit mocks the CheckDigit method of LuhnUseCase.
func (m *MockLuhnUseCase) CheckDigit(ctx context.Context, partial string) domain.CheckResult {
	args := m.Called(ctx, partial)
	return args.Get(0).(domain.CheckResult)
}

// Classify mocks the Classify method of LuhnUseCase.
func (m *MockLuhnUseCase) Classify(ctx context.Context, number string) (domain.Issuer, bool) {
	args := m.Called(ctx, number)
	return args.Get(0).(domain.Issuer), args.Bool(1)
}

// CountRange mocks the CountRange method of LuhnUseCase.
func (m *MockLuhnUseCase) CountRange(ctx context.Context, start, end string) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}

// Generate mocks the Generate method of LuhnUseCase.
func (m *MockLuhnUseCase) Generate(ctx context.Context, input *usecase.GenerateInput) ([]string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ usecase.LuhnUseCase = (*MockLuhnUseCase)(nil)
