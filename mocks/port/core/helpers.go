package core

import (
	"time"

	mock "github.com/stretchr/testify/mock"
)

// Fixed returns a time provider whose Now always returns t
func Fixed(tb interface {
	mock.TestingT
	Cleanup(func())
}, t time.Time) *MockTimeProvider {
	m := NewMockTimeProvider(tb)
	m.EXPECT().Now().Return(t).Maybe()
	return m
}

// Quiet returns a logger that accepts any call at any level
func Quiet(tb interface {
	mock.TestingT
	Cleanup(func())
}) *MockLogger {
	m := NewMockLogger(tb)
	m.EXPECT().With(mock.Anything).Return(m).Maybe()
	m.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return m
}
