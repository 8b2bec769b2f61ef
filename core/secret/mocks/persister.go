package mocks

import (
	"github.com/stretchr/testify/mock"
)

// Persister is a mock implementation of secret.Persister
type Persister struct {
	mock.Mock
}

func (m *Persister) Load() (string, bool, error) {
	args := m.Called()
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *Persister) Save(value string) error {
	args := m.Called(value)
	return args.Error(0)
}
