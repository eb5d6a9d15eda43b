package mocks

import (
	"context"

	"team-inventory/core/events"

	"github.com/stretchr/testify/mock"
)

// Publisher is a mock implementation of events.Publisher
type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, event events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *Publisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
