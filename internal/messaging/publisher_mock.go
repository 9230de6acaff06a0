// internal/messaging/publisher_mock.go
package messaging

import "github.com/stretchr/testify/mock"

// MockPublisher adalah mock untuk interface Publisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}
