package nats

import (
	"github.com/nats-io/nats.go"
)

// Conn is the subset of *nats.Conn used to publish events.
//
//go:generate moq -rm -out conn_mock.go . Conn
type Conn interface {
	Publish(subj string, data []byte) error
	Flush() error
	Close()
}

var _ Conn = (*nats.Conn)(nil)
