// Package publisher fans recognized transcripts and their translations out
// to NATS subscribers.
package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/hekt/voice-translation/internal/config"
	mynats "github.com/hekt/voice-translation/internal/interfaces/nats"
)

type Kind string

const (
	KindTranscript  Kind = "transcript"
	KindTranslation Kind = "translation"
)

type Event struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"session_id"`
	Kind         Kind      `json:"kind"`
	Text         string    `json:"text"`
	LanguageCode string    `json:"language_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Publisher struct {
	conn    mynats.Conn
	subject string
	log     *slog.Logger
	clock   func() time.Time
}

// Connect dials the configured NATS servers.
func Connect(cfg config.PublisherConfig, log *slog.Logger) (*Publisher, error) {
	if len(cfg.Servers) == 0 {
		return nil, errors.New("no NATS servers configured")
	}
	if cfg.Subject == "" {
		return nil, errors.New("subject must be specified")
	}

	options := []nats.Option{
		nats.Name("voice-translation"),
		nats.Timeout(time.Duration(cfg.ConnectTimeout) * time.Millisecond),
	}
	if cfg.Username != "" || cfg.Password != "" {
		options = append(options, nats.UserInfo(cfg.Username, cfg.Password))
	}
	if cfg.Token != "" {
		options = append(options, nats.Token(cfg.Token))
	}

	url := strings.Join(cfg.Servers, ",")
	conn, err := nats.Connect(url, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	log.Info("connected to NATS", slog.String("servers", url))

	return New(conn, cfg.Subject, log)
}

func New(conn mynats.Conn, subject string, log *slog.Logger) (*Publisher, error) {
	if conn == nil {
		return nil, errors.New("conn must be specified")
	}
	if subject == "" {
		return nil, errors.New("subject must be specified")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Publisher{
		conn:    conn,
		subject: subject,
		log:     log,
		clock:   time.Now,
	}, nil
}

// Subject returns the subject events of kind are published to.
func (p *Publisher) Subject(kind Kind) string {
	return p.subject + "." + string(kind)
}

// Publish sends evt, assigning an ID and timestamp when they are unset.
func (p *Publisher) Publish(ctx context.Context, evt Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if evt.Kind == "" {
		return errors.New("event kind must be specified")
	}
	if evt.ID == "" {
		evt.ID = uuid.NewString()
	}
	if evt.CreatedAt.IsZero() {
		evt.CreatedAt = p.clock().UTC()
	}

	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	if err := p.conn.Publish(p.Subject(evt.Kind), data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.log.Debug("event published", slog.String("kind", string(evt.Kind)), slog.String("id", evt.ID))

	return nil
}

// Close flushes pending messages and closes the connection.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.log.Info("closing NATS connection")
	if err := p.conn.Flush(); err != nil {
		p.log.Warn("failed to flush NATS connection", slog.String("error", err.Error()))
	}
	p.conn.Close()
}
