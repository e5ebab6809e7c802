// Package vk provides a valkey client constructor with a startup ping
package vk

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
)

// Config configures valkey connectivity
type Config struct {
	Addr     string
	Password string
	DB       int

	// PingTimeout bounds the startup ping, default 3s
	PingTimeout time.Duration
}

var newClient = valkey.NewClient

// Open creates a client and pings it once
func Open(ctx context.Context, cfg Config) (valkey.Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("vk: empty addr")
	}
	c, err := newClient(valkey.ClientOption{
		InitAddress:      []string{cfg.Addr},
		Password:         cfg.Password,
		SelectDB:         cfg.DB,
		ConnWriteTimeout: 5 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("vk: new client: %w", err)
	}

	to := cfg.PingTimeout
	if to <= 0 {
		to = 3 * time.Second
	}
	pctx, cancel := context.WithTimeout(ctx, to)
	defer cancel()
	if err := Ping(pctx, c); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// Ping issues PING on c
func Ping(ctx context.Context, c valkey.Client) error {
	if err := c.Do(ctx, c.B().Ping().Build()).Error(); err != nil {
		return fmt.Errorf("vk: ping: %w", err)
	}
	return nil
}
