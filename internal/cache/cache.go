// Package cache holds the short-lived server-side store for prediction result
// payloads, keyed by the session's result token.
package cache

import (
	"context"
	"time"

	"soiladvisor/internal/models"
)

// ResultStore stores one ResultData per token with an explicit expiry. A new
// submission overwrites the token's previous payload.
type ResultStore interface {
	Put(ctx context.Context, token string, result *models.ResultData, ttl time.Duration) error
	Get(ctx context.Context, token string) (*models.ResultData, bool, error)
	Delete(ctx context.Context, token string) error
}
