// Package cache stores generated summaries keyed by (job description, resume).
package cache

import (
	"context"
	"errors"

	"github.com/spigell/resume-matcher/internal/utils"
)

// ErrNotFound is returned by Get when no summary is stored for a pair.
var ErrNotFound = errors.New("summary not cached")

// Store is a read-through summary cache. Entries never expire; Clear drops
// all of them.
type Store interface {
	Get(ctx context.Context, jdID, resume string) (string, error)
	Put(ctx context.Context, jdID, resume, summary string) error
	Clear(ctx context.Context) error
}

// Key returns the deterministic entry name of a pair.
func Key(jdID, resume string) string {
	return utils.SanitizeName(jdID + "_" + resume)
}
