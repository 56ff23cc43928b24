// Package source defines the candidate source adapters the recommendation
// pipeline fans out to. Every adapter normalizes provider rows into
// domain.CandidateBook and drops rows missing a title or author at its own
// boundary.
package source

import (
	"context"

	"github.com/nextreadapp/nextread-server/internal/domain"
)

// CandidateSource produces candidate books relevant to a taste profile.
//
// Implementations must be safe for concurrent use; the engine runs several
// sources at once. A failing source returns an error and the engine treats
// it as an empty contribution, it never aborts the run.
type CandidateSource interface {
	// Name identifies the source in logs and metrics.
	Name() string
	// Fetch returns candidates for the given profile.
	Fetch(ctx context.Context, profile domain.ReferenceProfile) ([]domain.CandidateBook, error)
}
