package recommend

import "github.com/nextreadapp/nextread-server/internal/domain"

// Dedupe removes duplicate candidates by their title+author identity key,
// keeping the first-seen instance. Stable and idempotent; sources are
// queried in a fixed priority order, so first-seen means highest-priority
// source wins.
func Dedupe(candidates []domain.CandidateBook) []domain.CandidateBook {
	seen := make(map[string]bool, len(candidates))
	out := make([]domain.CandidateBook, 0, len(candidates))
	for _, c := range candidates {
		key := c.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}
