package recommend

import (
	"fmt"
	"strings"
	"time"

	"github.com/nextreadapp/nextread-server/internal/domain"
	"github.com/nextreadapp/nextread-server/internal/normalize"
)

// Scorer assigns additive relevance scores and justification fragments to
// candidates. It is stateless and safe for concurrent use.
type Scorer struct {
	weights Weights
	now     func() time.Time
}

// NewScorer creates a scorer. now is injectable for tests; nil means
// time.Now.
func NewScorer(weights Weights, now func() time.Time) *Scorer {
	if now == nil {
		now = time.Now
	}
	return &Scorer{weights: weights, now: now}
}

// Score scores every candidate against the profile. Missing optional
// fields (rating, date) are neutral, they never exclude a candidate.
// Fragments are ordered most significant first; the assembler renders at
// most two.
func (s *Scorer) Score(candidates []domain.CandidateBook, profile domain.ReferenceProfile) []domain.ScoredCandidate {
	scored := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, s.scoreOne(c, profile))
	}
	return scored
}

func (s *Scorer) scoreOne(c domain.CandidateBook, profile domain.ReferenceProfile) domain.ScoredCandidate {
	var score float64
	var fragments []string
	text := c.SearchText()

	// 1. Source prestige, the largest single term.
	prestige := s.prestigePoints(c.Source)
	score += prestige
	switch {
	case prestige >= s.weights.PrestigeHigh:
		fragments = append(fragments, "has earned major literary recognition")
	case prestige >= s.weights.PrestigeMid:
		fragments = append(fragments, "is critically acclaimed")
	}

	// 2. Genre match, rank-decaying weight.
	genreFragments := 0
	for rank, tag := range profile.TopGenres(s.weights.GenreTopRanks) {
		if tag == domain.GeneralGenre || !strings.Contains(text, genreTerm(tag)) {
			continue
		}
		weight := float64(5 - rank)
		if weight < 1 {
			weight = 1
		}
		score += weight * s.weights.GenreMultiplier
		if genreFragments < 2 {
			fragments = append(fragments, fmt.Sprintf("matches your interest in %s", genreDisplay(tag)))
			genreFragments++
		}
	}

	// 3. Keyword match, small decreasing bonuses.
	keywordHits := 0
	for _, word := range profile.TopKeywords(s.weights.KeywordTopCount) {
		if !strings.Contains(text, word) {
			continue
		}
		if keywordHits < len(s.weights.KeywordWeights) {
			score += s.weights.KeywordWeights[keywordHits]
		}
		keywordHits++
	}
	if keywordHits > 0 {
		fragments = append(fragments, "explores themes you've highlighted")
	}

	// 4. Quality signals.
	switch {
	case c.AverageRating >= s.weights.RatingHigh:
		score += s.weights.RatingHighBonus
		fragments = append(fragments, "holds an exceptional reader rating")
	case c.AverageRating >= s.weights.RatingMid:
		score += s.weights.RatingMidBonus
	}
	if c.RatingsCount >= s.weights.CountTier1 {
		score += s.weights.CountTier1Bonus
	}
	if c.RatingsCount >= s.weights.CountTier2 {
		score += s.weights.CountTier2Bonus
	}

	// 5. Recency, decaying by year distance.
	if year, ok := normalize.Year(c.PublishedDate); ok {
		distance := s.now().Year() - year
		if distance >= 0 && distance < len(s.weights.RecencyBonuses) {
			score += s.weights.RecencyBonuses[distance]
			if distance == 0 {
				fragments = append(fragments, "was published recently")
			}
		}
	}

	// 6. Novelty penalty for authors the reader already knows.
	if profile.HasAuthor(c.Author) {
		score -= s.weights.NoveltyPenalty
	}

	return domain.ScoredCandidate{
		CandidateBook: c,
		Score:         score,
		Fragments:     fragments,
	}
}

func (s *Scorer) prestigePoints(source string) float64 {
	label := strings.ToLower(source)
	for _, rule := range s.weights.Prestige {
		if strings.Contains(label, rule.Substring) {
			return rule.Points
		}
	}
	return s.weights.PrestigeDefault
}

// genreTerm is the tag as it appears in candidate text.
func genreTerm(tag string) string {
	return strings.ReplaceAll(tag, "_", " ")
}

// genreDisplay renders a tag for justification text.
func genreDisplay(tag string) string {
	return strings.ReplaceAll(tag, "_", " ")
}
