package recommend

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nextreadapp/nextread-server/internal/domain"
	"github.com/nextreadapp/nextread-server/internal/id"
	"github.com/nextreadapp/nextread-server/internal/normalize"
)

// maxReasonFragments is how many justification fragments are rendered into
// the reason sentence.
const maxReasonFragments = 2

// genericReason covers candidates that scored without producing any
// fragment.
const genericReason = "This book is a solid match for your reading profile."

// Assembler turns scored candidates into the final ranked recommendation
// list.
type Assembler struct {
	cutoff       float64
	defaultLimit int
	now          func() time.Time
}

// NewAssembler creates an assembler. now is injectable for tests; nil
// means time.Now.
func NewAssembler(cutoff float64, defaultLimit int, now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{cutoff: cutoff, defaultLimit: defaultLimit, now: now}
}

// Assemble filters below-cutoff candidates, sorts descending by score with
// a more-recent-publication tie-break, truncates to limit and renders the
// display fields. limit <= 0 means the default.
func (a *Assembler) Assemble(scored []domain.ScoredCandidate, limit int) []domain.Recommendation {
	if limit <= 0 {
		limit = a.defaultLimit
	}

	eligible := make([]domain.ScoredCandidate, 0, len(scored))
	for _, sc := range scored {
		if sc.Score >= a.cutoff {
			eligible = append(eligible, sc)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].Score != eligible[j].Score {
			return eligible[i].Score > eligible[j].Score
		}
		return normalize.SortKey(eligible[i].PublishedDate).After(normalize.SortKey(eligible[j].PublishedDate))
	})

	if len(eligible) > limit {
		eligible = eligible[:limit]
	}

	recs := make([]domain.Recommendation, 0, len(eligible))
	for _, sc := range eligible {
		recs = append(recs, a.render(sc))
	}
	return recs
}

func (a *Assembler) render(sc domain.ScoredCandidate) domain.Recommendation {
	return domain.Recommendation{
		ID:              id.MustGenerate("rec"),
		Title:           sc.Title,
		Author:          sc.Author,
		Description:     sc.Description,
		Source:          sc.Source,
		Score:           sc.Score,
		Rating:          sc.AverageRating,
		RatingsCount:    sc.RatingsCount,
		Categories:      sc.Categories,
		Reason:          renderReason(sc.Fragments),
		PublicationDate: a.displayDate(sc.PublishedDate),
		ThumbnailURL:    sc.ThumbnailURL,
		AmazonURL:       AmazonSearchURL(sc.Title, sc.Author),
		GoodreadsURL:    GoodreadsSearchURL(sc.Title, sc.Author),
	}
}

// renderReason joins the top fragments into one sentence.
func renderReason(fragments []string) string {
	if len(fragments) == 0 {
		return genericReason
	}
	if len(fragments) > maxReasonFragments {
		fragments = fragments[:maxReasonFragments]
	}
	return "This book " + strings.Join(fragments, " and ") + "."
}

// displayDate renders "Month Year"; dates that cannot be parsed at all fall
// back to the current year rather than failing.
func (a *Assembler) displayDate(raw string) string {
	if _, ok := normalize.ParseDate(raw); !ok {
		return strconv.Itoa(a.now().Year())
	}
	return normalize.DisplayDate(raw)
}
