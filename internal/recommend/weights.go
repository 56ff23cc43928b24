package recommend

// PrestigeRule maps a source-label substring to a prestige point value.
// Rules are checked in order; the first match wins.
type PrestigeRule struct {
	Substring string
	Points    float64
}

// Weights holds every tunable scoring constant. The relative ordering of
// the signal groups matters more than the absolute values: prestige must be
// the largest single term, then genre match, keyword match, quality,
// recency, and finally the novelty penalty.
type Weights struct {
	// Prestige is the ordered source-label lookup.
	Prestige []PrestigeRule
	// PrestigeDefault applies when no rule matches.
	PrestigeDefault float64
	// PrestigeHigh and PrestigeMid gate the recognition fragments.
	PrestigeHigh float64
	PrestigeMid  float64

	// GenreMultiplier scales the rank-decaying genre weight
	// max(1, 5-rank).
	GenreMultiplier float64
	// GenreTopRanks is how many profile genres are considered.
	GenreTopRanks int

	// KeywordWeights are the decreasing per-match bonuses; matches beyond
	// the list earn nothing.
	KeywordWeights []float64
	// KeywordTopCount is how many profile keywords are considered.
	KeywordTopCount int

	// RatingHigh/RatingMid are the tiered rating thresholds.
	RatingHigh      float64
	RatingHighBonus float64
	RatingMid       float64
	RatingMidBonus  float64
	// CountTier1/CountTier2 are ratings-count thresholds with small flat
	// bonuses; both can apply.
	CountTier1      int
	CountTier1Bonus float64
	CountTier2      int
	CountTier2Bonus float64

	// RecencyBonuses index by year-distance from the present: [0] is the
	// current year. Beyond the list, no bonus.
	RecencyBonuses []float64

	// NoveltyPenalty is subtracted when the candidate's author is already
	// in the reader's history.
	NoveltyPenalty float64
}

// DefaultWeights returns the hand-tuned scoring constants.
func DefaultWeights() Weights {
	return Weights{
		Prestige: []PrestigeRule{
			{Substring: "pulitzer", Points: 10},
			{Substring: "booker", Points: 10},
			{Substring: "national book award", Points: 9},
			{Substring: "award", Points: 8},
			{Substring: "bestseller", Points: 6},
			{Substring: "critics", Points: 5},
			{Substring: "google books", Points: 2},
		},
		PrestigeDefault: 1,
		PrestigeHigh:    8,
		PrestigeMid:     5,

		GenreMultiplier: 1.5,
		GenreTopRanks:   5,

		KeywordWeights:  []float64{2, 1.5, 1, 0.5, 0.5},
		KeywordTopCount: 8,

		RatingHigh:      4.3,
		RatingHighBonus: 3,
		RatingMid:       4.0,
		RatingMidBonus:  2,
		CountTier1:      100,
		CountTier1Bonus: 0.5,
		CountTier2:      1000,
		CountTier2Bonus: 0.5,

		RecencyBonuses: []float64{2, 1, 0.5},

		NoveltyPenalty: 1.5,
	}
}
