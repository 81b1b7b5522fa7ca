// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

// Hybrid blends the content and collaborative lists. Each sub-list is
// computed with CandidateMultiplier times the limit and is already
// truncated before the blend, so a movie outside either sub-list cannot
// be promoted into the result.
func (s *Snapshot) Hybrid(limit int) ([]Recommendation, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	w := s.config.Hybrid
	pool := limit * w.CandidateMultiplier

	contentRecs, err := s.ContentBased(pool)
	if err != nil {
		return nil, err
	}
	collabRecs, err := s.Collaborative(pool)
	if err != nil {
		return nil, err
	}

	b := newBlend(len(contentRecs) + len(collabRecs))
	for _, rec := range contentRecs {
		b.add(rec, w.Content, contentMatchPrefix)
	}
	for _, rec := range collabRecs {
		b.add(rec, w.Collaborative, userPatternPrefix)
	}

	return rankAndTruncate(b.items, limit), nil
}

// blend merges weighted recommendations by movie id in first-seen order.
type blend struct {
	items []Recommendation
	index map[string]int
}

func newBlend(capacity int) *blend {
	return &blend{
		items: make([]Recommendation, 0, capacity),
		index: make(map[string]int, capacity),
	}
}

// add folds rec into the blend. A movie seen for the first time is inserted
// with its weighted score and its reason prefixed; a known movie gains the
// weighted score and the unprefixed reason as a new fragment.
func (b *blend) add(rec Recommendation, weight float64, prefix string) {
	if idx, ok := b.index[rec.Movie.ID]; ok {
		existing := &b.items[idx]
		existing.Score += rec.Score * weight
		existing.Reasons = append(existing.Reasons, rec.Reasons...)
		return
	}

	reasons := make([]string, len(rec.Reasons))
	copy(reasons, rec.Reasons)
	if len(reasons) > 0 {
		reasons[0] = prefix + reasons[0]
	}

	b.index[rec.Movie.ID] = len(b.items)
	b.items = append(b.items, Recommendation{
		Movie:   rec.Movie,
		Score:   rec.Score * weight,
		Reasons: reasons,
	})
}
