package generation

import (
	"math/rand"
	"sort"

	"github.com/dcschmid/music-trivia-generator/internal/domain"
)

// CoverageTracker counts how often each category has been used per
// difficulty tier during the current run. It is an explicit object rather
// than package state so that a run's coverage history has a clear owner
// and reset point. It is not safe for concurrent use; the pipeline
// processes albums sequentially.
type CoverageTracker struct {
	uses map[domain.Difficulty]map[domain.Category]int
}

// NewCoverageTracker returns an empty tracker.
func NewCoverageTracker() *CoverageTracker {
	t := &CoverageTracker{}
	t.Reset()
	return t
}

// Reset clears all coverage history, as happens at the start of a run.
func (t *CoverageTracker) Reset() {
	t.uses = make(map[domain.Difficulty]map[domain.Category]int, len(domain.Difficulties()))
	for _, d := range domain.Difficulties() {
		t.uses[d] = make(map[domain.Category]int)
	}
}

// Uses returns how often the category has been selected for the tier.
func (t *CoverageTracker) Uses(d domain.Difficulty, c domain.Category) int {
	return t.uses[d][c]
}

func (t *CoverageTracker) mark(d domain.Difficulty, c domain.Category) {
	t.uses[d][c]++
}

// CategorySelector picks question categories for one (album, difficulty)
// batch. Selection is randomized but honors coverage-before-repeat: no
// category is picked a second time for a tier before every catalog entry
// has been picked at least once for that tier.
type CategorySelector struct {
	catalog []domain.Category
	rng     *rand.Rand
}

// NewCategorySelector returns a selector over the full category catalog.
// The random source is injectable so tests can seed it.
func NewCategorySelector(rng *rand.Rand) *CategorySelector {
	return &CategorySelector{
		catalog: domain.Categories(),
		rng:     rng,
	}
}

// Select returns count categories for the tier and records them in the
// tracker. Least-used categories win; ties break randomly. When count
// exceeds the catalog size the selection wraps around and repeats are
// unavoidable.
func (s *CategorySelector) Select(
	d domain.Difficulty,
	count int,
	tracker *CoverageTracker,
) []domain.Category {
	shuffled := make([]domain.Category, len(s.catalog))
	copy(shuffled, s.catalog)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	// Stable sort on use count keeps the shuffled order among equals, so
	// ties resolve randomly while less-used categories always come first.
	sort.SliceStable(shuffled, func(i, j int) bool {
		return tracker.Uses(d, shuffled[i]) < tracker.Uses(d, shuffled[j])
	})

	selected := make([]domain.Category, 0, count)
	for i := 0; i < count; i++ {
		c := shuffled[i%len(shuffled)]
		selected = append(selected, c)
		tracker.mark(d, c)
	}

	return selected
}
