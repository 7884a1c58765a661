package domain

// Category is a thematic angle used to diversify question prompts, for
// example chart success or lyrics. Categories are selected per
// (album, difficulty) batch at request time and never persisted.
type Category string

// The fixed category catalog.
const (
	CategoryChartSuccess     Category = "chart success and commercial milestones"
	CategoryLyrics           Category = "lyrics and their meaning"
	CategoryMusicalElements  Category = "musical elements and instrumentation"
	CategoryProduction       Category = "production and collaborations"
	CategoryBackgroundFacts  Category = "background and interesting facts"
	CategoryHistoricalImpact Category = "historical and cultural significance"
	CategoryInspiration      Category = "the artist's sources of inspiration"
	CategoryLivePerformances Category = "live performances and tours"
	CategoryReception        Category = "critical reception and reviews"
	CategoryVisuals          Category = "music videos and visual content"
)

// Categories returns the full catalog in its canonical order.
func Categories() []Category {
	return []Category{
		CategoryChartSuccess,
		CategoryLyrics,
		CategoryMusicalElements,
		CategoryProduction,
		CategoryBackgroundFacts,
		CategoryHistoricalImpact,
		CategoryInspiration,
		CategoryLivePerformances,
		CategoryReception,
		CategoryVisuals,
	}
}
