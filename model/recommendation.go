package model

// Severity is the coarse ranking assigned to a recommendation by fixed
// rule thresholds, never user-set.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// RecommendationCategory groups related recommendations.
type RecommendationCategory string

const (
	RecCategoryCost        RecommendationCategory = "cost"
	RecCategorySecurity    RecommendationCategory = "security"
	RecCategoryReliability RecommendationCategory = "reliability"
	RecCategoryOperational RecommendationCategory = "operational"
)

// Recommendation is one optimization suggestion derived from the inventory.
type Recommendation struct {
	ID          string
	Category    RecommendationCategory
	Severity    Severity
	Title       string
	Description string
	Action      string

	// ResourceIDs references the originating resources.
	ResourceIDs []string

	// EstimatedSavingsMonthly is always >= 0; zero for non-cost rules.
	EstimatedSavingsMonthly float64
}

// RecommendationSummary aggregates a recommendation list. It is always
// recomputed from the list, never stored independently.
type RecommendationSummary struct {
	Total                        int
	HighSeverity                 int
	TotalPotentialSavingsMonthly float64
}

// RecommendationSet holds all recommendations for one client.
type RecommendationSet struct {
	ClientID        string
	Provider        Provider
	Recommendations []Recommendation
	Summary         RecommendationSummary
}

// Summarize recomputes the summary fields from the recommendation list.
func (s *RecommendationSet) Summarize() {
	summary := RecommendationSummary{Total: len(s.Recommendations)}
	for _, r := range s.Recommendations {
		if r.Severity == SeverityHigh {
			summary.HighSeverity++
		}
		summary.TotalPotentialSavingsMonthly += r.EstimatedSavingsMonthly
	}
	s.Summary = summary
}
