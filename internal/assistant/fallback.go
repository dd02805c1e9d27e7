package assistant

import "github.com/jonathan/job-search-agent/internal/types"

// FallbackJobs returns the fixed listings served when a search cannot be completed,
// so the caller always has something to render.
func FallbackJobs() []types.Job {
	return []types.Job{
		{
			ID:         "1",
			Company:    "Salesforce",
			Title:      "Director of Product Management, AI Platform",
			Location:   "San Francisco, CA",
			URL:        "https://careers.salesforce.com/jobs",
			MatchScore: 85,
			Status:     types.StatusNew,
			WhyMatch:   "Strong AI/ML background matches their platform needs",
		},
		{
			ID:         "2",
			Company:    "Stripe",
			Title:      "Principal Product Manager, Developer Experience",
			Location:   "San Francisco, CA",
			URL:        "https://stripe.com/jobs",
			MatchScore: 80,
			Status:     types.StatusNew,
			WhyMatch:   "Internal tools experience aligns with developer platform",
		},
		{
			ID:         "3",
			Company:    "Anthropic",
			Title:      "Product Manager, Claude Enterprise",
			Location:   "San Francisco, CA",
			URL:        "https://anthropic.com/careers",
			MatchScore: 90,
			Status:     types.StatusNew,
			WhyMatch:   "Direct LLM product experience is a perfect match",
		},
		{
			ID:         "4",
			Company:    "Notion",
			Title:      "Senior Product Manager, AI Features",
			Location:   "San Francisco, CA",
			URL:        "https://notion.so/careers",
			MatchScore: 75,
			Status:     types.StatusNew,
			WhyMatch:   "AI integration experience relevant to their roadmap",
		},
		{
			ID:         "5",
			Company:    "Databricks",
			Title:      "Principal PM, ML Platform",
			Location:   "San Francisco, CA",
			URL:        "https://databricks.com/careers",
			MatchScore: 82,
			Status:     types.StatusNew,
			WhyMatch:   "ML platform background aligns with their core product",
		},
	}
}
