package response

// Resource represents one normalized cloud resource
type Resource struct {
	ID         string            `json:"id"`
	Name       string            `json:"name,omitempty"`
	Category   string            `json:"category"`
	Provider   string            `json:"provider"`
	Region     string            `json:"region,omitempty"`
	Size       string            `json:"size,omitempty"`
	State      string            `json:"state,omitempty"`
	CPUPercent *float64          `json:"cpu_percent,omitempty"`
	Engine     string            `json:"engine,omitempty"`
	StorageGB  float64           `json:"storage_gb,omitempty"`
	MultiAZ    *bool             `json:"multi_az,omitempty"`
	Encrypted  *bool             `json:"encrypted,omitempty"`
	Versioned  *bool             `json:"versioned,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// CategoryResult represents the outcome of one resource category
type CategoryResult struct {
	Resources []Resource `json:"resources"`
	Error     string     `json:"error,omitempty"`
}

// InventorySummary represents resource counts across categories
type InventorySummary struct {
	TotalVMs            int `json:"total_vms"`
	TotalDatabases      int `json:"total_databases"`
	TotalStorageBuckets int `json:"total_storage_buckets"`
}

// Inventory represents a client's full resource inventory
type Inventory struct {
	ClientID   string           `json:"client_id"`
	ClientName string           `json:"client_name,omitempty"`
	Provider   string           `json:"provider"`
	VMs        CategoryResult   `json:"vms"`
	Databases  CategoryResult   `json:"databases"`
	Storage    CategoryResult   `json:"storage"`
	Summary    InventorySummary `json:"summary"`
	Error      string           `json:"error,omitempty"`
	FetchedAt  string           `json:"fetched_at"`
}

// CostBreakdown represents an estimated cost split by category
type CostBreakdown struct {
	ClientID         string  `json:"client_id"`
	Provider         string  `json:"provider"`
	PeriodDays       int     `json:"period_days"`
	Compute          float64 `json:"compute"`
	Storage          float64 `json:"storage"`
	Network          float64 `json:"network"`
	Database         float64 `json:"database"`
	Total            float64 `json:"total"`
	ProjectedMonthly float64 `json:"projected_monthly"`
}

// Recommendation represents one optimization suggestion
type Recommendation struct {
	ID                      string   `json:"id"`
	Category                string   `json:"category"`
	Severity                string   `json:"severity"`
	Title                   string   `json:"title"`
	Description             string   `json:"description"`
	Action                  string   `json:"action"`
	ResourceIDs             []string `json:"resource_ids"`
	EstimatedSavingsMonthly float64  `json:"estimated_savings_monthly"`
}

// RecommendationSummary aggregates a recommendation list
type RecommendationSummary struct {
	Total                        int     `json:"total"`
	HighSeverity                 int     `json:"high_severity"`
	TotalPotentialSavingsMonthly float64 `json:"total_potential_savings_monthly"`
}

// RecommendationSet represents all recommendations for one client
type RecommendationSet struct {
	ClientID        string                `json:"client_id"`
	Provider        string                `json:"provider"`
	Recommendations []Recommendation      `json:"recommendations"`
	Summary         RecommendationSummary `json:"summary"`
}

// ConnectionTestResult represents the outcome of a credential check
type ConnectionTestResult struct {
	OK       bool   `json:"ok"`
	Provider string `json:"provider"`
	Details  string `json:"details,omitempty"`
}
