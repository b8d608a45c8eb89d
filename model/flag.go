package model

type Flags struct {
	// ClientsFile is the path of the client registry JSON file.
	ClientsFile string

	// ClientID selects the client to aggregate over.
	ClientID string

	// Operation selectors; inventory is the default workflow.
	Cost      bool
	Recommend bool
	Test      bool

	// PeriodDays is the assumed usage duration for cost estimation.
	PeriodDays int
}
