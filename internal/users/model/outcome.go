package model

// BatchOutcome is the per-record result of ingesting one candidate. Exactly
// one outcome is produced per input record, in input order. Ephemeral: it is
// returned to the caller and not persisted.
type BatchOutcome struct {
	Status      string   `json:"status"`
	User        *User    `json:"user,omitempty"`
	Reasons     []string `json:"reasons,omitempty"`
	DuplicateOf string   `json:"duplicate_of,omitempty"`
}

// BatchResult wraps the outcome sequence with summary counts.
type BatchResult struct {
	CreatedCount   int            `json:"created_count"`
	RejectedCount  int            `json:"rejected_count"`
	DuplicateCount int            `json:"duplicate_count"`
	Outcomes       []BatchOutcome `json:"outcomes"`
}

func SummarizeOutcomes(outcomes []BatchOutcome) *BatchResult {
	result := &BatchResult{Outcomes: outcomes}
	for _, o := range outcomes {
		switch o.Status {
		case OutcomeCreated:
			result.CreatedCount++
		case OutcomeRejected:
			result.RejectedCount++
		case OutcomeDuplicate:
			result.DuplicateCount++
		}
	}
	return result
}
