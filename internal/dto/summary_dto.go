package dto

type SummarizeRequest struct {
	PriorSummary string `json:"prior_summary"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}
