package dto

type ChatRequest struct {
	Query     string `json:"query"`
	UserId    string `json:"userId"`
	SessionId string `json:"sessionId"`
	Language  string `json:"language"`
}

type ChatResponse struct {
	Response        string  `json:"response"`
	Escalated       bool    `json:"escalated"`
	ConfidenceLevel string  `json:"confidenceLevel"`
	ConfidenceScore float64 `json:"confidenceScore"`
	ProcessingTime  float64 `json:"processing_time"`
	LlmMode         bool    `json:"llm_mode"`
	OutOfScope      bool    `json:"out_of_scope"`
	RagResults      int     `json:"ragResults"`
}
