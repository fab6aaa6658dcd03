package dto

type SummaryMessageDTO struct {
	Content   string `json:"content"`
	IsUser    bool   `json:"isUser"`
	Timestamp int64  `json:"timestamp"`
}

type CustomerInfoDTO struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type GenerateSummaryRequest struct {
	RequestId        string              `json:"requestId" validate:"required"`
	ChatHistory      []SummaryMessageDTO `json:"chatHistory" validate:"required"`
	PdfContent       string              `json:"pdfContent"`
	PdfFilename      string              `json:"pdfFilename"`
	CustomerInfo     CustomerInfoDTO     `json:"customerInfo"`
	EscalationReason string              `json:"escalationReason"`
	Priority         string              `json:"priority"`
}

type GenerateSummaryResponse struct {
	Summary           string   `json:"summary"`
	DetectedLanguages []string `json:"detectedLanguages"`
	MessageCount      int      `json:"messageCount"`
	HasPdfContent     bool     `json:"hasPdfContent"`
	GeneratedAt       int64    `json:"generatedAt"`
}
