package dto

type CreateServiceRequestRequest struct {
	CustomerId       string           `json:"customerId" validate:"required"`
	CustomerName     string           `json:"customerName" validate:"required"`
	CustomerEmail    string           `json:"customerEmail" validate:"required,email"`
	ChatHistory      []ChatMessageDTO `json:"chatHistory"`
	EscalationReason string           `json:"escalationReason"`
	Priority         string           `json:"priority" validate:"omitempty,oneof=low medium high"`
	PdfExtractedText string           `json:"pdfExtractedText"`
	PdfFilename      string           `json:"pdfFilename"`
}

type CreateServiceRequestResponse struct {
	ServiceRequestId string `json:"serviceRequestId"`
}

type UpdateServiceRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new in_progress resolved closed"`
}
