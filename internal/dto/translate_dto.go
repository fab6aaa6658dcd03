package dto

type TranslateMessageRequest struct {
	Message          string `json:"message" validate:"required"`
	SourceLang       string `json:"sourceLang"`
	TargetLang       string `json:"targetLang" validate:"required"`
	ServiceRequestId string `json:"serviceRequestId"`
}

type TranslateMessageResponse struct {
	TranslatedMessage string `json:"translatedMessage"`
	OriginalMessage   string `json:"originalMessage"`
	SourceLang        string `json:"sourceLang"`
	TargetLang        string `json:"targetLang"`
}

type LanguagesResponse struct {
	Languages map[string]string `json:"languages"`
}
