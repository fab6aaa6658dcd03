package dto

type ClearSessionRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
}

type ArchiveSessionRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
	UserId    string `json:"userId"`
	Reason    string `json:"reason"`
}

type ChatMessageDTO struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

type ArchivedSessionResponse struct {
	SessionId  string           `json:"session_id"`
	UserId     string           `json:"user_id"`
	Reason     string           `json:"reason,omitempty"`
	Messages   []ChatMessageDTO `json:"messages"`
	ArchivedAt int64            `json:"archived_at"`
}
