package service

import (
	"context"

	"securebank-assist-be/internal/dto"
	"securebank-assist-be/internal/pkg/logger"
	"securebank-assist-be/pkg/lang"
)

type ITranslationService interface {
	TranslateMessage(ctx context.Context, req *dto.TranslateMessageRequest) (*dto.TranslateMessageResponse, error)
	Languages() *dto.LanguagesResponse
}

type translationService struct {
	translator *lang.Translator
	logger     logger.ILogger
}

func NewTranslationService(translator *lang.Translator, log logger.ILogger) ITranslationService {
	return &translationService{
		translator: translator,
		logger:     log,
	}
}

func (s *translationService) TranslateMessage(ctx context.Context, req *dto.TranslateMessageRequest) (*dto.TranslateMessageResponse, error) {
	src := lang.Language(req.SourceLang)
	if req.SourceLang == "" || req.SourceLang == "auto" {
		src = lang.Detect(req.Message)
	}
	dst := lang.Language(req.TargetLang)

	translated := s.translator.Translate(ctx, req.Message, src, dst)

	return &dto.TranslateMessageResponse{
		TranslatedMessage: translated,
		OriginalMessage:   req.Message,
		SourceLang:        string(src),
		TargetLang:        string(dst),
	}, nil
}

func (s *translationService) Languages() *dto.LanguagesResponse {
	languages := make(map[string]string, len(lang.SupportedLanguages))
	for code, name := range lang.SupportedLanguages {
		languages[string(code)] = name
	}
	return &dto.LanguagesResponse{Languages: languages}
}
