package dto

type UploadDocumentResponse struct {
	Filename         string `json:"filename"`
	ChunksCreated    int    `json:"chunksCreated"`
	ExtractedPreview string `json:"extractedPreview"`
	FullText         string `json:"fullText"`
}
