package index

import (
	"encoding/json"
	"fmt"
	"os"

	"securebank-assist-be/pkg/textutil"
)

// Minimum lengths a record must satisfy to be indexed. Anything shorter
// is noise from the upstream export (empty stubs, "ok", "thanks").
const (
	minQuestionLen = 10
	minAnswerLen   = 20
)

// questionFields and answerFields are the accepted field names for raw
// corpus records, in order of precedence. The export pipeline that
// produces the corpus has never agreed on a schema.
var (
	questionFields = []string{"question", "query", "text"}
	answerFields   = []string{"answer", "ans", "response"}
)

// CorpusEntry is one question/answer pair. Immutable once indexed.
type CorpusEntry struct {
	Id       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ParseRecords converts raw heterogeneous records into a clean entry
// sequence. Records missing a usable question or answer, or failing the
// minimum-length invariants, are skipped; the skip count is returned so
// callers can log it.
func ParseRecords(records []map[string]interface{}) ([]CorpusEntry, int) {
	entries := make([]CorpusEntry, 0, len(records))
	skipped := 0

	for _, record := range records {
		question := firstNonEmpty(record, questionFields)
		answer := firstNonEmpty(record, answerFields)

		if len(question) < minQuestionLen || len(answer) < minAnswerLen {
			skipped++
			continue
		}

		entries = append(entries, CorpusEntry{
			Id:       len(entries),
			Question: textutil.DecodeEntities(question),
			Answer:   textutil.DecodeEntities(answer),
		})
	}

	return entries, skipped
}

// LoadCorpusFile reads a JSON array of raw records and parses it.
func LoadCorpusFile(path string) ([]CorpusEntry, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read corpus file: %w", err)
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, 0, fmt.Errorf("parse corpus file: %w", err)
	}

	entries, skipped := ParseRecords(records)
	return entries, skipped, nil
}

func firstNonEmpty(record map[string]interface{}, fields []string) string {
	for _, field := range fields {
		if value, ok := record[field].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
