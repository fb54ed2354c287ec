package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// CannedEntry is one canned answer in the support bot's knowledge base.
type CannedEntry struct {
	ID       string   `json:"id"`
	Keywords []string `json:"keywords"`
	Answer   string   `json:"answer"`
	Deeplink string   `json:"deeplink,omitempty"`
}

// AskResult is what the websocket handler sends back for one question.
type AskResult struct {
	Answer   string `json:"answer"`
	Deeplink string `json:"deeplink,omitempty"`
	Matched  string `json:"matched_id,omitempty"`
	Score    int    `json:"score"`
}

// AssistantService answers support questions by keyword-scoring a fixed set
// of canned entries. No model, no external calls: the bot the listing pages
// embed is exactly this lookup.
type AssistantService struct {
	entries  []CannedEntry
	fallback string
}

// DefaultFallback is shown when no entry scores at all.
const DefaultFallback = "Xin lỗi, mình chưa hiểu câu hỏi. Bạn thử hỏi về giá phòng, đặt cọc hoặc tìm bạn ở ghép nhé."

func NewAssistantService(entries []CannedEntry, fallback string) *AssistantService {
	if fallback == "" {
		fallback = DefaultFallback
	}
	return &AssistantService{entries: entries, fallback: fallback}
}

// LoadAssistantService reads the knowledge base from a JSON file.
func LoadAssistantService(path string) (*AssistantService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}
	var entries []CannedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse knowledge base: %w", err)
	}
	return NewAssistantService(entries, ""), nil
}

// Ask picks the entry whose keywords occur most often in the question. Score
// zero means nothing matched and the fallback answer is returned.
func (s *AssistantService) Ask(question string) AskResult {
	lower := strings.ToLower(question)

	var best CannedEntry
	bestScore := 0
	for _, entry := range s.entries {
		score := 0
		for _, kw := range entry.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" && strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = entry
			bestScore = score
		}
	}

	if bestScore == 0 {
		return AskResult{Answer: s.fallback}
	}
	return AskResult{
		Answer:   best.Answer,
		Deeplink: best.Deeplink,
		Matched:  best.ID,
		Score:    bestScore,
	}
}
