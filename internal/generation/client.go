package generation

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"study-service/internal/models"
)

const (
	MinQuestions = 5
	MaxQuestions = 20
	MinCards     = 5
	MaxCards     = 30

	maxAttempts = 3
)

// Client talks to an OpenAI-compatible chat-completions API. It is the only
// asynchronous boundary of the system; the stores receive already-materialized
// data and never see a partial generation.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Stream      bool          `json:"stream"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type chatStreamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// GenerateQuiz produces a validated question list for a new quiz attempt.
func (c *Client) GenerateQuiz(ctx context.Context, topic string, difficulty models.Difficulty, count int, types []models.QuestionType) ([]models.Question, error) {
	content, err := c.complete(ctx, quizSystemPrompt, quizPrompt(topic, difficulty, count, types))
	if err != nil {
		return nil, err
	}

	var payload struct {
		Questions []models.Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(stripFences(content)), &payload); err != nil {
		return nil, newError(KindInvalid, "malformed quiz payload: %v", err)
	}
	if len(payload.Questions) < MinQuestions || len(payload.Questions) > MaxQuestions {
		return nil, newError(KindInvalid, "expected %d-%d questions, got %d", MinQuestions, MaxQuestions, len(payload.Questions))
	}
	for i := range payload.Questions {
		q := &payload.Questions[i]
		if !models.ValidQuestionType(q.Type) {
			return nil, newError(KindInvalid, "question %d has unsupported type %q", i, q.Type)
		}
		if q.Type == models.TypeMultipleChoice && len(q.Options) != 4 {
			return nil, newError(KindInvalid, "multiple-choice question %d has %d options, want 4", i, len(q.Options))
		}
		if q.Type != models.TypeMultipleChoice {
			q.Options = nil
		}
		// Generated questions must arrive unanswered.
		q.UserAnswer = nil
		q.IsCorrect = nil
		if q.ID == "" {
			id, err := gonanoid.New()
			if err != nil {
				return nil, newError(KindUnknown, "id generation failed: %v", err)
			}
			q.ID = fmt.Sprintf("q%d_%s", i+1, id)
		}
	}
	return payload.Questions, nil
}

// GenerateFlashcards produces front/back card content for a new set.
func (c *Client) GenerateFlashcards(ctx context.Context, topic string, count int) ([]models.CardContent, error) {
	content, err := c.complete(ctx, flashcardSystemPrompt, flashcardsPrompt(topic, count))
	if err != nil {
		return nil, err
	}

	var payload struct {
		Cards []models.CardContent `json:"cards"`
	}
	if err := json.Unmarshal([]byte(stripFences(content)), &payload); err != nil {
		return nil, newError(KindInvalid, "malformed flashcard payload: %v", err)
	}
	if len(payload.Cards) < MinCards || len(payload.Cards) > MaxCards {
		return nil, newError(KindInvalid, "expected %d-%d cards, got %d", MinCards, MaxCards, len(payload.Cards))
	}
	for i, card := range payload.Cards {
		if strings.TrimSpace(card.Front) == "" || strings.TrimSpace(card.Back) == "" {
			return nil, newError(KindInvalid, "card %d has an empty side", i)
		}
	}
	return payload.Cards, nil
}

// StreamExplanation streams an explanation, forwarding text fragments to sink
// in emission order. If the context is cancelled mid-stream the partial text
// is simply discarded by the caller; no store state has been touched.
func (c *Client) StreamExplanation(ctx context.Context, topic string, complexity models.Complexity, extra string, sink func(chunk string) error) error {
	body := chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "system", Content: explainSystemPrompt}, {Role: "user", Content: explanationPrompt(topic, complexity, extra)}},
		Stream:   true,
	}
	resp, err := c.send(ctx, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return classifyStatus(resp.StatusCode, string(raw))
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			break
		}
		var chunk chatStreamChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			continue
		}
		if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
			continue
		}
		if err := sink(chunk.Choices[0].Delta.Content); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return newError(KindUnknown, "stream read failed: %v", err)
	}
	return nil
}

// complete runs a non-streaming chat completion with retry. Auth errors are
// not retried; other failures back off exponentially (2s, 4s).
func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	temperature := 0.7
	body := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "system", Content: systemPrompt}, {Role: "user", Content: userPrompt}},
		Temperature: &temperature,
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		content, err := c.completeOnce(ctx, body)
		if err == nil {
			return content, nil
		}
		lastErr = err
		if genErr, ok := err.(*Error); ok && genErr.Kind == KindAuth {
			return "", err
		}
		if attempt < maxAttempts {
			log.Printf("generation attempt %d failed: %v", attempt, err)
			select {
			case <-time.After(time.Duration(1<<attempt) * time.Second):
			case <-ctx.Done():
				return "", newError(KindUnknown, "generation cancelled: %v", ctx.Err())
			}
		}
	}
	return "", lastErr
}

func (c *Client) completeOnce(ctx context.Context, body chatRequest) (string, error) {
	resp, err := c.send(ctx, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newError(KindUnknown, "read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, string(raw))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", newError(KindInvalid, "malformed provider response: %v", err)
	}
	if len(parsed.Choices) == 0 {
		return "", newError(KindInvalid, "provider returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

func (c *Client) send(ctx context.Context, body chatRequest) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, newError(KindUnknown, "marshal request: %v", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, newError(KindUnknown, "build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newError(KindUnknown, "request failed: %v", err)
	}
	return resp, nil
}

// stripFences removes a markdown code fence some providers wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
