package challenge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Doer is the slice of http.Client the source needs; tests stub it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// QuestionSource fetches question batches from an HTTP endpoint, filters
// them by category, and hands them out one at a time, refilling its buffer
// when it runs dry.
type QuestionSource struct {
	url      string
	category string
	client   Doer

	mu  sync.Mutex
	buf []Question
	rng *rand.Rand
}

// NewQuestionSource builds a source for the given endpoint. category is a
// case-insensitive substring filter; empty keeps everything. client may be
// nil, in which case a default HTTP client with a short timeout is used.
func NewQuestionSource(url, category string, client Doer) *QuestionSource {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &QuestionSource{
		url:      url,
		category: category,
		client:   client,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Next returns the next buffered question, fetching a fresh batch first if
// the buffer is empty.
func (s *QuestionSource) Next(ctx context.Context) (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.buf) == 0 {
		if err := s.refillLocked(ctx); err != nil {
			return Question{}, err
		}
	}
	q := s.buf[0]
	s.buf = s.buf[1:]
	return q, nil
}

func (s *QuestionSource) refillLocked(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return fmt.Errorf("build question request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch questions: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("question source returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read question batch: %w", err)
	}
	questions, err := decodeQuestions(body, s.rng)
	if err != nil {
		return err
	}
	s.buf = filterByCategory(questions, s.category)
	if len(s.buf) == 0 {
		return errors.New("question source returned no usable questions")
	}
	return nil
}

func filterByCategory(questions []Question, category string) []Question {
	if category == "" {
		return questions
	}
	var kept []Question
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.Category), strings.ToLower(category)) {
			kept = append(kept, q)
		}
	}
	return kept
}
