// Package challenge implements the authorization side of gated move
// commits: a trivia question source and a gate that turns a player's answer
// (or silence) into an authorize/deny decision for a pending move.
package challenge

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
)

// Decision is the outcome of one authorization request.
type Decision int

const (
	Denied Decision = iota
	Authorized
)

// Question is one challenge prompt. Answers holds every option in display
// order; the correct one is kept private so snapshots sent to clients never
// leak it.
type Question struct {
	Category string   `json:"category"`
	Text     string   `json:"question"`
	Answers  []string `json:"answers"`

	correct string
}

// Check reports whether answer matches the correct one, ignoring case and
// surrounding whitespace.
func (q Question) Check(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.correct))
}

// rawQuestion is the upstream wire format. Two formats arrive on the same
// field set: "multiple" carries three incorrect answers, "boolean" one.
type rawQuestion struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type questionPayload struct {
	ResponseCode int           `json:"response_code"`
	Results      []rawQuestion `json:"results"`
}

// decodeQuestions parses an upstream batch. The correct answer is inserted
// at a random position among the incorrect ones, except for the boolean
// format which always displays True/False in that order.
func decodeQuestions(data []byte, rng *rand.Rand) ([]Question, error) {
	var payload questionPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode question batch: %w", err)
	}
	if payload.ResponseCode != 0 {
		return nil, fmt.Errorf("question source response code %d", payload.ResponseCode)
	}
	questions := make([]Question, 0, len(payload.Results))
	for _, raw := range payload.Results {
		if raw.Question == "" || raw.CorrectAnswer == "" {
			continue
		}
		q := Question{
			Category: raw.Category,
			Text:     raw.Question,
			correct:  raw.CorrectAnswer,
		}
		if raw.Type == "boolean" {
			q.Answers = []string{"True", "False"}
		} else {
			q.Answers = append(q.Answers, raw.IncorrectAnswers...)
			at := rng.Intn(len(q.Answers) + 1)
			q.Answers = append(q.Answers[:at], append([]string{raw.CorrectAnswer}, q.Answers[at:]...)...)
		}
		questions = append(questions, q)
	}
	return questions, nil
}
