package ws

import "encoding/json"

// MessageType discriminates the WebSocket envelope.
type MessageType string

const (
	MessageTypeSelect    MessageType = "select"
	MessageTypeAnswer    MessageType = "answer"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeQuestion  MessageType = "question"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope for every WebSocket frame in both directions.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// AnswerPayload is the inbound answer to an open challenge.
type AnswerPayload struct {
	MoveID int    `json:"moveId"`
	Answer string `json:"answer"`
}

// QuestionPayload is the outbound challenge prompt raised for a pending
// move.
type QuestionPayload struct {
	MoveID          int      `json:"moveId"`
	Category        string   `json:"category"`
	Question        string   `json:"question"`
	Answers         []string `json:"answers"`
	DeadlineSeconds int      `json:"deadlineSeconds"`
}
