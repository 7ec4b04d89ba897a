package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/michael1788/chessytos/internal/challenge"
	"github.com/michael1788/chessytos/internal/model"
	"github.com/michael1788/chessytos/internal/ws"
)

// GameOptions configures one game at creation time.
type GameOptions struct {
	GatedWhite   bool
	GatedBlack   bool
	PolicyColor  model.Color // "" for a two-human game
	PolicyName   string
	ClockSeconds int
}

// managedGame ties a session to its challenge gate and the WebSocket
// connections observing it.
type managedGame struct {
	id      string
	session *model.GameSession
	gate    *challenge.Gate
	timeout time.Duration

	connMu  sync.RWMutex
	conns   map[string]*websocket.Conn
	players map[string]model.Color
}

// GameManager owns every live game and routes external events (selections,
// answers, connections) to the right session.
type GameManager struct {
	mu            sync.RWMutex
	games         map[string]*managedGame
	questions     *challenge.QuestionSource
	answerTimeout time.Duration
}

func NewGameManager(questions *challenge.QuestionSource, answerTimeout time.Duration) *GameManager {
	if answerTimeout <= 0 {
		answerTimeout = challenge.DefaultAnswerTimeout
	}
	return &GameManager{
		games:         make(map[string]*managedGame),
		questions:     questions,
		answerTimeout: answerTimeout,
	}
}

func (gm *GameManager) CreateGame(gameID string, opts GameOptions) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	if _, exists := gm.games[gameID]; exists {
		return errors.New("game already exists")
	}

	sessionOpts := model.SessionOptions{
		White:         model.SideOptions{Gated: opts.GatedWhite},
		Black:         model.SideOptions{Gated: opts.GatedBlack},
		ClockDuration: time.Duration(opts.ClockSeconds) * time.Second,
	}
	switch opts.PolicyColor {
	case model.White:
		sessionOpts.White.Policy = model.NewRandomPolicy()
		sessionOpts.White.Name = opts.PolicyName
	case model.Black:
		sessionOpts.Black.Policy = model.NewRandomPolicy()
		sessionOpts.Black.Name = opts.PolicyName
	}

	mg := &managedGame{
		id:      gameID,
		session: model.NewSession(sessionOpts),
		timeout: gm.answerTimeout,
		conns:   make(map[string]*websocket.Conn),
		players: make(map[string]model.Color),
	}
	mg.gate = challenge.NewGate(gm.answerTimeout, func(id int, decision challenge.Decision) {
		mg.session.ResolvePending(id, decision == challenge.Authorized)
	})
	mg.session.Observe(mg.broadcastState, gm.raiseChallenge(mg))
	gm.games[gameID] = mg

	// A machine-controlled white opens the game without waiting for input.
	if opts.PolicyColor == model.White {
		mg.session.PlayPolicyMove()
	}
	return nil
}

// raiseChallenge turns a pending gated move into a trivia prompt: draw a
// question, arm the gate, and push the prompt to the clients. If the source
// fails the move is authorized outright so a broken question feed never
// bricks a game.
func (gm *GameManager) raiseChallenge(mg *managedGame) func(model.Challenge) {
	return func(ch model.Challenge) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		q, err := gm.questions.Next(ctx)
		if err != nil {
			log.Printf("question source failed for game %s: %v", mg.id, err)
			mg.session.ResolvePending(ch.ID, true)
			return
		}
		mg.gate.Open(ch.ID, q)
		mg.broadcastQuestion(ch.ID, q)
	}
}

func (gm *GameManager) get(gameID string) (*managedGame, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	mg, exists := gm.games[gameID]
	if !exists {
		return nil, errors.New("game not found")
	}
	return mg, nil
}

func (gm *GameManager) GetSnapshot(gameID string) (model.Snapshot, error) {
	mg, err := gm.get(gameID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return mg.session.Snapshot(), nil
}

func (gm *GameManager) AddPlayerToGame(gameID, playerID, name string) (model.Color, error) {
	mg, err := gm.get(gameID)
	if err != nil {
		return "", err
	}
	mg.connMu.Lock()
	if color, seated := mg.players[playerID]; seated {
		mg.connMu.Unlock()
		return color, nil
	}
	mg.connMu.Unlock()

	color, err := mg.session.AddPlayer(name)
	if err != nil {
		return "", err
	}
	mg.connMu.Lock()
	mg.players[playerID] = color
	mg.connMu.Unlock()
	return color, nil
}

func (gm *GameManager) SelectSquare(gameID string, sq model.Square) error {
	mg, err := gm.get(gameID)
	if err != nil {
		return err
	}
	mg.session.SelectSquare(sq)
	return nil
}

func (gm *GameManager) LegalTargets(gameID string, sq model.Square) ([]model.Square, error) {
	mg, err := gm.get(gameID)
	if err != nil {
		return nil, err
	}
	return mg.session.LegalTargets(sq), nil
}

func (gm *GameManager) Answer(gameID string, moveID int, answer string) error {
	mg, err := gm.get(gameID)
	if err != nil {
		return err
	}
	mg.gate.Answer(moveID, answer)
	return nil
}

func (gm *GameManager) ResetGame(gameID string) error {
	mg, err := gm.get(gameID)
	if err != nil {
		return err
	}
	// the reset discards any pending move, so the challenge raised for it
	// must not stay armed
	mg.gate.Cancel()
	mg.session.Reset()
	return nil
}

func (gm *GameManager) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	mg, err := gm.get(gameID)
	if err != nil {
		return err
	}
	return mg.registerConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID, playerID string) {
	mg, err := gm.get(gameID)
	if err != nil {
		return
	}
	mg.unregisterConnection(playerID)
}

func (mg *managedGame) registerConnection(playerID string, conn *websocket.Conn) error {
	mg.connMu.Lock()
	if _, exists := mg.conns[playerID]; exists {
		mg.connMu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	mg.conns[playerID] = conn
	mg.connMu.Unlock()

	// Bring the new connection up to date: current state plus the open
	// challenge, if one is waiting on an answer.
	mg.broadcastState(mg.session.Snapshot())
	if id, q, open := mg.gate.Question(); open {
		mg.broadcastQuestion(id, q)
	}
	return nil
}

func (mg *managedGame) unregisterConnection(playerID string) {
	mg.connMu.Lock()
	defer mg.connMu.Unlock()
	delete(mg.conns, playerID)
}

func (mg *managedGame) broadcastState(snap model.Snapshot) {
	payload, err := json.Marshal(snap)
	if err != nil {
		log.Printf("marshal snapshot for game %s: %v", mg.id, err)
		return
	}
	mg.broadcast(ws.Message{Type: ws.MessageTypeGameState, Payload: payload})
}

func (mg *managedGame) broadcastQuestion(moveID int, q challenge.Question) {
	payload, err := json.Marshal(ws.QuestionPayload{
		MoveID:          moveID,
		Category:        q.Category,
		Question:        q.Text,
		Answers:         q.Answers,
		DeadlineSeconds: int(mg.timeout.Seconds()),
	})
	if err != nil {
		log.Printf("marshal question for game %s: %v", mg.id, err)
		return
	}
	mg.broadcast(ws.Message{Type: ws.MessageTypeQuestion, Payload: payload})
}

func (mg *managedGame) broadcast(msg ws.Message) {
	mg.connMu.RLock()
	active := make(map[string]*websocket.Conn, len(mg.conns))
	for playerID, conn := range mg.conns {
		active[playerID] = conn
	}
	mg.connMu.RUnlock()

	for playerID, conn := range active {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("send to player %s failed, dropping connection: %v", playerID, err)
			mg.unregisterConnection(playerID)
		}
	}
}
