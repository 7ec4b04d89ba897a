package service

import (
	"fmt"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/michael1788/chessytos/internal/model"
)

// GameService is the thin application layer between the HTTP/WS controllers
// and the game manager.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{gameManager: gameManager}
}

func (gs *GameService) CreateGame(opts GameOptions) (string, error) {
	gameID := uuid.New().String()
	if opts.PolicyColor != "" && opts.PolicyName == "" {
		opts.PolicyName = petname.Generate(2, " ")
	}
	if err := gs.gameManager.CreateGame(gameID, opts); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) JoinGame(gameID, playerID, name string) (model.Color, error) {
	if name == "" {
		name = petname.Generate(2, " ")
	}
	return gs.gameManager.AddPlayerToGame(gameID, playerID, name)
}

func (gs *GameService) GetGameState(gameID string) (model.Snapshot, error) {
	return gs.gameManager.GetSnapshot(gameID)
}

func (gs *GameService) SelectSquare(gameID string, sq model.Square) error {
	return gs.gameManager.SelectSquare(gameID, sq)
}

func (gs *GameService) LegalTargets(gameID string, sq model.Square) ([]model.Square, error) {
	return gs.gameManager.LegalTargets(gameID, sq)
}

func (gs *GameService) Answer(gameID string, moveID int, answer string) error {
	return gs.gameManager.Answer(gameID, moveID, answer)
}

func (gs *GameService) ResetGame(gameID string) error {
	return gs.gameManager.ResetGame(gameID)
}

func (gs *GameService) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, playerID string) {
	gs.gameManager.UnregisterConnection(gameID, playerID)
}
