package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/michael1788/chessytos/internal/model"
	"github.com/michael1788/chessytos/internal/service"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	GatedWhite   bool   `json:"gatedWhite"`
	GatedBlack   bool   `json:"gatedBlack"`
	Computer     string `json:"computer"` // "white", "black" or empty
	ClockSeconds int    `json:"clockSeconds"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}
	opts := service.GameOptions{
		GatedWhite:   req.GatedWhite,
		GatedBlack:   req.GatedBlack,
		ClockSeconds: req.ClockSeconds,
	}
	switch req.Computer {
	case "white":
		opts.PolicyColor = model.White
	case "black":
		opts.PolicyColor = model.Black
	case "":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "computer must be \"white\", \"black\" or empty",
		})
	}

	gameID, err := gc.gameService.CreateGame(opts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var req struct {
		Name string `json:"name"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	color, err := gc.gameService.JoinGame(gameID, playerID, req.Name)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	snapshot, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(snapshot)
}

func (gc *GameController) SelectSquare(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var sq model.Square
	if err := c.BodyParser(&sq); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid square",
		})
	}
	if err := gc.gameService.SelectSquare(gameID, sq); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	snapshot, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(snapshot)
}

func (gc *GameController) LegalTargets(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	sq := model.Square{
		X: c.QueryInt("x", -1),
		Y: c.QueryInt("y", -1),
	}
	targets, err := gc.gameService.LegalTargets(gameID, sq)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if targets == nil {
		targets = []model.Square{}
	}
	return c.JSON(fiber.Map{
		"legalMoves": targets,
	})
}

func (gc *GameController) Answer(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var req struct {
		MoveID int    `json:"moveId"`
		Answer string `json:"answer"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid answer payload",
		})
	}
	if err := gc.gameService.Answer(gameID, req.MoveID, req.Answer); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "answer received",
	})
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if err := gc.gameService.ResetGame(gameID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "game reset",
	})
}
