package main

import (
	"flag"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/michael1788/chessytos/internal/challenge"
	"github.com/michael1788/chessytos/internal/controller"
	"github.com/michael1788/chessytos/internal/middleware"
	"github.com/michael1788/chessytos/internal/service"
)

func main() {
	var (
		addr          = flag.String("addr", ":3000", "listen address")
		origin        = flag.String("origin", "http://localhost:5173", "allowed CORS origin")
		triviaURL     = flag.String("trivia-url", "https://opentdb.com/api.php?amount=10", "question source endpoint")
		category      = flag.String("category", "", "question category filter")
		answerTimeout = flag.Duration("answer-timeout", challenge.DefaultAnswerTimeout, "time allowed to answer a challenge")
	)
	flag.Parse()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     *origin,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	questions := challenge.NewQuestionSource(*triviaURL, *category, nil)
	gameManager := service.NewGameManager(questions, *answerTimeout)
	gameService := service.NewGameService(gameManager)

	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         []string{*origin},
	}))

	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Get("/:gameId/moves", gameController.LegalTargets)
	gameRoutes.Post("/:gameId/select", gameController.SelectSquare)
	gameRoutes.Post("/:gameId/answer", gameController.Answer)
	gameRoutes.Post("/:gameId/reset", gameController.ResetGame)

	log.Printf("listening on %s (answer timeout %s)", *addr, *answerTimeout)
	log.Fatal(app.Listen(*addr))
}
