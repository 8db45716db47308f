package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"hopa/cmd/fx/ai_fx"
	"hopa/cmd/fx/consensus_fx"
	"hopa/cmd/fx/session_fx"
	"hopa/internal/api/controllers"
	"hopa/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on environment variables")
	}

	app := fx.New(
		ai_fx.Module,
		consensus_fx.Module,
		session_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	aiController *controllers.AIController,
	consensusController *controllers.ConsensusController,
	sessionController *controllers.SessionController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, aiController, consensusController, sessionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	aiController *controllers.AIController,
	consensusController *controllers.ConsensusController,
	sessionController *controllers.SessionController) {

	aiGroup := r.Group("/ai")
	aiGroup.POST("/kimi/chat", aiController.ChatHandler)
	aiGroup.POST("/doubao/generate-image", aiController.GenerateImageHandler)

	consensusGroup := r.Group("/consensus")
	consensusGroup.POST("/questions", consensusController.GenerateQuestionsHandler)
	consensusGroup.POST("/equipment-options", consensusController.GenerateEquipmentHandler)
	consensusGroup.POST("/result", consensusController.GenerateConsensusHandler)

	sessionGroup := r.Group("/sessions")
	sessionGroup.POST("", sessionController.CreateSessionHandler)
	sessionGroup.GET("/:id", sessionController.GetSessionHandler)
	sessionGroup.POST("/:id/join", sessionController.JoinSessionHandler)
}
