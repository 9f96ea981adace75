/*
Copyright © 2025 pdfchat
*/
package cmd

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pdfchat/pdfchat-be/config"
	"github.com/pdfchat/pdfchat-be/handler"
	"github.com/pdfchat/pdfchat-be/service"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the PDF chat server",
	Long:  `Starts a server that handles PDF uploads, text extraction and document question answering`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Initialize services
		pdfService := service.NewPDFService()
		ingestService := service.NewIngestService(pdfService)
		fileSet := service.NewFileSetManager()

		var answerService service.AnswerService
		switch cfg.AIBackend {
		case "gemini":
			gemini, err := service.NewGeminiAnswerService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
			if err != nil {
				log.Fatalf("Failed to create Gemini answer service: %v", err)
			}
			defer gemini.Close()
			answerService = gemini
		default:
			answerService = service.NewOpenAIAnswerService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model)
		}

		sessionService := service.NewSessionService(fileSet, ingestService, answerService)
		wsService := service.NewWebSocketService(sessionService)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		uploadHandler := handler.NewUploadHandler(sessionService)
		ingestHandler := handler.NewIngestHandler(sessionService)
		chatHandler := handler.NewChatHandler(sessionService)
		sessionHandler := handler.NewSessionHandler(sessionService)

		// Setup Gin router
		router := gin.Default()

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)

		apiV1 := router.Group("/api/v1")
		{
			apiV1.POST("/files", uploadHandler.HandleAddFiles)
			apiV1.PUT("/files", uploadHandler.HandleReplaceFiles)
			apiV1.DELETE("/files/:name", uploadHandler.HandleRemoveFile)
			apiV1.POST("/process", ingestHandler.HandleProcess)
			apiV1.POST("/chat", chatHandler.HandleChat)
			apiV1.GET("/session", sessionHandler.HandleSession)
			apiV1.GET("/ws", func(c *gin.Context) {
				wsService.HandleChat(c.Writer, c.Request)
			})
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
