package cmd

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"bragi/internal/apihandlers"
)

var serveAddr string

// serveCmd runs the styling HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the styling HTTP API server",
	Long: `Starts an HTTP server exposing the styling engine: apply and inspect
styling per deck, invalidate cached analyses, and list the built-in themes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		// gin.Default includes logger and recovery middleware
		router := gin.Default()

		apiHandler := apihandlers.NewAPIHandler(appInstance)

		v1 := router.Group("/api/v1")
		{
			decks := v1.Group("/decks")
			{
				decks.POST("/:id/styling", apiHandler.ApplyStylingHandler)
				decks.GET("/:id/styling", apiHandler.GetStylingHandler)
				decks.DELETE("/:id/styling", apiHandler.InvalidateStylingHandler)
			}
			v1.GET("/themes", apiHandler.ListThemesHandler)
		}
		router.GET("/health", apiHandler.HealthHandler)

		listenAddr := serveAddr
		if listenAddr == "" {
			listenAddr = appInstance.Config.Server.Address
		}
		log.Printf("Starting styling API server on %s", listenAddr)

		// router.Run blocks unless an error occurs
		if err := router.Run(listenAddr); err != nil {
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to server.address from config)")
}
