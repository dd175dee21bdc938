package cmd

import (
	"fmt"
	"net/http"

	"resumatic/internal/apihandlers"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveAddr string

// serveCmd runs resumatic as an HTTP API server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run resumatic as an HTTP API server",
	Long: `Starts an HTTP server exposing the optimizer via a RESTful API:
POST /api/v1/optimize with {"resume": "..."} and GET /api/v1/runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		router := gin.Default()
		apiHandler := apihandlers.NewAPIHandler(appInstance)

		v1 := router.Group("/api/v1")
		{
			v1.POST("/optimize", apiHandler.OptimizeHandler)
			v1.GET("/runs", apiHandler.ListRunsHandler)
		}
		router.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		addr := serveAddr
		if addr == "" {
			addr = appInstance.Config.Server.Addr
		}
		log.Infof("listening on %s", addr)
		if err := router.Run(addr); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides server.addr from config)")
	rootCmd.AddCommand(serveCmd)
}
