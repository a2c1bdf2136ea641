package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aamagency-dev/sms-frontend/config"
	"github.com/aamagency-dev/sms-frontend/platform"
	"github.com/aamagency-dev/sms-frontend/routes"
	"github.com/aamagency-dev/sms-frontend/services"
	"github.com/aamagency-dev/sms-frontend/utils"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}
}

func main() {
	logger, err := utils.InitLogger(os.Getenv("LOG_ENV"))
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	client := platform.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)

	monitor := services.NewHealthMonitor(client)
	monitor.Start()

	r := routes.SetupRouter(cfg, client, monitor)
	printRoutes(r)

	go func() {
		if err := r.Run(":" + cfg.Port); err != nil {
			zap.L().Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	<-monitor.Stop().Done()
	zap.L().Info("shutdown complete")
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
