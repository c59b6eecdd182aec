package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/rabbit-run/api"
	api_i "github.com/beka-birhanu/rabbit-run/api/i"
	puzzleapi "github.com/beka-birhanu/rabbit-run/api/puzzle"
	"github.com/beka-birhanu/rabbit-run/config"
	logger "github.com/beka-birhanu/rabbit-run/infrastruture/log"
	"github.com/beka-birhanu/rabbit-run/service"
	"github.com/beka-birhanu/rabbit-run/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	appLogger        i.Logger
	puzzleService    i.PuzzleManager
	puzzleController api_i.Controller
	router           *api.Router
)

func initPuzzleService() {
	puzzleLogger, err := logger.New("PUZZLE", config.ColorCyan, os.Stdout, config.Envs.LogLevel)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating puzzle logger: %v", err))
		os.Exit(1)
	}

	puzzleService, err = service.NewPuzzleService(puzzleLogger, &service.Options{
		MaxSize:     config.Envs.PuzzleMaxSize,
		MaxAttempts: config.Envs.PuzzleMaxAttempts,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating puzzle service: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Puzzle service initialized")
}

func initPuzzleController() {
	var err error
	puzzleController, err = puzzleapi.NewPuzzleController(puzzleService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating puzzle controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Puzzle controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{puzzleController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout, config.Envs.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating app logger: %v\n", err)
		os.Exit(1)
	}

	initPuzzleService()
	initPuzzleController()
	initRouter()

	appLogger.Info(fmt.Sprintf("Listening on %s:%d", config.Envs.HostIP, config.Envs.RESTPort))
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
