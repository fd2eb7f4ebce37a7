package main

import (
	"kingdom/cmd/handlers"
	"kingdom/internal/logger"
)

func main() {
	logger.Init()
	handlers.Execute()
}
