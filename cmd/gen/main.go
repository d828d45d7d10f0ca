package main

import (
	"github.com/24svcs/svcs-api/internal/repository"
	"github.com/24svcs/svcs-api/pkg/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	repository.RunGenerate()
}
