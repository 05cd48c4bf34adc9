package main

import (
	"os"

	"github.com/fsdevblog/groph-receipts/internal/app"
	"github.com/fsdevblog/groph-receipts/internal/config"
	"github.com/fsdevblog/groph-receipts/internal/logger"
	"github.com/joho/godotenv"
)

func main() {
	// .env необязателен, переменные окружения процесса приоритетнее.
	_ = godotenv.Load()

	l := logger.New(os.Stdout)
	conf := config.MustLoadConfig(os.Args[1:])

	if err := app.New(conf, l).Run(); err != nil {
		l.WithError(err).Fatal("app stopped with error")
	}
	l.Info("graceful shutdown")
}
