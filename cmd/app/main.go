package main

import (
	"github.com/BuzzLyutic/htmx-todos/internal/app"
)

func main() {
	// Сборка зависимостей, запуск сервера и graceful shutdown по SIGINT/SIGTERM
	app.New().Run()
}
