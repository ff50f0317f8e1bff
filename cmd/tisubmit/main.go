package main

import (
	"tisubmit/internal/app"

	"github.com/charmbracelet/log"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal("submission failed", "error", err)
	}
}
