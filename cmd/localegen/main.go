package main

import (
	"log"
	"os"

	"localegen/internal/adapters/console"
	"localegen/internal/adapters/translator"
	"localegen/internal/config"
	"localegen/internal/infrastructure/i18n"
	"localegen/internal/infrastructure/localefs"
	"localegen/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	messages := i18n.NewMessages(cfg.UILocale)
	newStore := func(dir string) output.LocaleStore { return localefs.NewStore(dir) }

	app := console.New(cfg, newStore, translator.Identity{}, messages)
	if err := app.Run(os.Args); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}
