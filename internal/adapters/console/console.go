package console

import (
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"localegen/internal/application"
	"localegen/internal/config"
	"localegen/internal/domain/entities"
	"localegen/internal/ports/output"
)

// New builds the command-line application and wires ports:
// output adapters (store, translator) -> scaffolder (use case) -> console.
//
// The store is created per invocation because the output directory is only
// known once flags are parsed.
func New(cfg *config.Config, newStore func(dir string) output.LocaleStore, tr output.Translator, messages output.T) *cli.App {
	return &cli.App{
		Name:  "localegen",
		Usage: "generate placeholder locale files from a base-language JSON template",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "template",
				Usage: "path to the base-language JSON template",
				Value: cfg.TemplatePath,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output directory (defaults to the template's directory)",
				Value: cfg.OutputDir,
			},
			&cli.StringFlag{
				Name:    "languages",
				Aliases: []string{"l"},
				Usage:   "comma-separated target language codes",
				Value:   strings.Join(cfg.Languages, ","),
			},
			&cli.StringFlag{
				Name:  "ui-locale",
				Usage: "locale used for the tool's own messages",
				Value: cfg.UILocale,
			},
		},
		Action: func(c *cli.Context) error {
			templatePath := c.String("template")
			outDir := c.String("out")
			if outDir == "" {
				outDir = filepath.Dir(templatePath)
			}
			targets := entities.TargetsFromCodes(config.SplitLanguages(c.String("languages")))

			run := &runner{
				out:      c.App.Writer,
				messages: messages,
				locale:   c.String("ui-locale"),
			}
			scaffolder := application.NewScaffolder(newStore(outDir), tr)
			scaffolder.SetReporter(run)
			return run.execute(c.Context, scaffolder, templatePath, targets)
		},
	}
}
