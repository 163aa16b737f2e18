package console

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"localegen/internal/application"
	"localegen/internal/domain/entities"
	"localegen/internal/ports/output"
	"localegen/pkg/langname"
)

// Ensure runner implements the output.Reporter port.
var _ output.Reporter = (*runner)(nil)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
)

// runner executes one scaffolding run and prints progress as files land.
type runner struct {
	out      io.Writer
	messages output.T
	locale   string
}

func (r *runner) execute(ctx context.Context, s *application.Scaffolder, templatePath string, targets []entities.Target) error {
	fmt.Fprintln(r.out, r.t("scaffold.generating", map[string]any{"Count": len(targets)}))
	fmt.Fprintln(r.out, r.t("scaffold.placeholder_note", map[string]any{"Template": templatePath}))

	template, err := s.LoadTemplate(ctx, templatePath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("%s %v", failMark, err), 1)
	}

	res, err := s.Scaffold(ctx, template, targets)
	if err != nil {
		return cli.Exit(fmt.Sprintf("%s %v", failMark, err), 1)
	}
	if res.Failed() {
		summary := r.t("scaffold.summary_failures", map[string]any{
			"Written": len(res.Written),
			"Failed":  len(res.Failures),
		})
		return cli.Exit(fmt.Sprintf("%s %s", failMark, summary), 1)
	}

	fmt.Fprintln(r.out, r.t("scaffold.done", nil))
	return nil
}

func (r *runner) t(key string, data map[string]any) string {
	return r.messages.T(r.locale, key, data)
}

// Wrote prints one progress line per written file, with the language display
// name when the code resolves to one.
func (r *runner) Wrote(target entities.Target) {
	name := langname.Name(target.Code)
	if name == target.Code {
		fmt.Fprintf(r.out, "%s %s\n", okMark, r.t("scaffold.created", map[string]any{"File": target.FileName()}))
		return
	}
	fmt.Fprintf(r.out, "%s %s\n", okMark, r.t("scaffold.created_named", map[string]any{
		"File":     target.FileName(),
		"Language": name,
	}))
}

func (r *runner) Failed(target entities.Target, err error) {
	fmt.Fprintf(r.out, "%s %s\n", failMark, r.t("scaffold.failed", map[string]any{
		"File":  target.FileName(),
		"Error": err.Error(),
	}))
}
