package console

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"localegen/internal/adapters/translator"
	"localegen/internal/config"
	"localegen/internal/infrastructure/localefs"
	"localegen/internal/ports/output"
)

// echoT renders messages as "key data" so assertions do not depend on the
// real catalogs.
type echoT struct{}

func (echoT) T(_, key string, data map[string]any) string {
	if data == nil {
		return key
	}
	return fmt.Sprintf("%s %v", key, data)
}

func newTestApp(t *testing.T, cfg *config.Config) (*bytes.Buffer, func(args ...string) error) {
	t.Helper()
	newStore := func(dir string) output.LocaleStore { return localefs.NewStore(dir) }
	app := New(cfg, newStore, translator.Identity{}, echoT{})

	var buf bytes.Buffer
	app.Writer = &buf
	app.ErrWriter = &buf
	app.ExitErrHandler = func(*cli.Context, error) {} // keep exits out of tests
	return &buf, func(args ...string) error {
		return app.Run(append([]string{"localegen"}, args...))
	}
}

func TestApp_ScaffoldsConfiguredLanguages(t *testing.T) {
	dir := t.TempDir()
	template := filepath.Join(dir, "en.json")
	require.NoError(t, os.WriteFile(template, []byte(`{"title": "Hello"}`), 0o644))

	cfg := &config.Config{
		TemplatePath: template,
		OutputDir:    dir,
		Languages:    []string{"ja", "nl"},
		UILocale:     "en",
	}
	buf, run := newTestApp(t, cfg)

	require.NoError(t, run())

	for _, file := range []string{"ja.json", "nl.json"} {
		data, err := os.ReadFile(filepath.Join(dir, file))
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"title\": \"Hello\"\n}\n", string(data))
		assert.Contains(t, buf.String(), file)
	}
	assert.Contains(t, buf.String(), "scaffold.done")
}

func TestApp_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	template := filepath.Join(dir, "base.json")
	require.NoError(t, os.WriteFile(template, []byte(`{"title": "Hello"}`), 0o644))
	outDir := filepath.Join(dir, "generated")

	cfg := &config.Config{
		TemplatePath: "ignored.json",
		OutputDir:    "",
		Languages:    []string{"ja"},
		UILocale:     "en",
	}
	_, run := newTestApp(t, cfg)

	require.NoError(t, run("--template", template, "--out", outDir, "--languages", "it,tr"))

	assert.FileExists(t, filepath.Join(outDir, "it.json"))
	assert.FileExists(t, filepath.Join(outDir, "tr.json"))
	assert.NoFileExists(t, filepath.Join(outDir, "ja.json"))
}

func TestApp_MissingTemplateFailsBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		TemplatePath: filepath.Join(dir, "missing.json"),
		OutputDir:    dir,
		Languages:    []string{"ja"},
		UILocale:     "en",
	}
	_, run := newTestApp(t, cfg)

	require.Error(t, run())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no locale files may be written when the template is missing")
}

func TestApp_MalformedTemplateFailsBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	template := filepath.Join(dir, "en.json")
	require.NoError(t, os.WriteFile(template, []byte(`{"title": `), 0o644))

	cfg := &config.Config{
		TemplatePath: template,
		OutputDir:    dir,
		Languages:    []string{"ja", "nl"},
		UILocale:     "en",
	}
	_, run := newTestApp(t, cfg)

	require.Error(t, run())
	assert.NoFileExists(t, filepath.Join(dir, "ja.json"))
	assert.NoFileExists(t, filepath.Join(dir, "nl.json"))
}

func TestApp_ReportsWriteFailuresAndContinues(t *testing.T) {
	dir := t.TempDir()
	template := filepath.Join(dir, "en.json")
	require.NoError(t, os.WriteFile(template, []byte(`{"title": "Hello"}`), 0o644))
	// A file standing where the output directory should go.
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	cfg := &config.Config{
		TemplatePath: template,
		OutputDir:    filepath.Join(blocked, "locales"),
		Languages:    []string{"ja", "nl"},
		UILocale:     "en",
	}
	buf, run := newTestApp(t, cfg)

	require.Error(t, run())
	assert.Contains(t, buf.String(), "scaffold.failed")
	assert.Contains(t, buf.String(), "scaffold.summary_failures")
}
