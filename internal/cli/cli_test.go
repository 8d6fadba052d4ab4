package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Justice-Caban/Irodori/internal/color"
	"github.com/Justice-Caban/Irodori/internal/config"
	"github.com/Justice-Caban/Irodori/internal/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	config     string
	stylesheet string
}

func newEnv(t *testing.T) env {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	return env{
		config:     filepath.Join(dir, "config.yaml"),
		stylesheet: filepath.Join(dir, "data", "irodori", "theme.css"),
	}
}

// resetFlags restores every flag to its default; the command tree is global
// so values would otherwise leak between runs
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func run(t *testing.T, e env, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config", e.config}, args...))

	err := Execute(context.Background())
	return stdout.String(), stderr.String(), err
}

func readStylesheet(t *testing.T, e env) string {
	t.Helper()
	data, err := os.ReadFile(e.stylesheet)
	require.NoError(t, err)
	return string(data)
}

func TestApply_WritesStylesheetAndPersists(t *testing.T) {
	e := newEnv(t)

	out, _, err := run(t, e, "apply", "--primary", "#ff0000")
	require.NoError(t, err)
	assert.Contains(t, out, e.stylesheet)

	sheet := readStylesheet(t, e)
	assert.Contains(t, sheet, "--ion-color-primary: #ff0000;")
	assert.Contains(t, sheet, "--ion-color-primary-rgb: 255,0,0;")
	assert.Contains(t, sheet, "--ion-color-secondary: #0cd1e8;")

	out, _, err = run(t, e, "current")
	require.NoError(t, err)
	assert.Contains(t, out, "--ion-color-primary: #ff0000;")
}

func TestApply_Preset(t *testing.T) {
	e := newEnv(t)

	_, _, err := run(t, e, "apply", "--preset", "dark")
	require.NoError(t, err)

	dark, err := palette.Preset("dark")
	require.NoError(t, err)
	want := color.MustParse(dark[palette.Primary]).String()
	assert.Contains(t, readStylesheet(t, e), "--ion-color-primary: "+want+";")
}

func TestApply_InvalidColorAppliesNothing(t *testing.T) {
	e := newEnv(t)

	_, _, err := run(t, e, "apply", "--danger", "not-a-color")
	require.Error(t, err)
	assert.ErrorIs(t, err, color.ErrInvalidColor)
	assert.NoFileExists(t, e.stylesheet)

	_, stderr, err := run(t, e, "current")
	require.NoError(t, err)
	assert.Contains(t, stderr, "No stored theme")
}

func TestApply_UnknownPreset(t *testing.T) {
	e := newEnv(t)

	_, _, err := run(t, e, "apply", "--preset", "sepia")
	assert.ErrorIs(t, err, palette.ErrUnknownPreset)
}

func TestApply_PaletteFile(t *testing.T) {
	e := newEnv(t)
	file := filepath.Join(t.TempDir(), "brand.toml")
	require.NoError(t, os.WriteFile(file, []byte("primary = \"#112233\"\ntertiary = \"#445566\"\n"), 0644))

	// a role flag wins over the file
	_, _, err := run(t, e, "apply", "--palette", file, "--tertiary", "#000000")
	require.NoError(t, err)

	sheet := readStylesheet(t, e)
	assert.Contains(t, sheet, "--ion-color-primary: #112233;")
	assert.Contains(t, sheet, "--ion-color-tertiary: #000000;")
}

func TestApply_PaletteFileUnknownRole(t *testing.T) {
	e := newEnv(t)
	file := filepath.Join(t.TempDir(), "brand.toml")
	require.NoError(t, os.WriteFile(file, []byte("accent = \"#112233\"\n"), 0644))

	_, _, err := run(t, e, "apply", "--palette", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accent")
}

func TestApply_MemorySurfacePrintsVariables(t *testing.T) {
	e := newEnv(t)
	t.Setenv("IRODORI_SURFACE_KIND", "memory")

	out, _, err := run(t, e, "apply", "--primary", "#ff0000")
	require.NoError(t, err)
	assert.Contains(t, out, "--ion-color-primary: #ff0000;")
	assert.NoFileExists(t, e.stylesheet)
}

func TestApply_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	e := newEnv(t)

	_, _, err := run(t, e, "apply", "--primary", "#ff0000")
	require.NoError(t, err)
	_, _, err = run(t, e, "apply")
	require.NoError(t, err)

	assert.Contains(t, readStylesheet(t, e), "--ion-color-primary: #3880ff;")
}

func TestGenerate(t *testing.T) {
	e := newEnv(t)

	out, _, err := run(t, e, "generate")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 62)
	assert.Equal(t, "--ion-color-base: #f4f5f8;", lines[0])
	assert.NoFileExists(t, e.stylesheet, "generate does not apply")

	out, _, err = run(t, e, "generate", "--root", "--primary", "rgb(255, 0, 0)")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, ":root {\n"))
	assert.Contains(t, out, "  --ion-color-primary: rgb(255, 0, 0);\n")
	assert.Contains(t, out, "  --ion-color-primary-rgb: 255,0,0;\n")
}

func TestSetVar(t *testing.T) {
	e := newEnv(t)

	_, _, err := run(t, e, "apply")
	require.NoError(t, err)
	stored, _, err := run(t, e, "current")
	require.NoError(t, err)

	out, _, err := run(t, e, "set-var", "color-primary", "#123456")
	require.NoError(t, err)
	assert.Contains(t, out, "--ion-color-primary")

	sheet := readStylesheet(t, e)
	assert.Contains(t, sheet, "--ion-color-primary: #123456;")
	assert.Contains(t, sheet, "--ion-color-secondary: #0cd1e8;", "other variables stay")

	after, _, err := run(t, e, "current")
	require.NoError(t, err)
	assert.Equal(t, stored, after, "set-var does not change the stored theme")
}

func TestPresets(t *testing.T) {
	e := newEnv(t)

	out, _, err := run(t, e, "presets")
	require.NoError(t, err)

	for _, name := range palette.PresetNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "* "+palette.DefaultPreset)
}

func TestPreview(t *testing.T) {
	e := newEnv(t)

	out, _, err := run(t, e, "preview", "--preset", "neon")
	require.NoError(t, err)
	for _, role := range palette.Roles() {
		assert.Contains(t, out, string(role))
	}

	_, _, err = run(t, e, "preview", "--light", "#zzzzzz")
	assert.ErrorIs(t, err, color.ErrInvalidColor)
}

func TestCurrent_Preview(t *testing.T) {
	e := newEnv(t)

	_, _, err := run(t, e, "apply", "--primary", "#ff0000")
	require.NoError(t, err)

	out, _, err := run(t, e, "current", "--preview")
	require.NoError(t, err)
	for _, role := range palette.Roles() {
		assert.Contains(t, out, string(role))
	}
	assert.Contains(t, out, "255,0,0", "rgb triple read back from the stored block")
	assert.NotContains(t, out, "--ion-color-primary")
}

func TestConfigPath(t *testing.T) {
	e := newEnv(t)

	out, _, err := run(t, e, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "config:     "+e.config)
	assert.Contains(t, out, "stylesheet: "+e.stylesheet)
	assert.Contains(t, out, filepath.Join(filepath.Dir(e.stylesheet), "irodori.db"))
}

func TestBuildSurface(t *testing.T) {
	_, err := buildSurface(config.SurfaceConfig{Kind: config.SurfaceFile})
	assert.Error(t, err)

	_, err = buildSurface(config.SurfaceConfig{Kind: "canvas", Path: "x"})
	assert.Error(t, err)

	s, err := buildSurface(config.SurfaceConfig{Kind: config.SurfaceMemory})
	require.NoError(t, err)
	assert.Equal(t, "memory", surfaceDescription(s))
}
