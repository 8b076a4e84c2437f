package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srclint/internal/configloader"
	"github.com/yaklabco/srclint/pkg/config"
	_ "github.com/yaklabco/srclint/pkg/lint/rules" // Register built-in rules
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func isolatedOpts(workDir string) configloader.LoadOptions {
	return configloader.LoadOptions{
		WorkingDir:         workDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	result, err := configloader.Load(context.Background(), isolatedOpts(t.TempDir()))
	require.NoError(t, err)

	assert.Empty(t, result.LoadedFrom)
	assert.Equal(t, string(config.SeverityWarning), result.Config.SeverityDefault)
	assert.Contains(t, result.Config.Suppression.Exempt, "blanket_disable")
	assert.True(t, result.Config.Backups.Enabled)
}

func TestLoad_ProjectConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".srclint.yml", `
severity_default: error
ignore:
  - "gen/**"
rules:
  trailing_whitespace:
    severity: info
`)

	result, err := configloader.Load(context.Background(), isolatedOpts(dir))
	require.NoError(t, err)

	assert.Len(t, result.LoadedFrom, 1)
	assert.Equal(t, "error", result.Config.SeverityDefault)
	assert.Equal(t, []string{"gen/**"}, result.Config.Ignore)

	rc, ok := result.Config.Rules["trailing_whitespace"]
	require.True(t, ok)
	require.NotNil(t, rc.Severity)
	assert.Equal(t, "info", *rc.Severity)
}

func TestLoad_RuleNamesNormalizedToIDs(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".srclint.yml", `
rules:
  no-trailing-whitespace:
    enabled: false
`)

	result, err := configloader.Load(context.Background(), isolatedOpts(dir))
	require.NoError(t, err)

	rc, ok := result.Config.Rules["trailing_whitespace"]
	require.True(t, ok, "name key should be normalized to the canonical ID")
	require.NotNil(t, rc.Enabled)
	assert.False(t, *rc.Enabled)
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".srclint.yml", "severity_default: info\n")
	explicit := writeConfig(t, dir, "custom.yml", "severity_default: error\n")

	opts := isolatedOpts(dir)
	opts.ExplicitPath = explicit

	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "error", result.Config.SeverityDefault)
	assert.Equal(t, explicit, result.LoadedFrom[len(result.LoadedFrom)-1])
}

func TestLoad_CLIConfigHighestPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".srclint.yml", "jobs: 2\nseverity_default: info\n")

	cli := &config.Config{Jobs: 8}
	opts := isolatedOpts(dir)
	opts.CLIConfig = cli

	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 8, result.Config.Jobs)
	assert.Equal(t, "info", result.Config.SeverityDefault)
}

func TestLoad_SuppressionExemptFromFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".srclint.yml", `
suppression:
  exempt:
    - blanket_disable
    - statement_position
`)

	result, err := configloader.Load(context.Background(), isolatedOpts(dir))
	require.NoError(t, err)

	assert.Equal(t, []string{"blanket_disable", "statement_position"}, result.Config.Suppression.Exempt)
}

func TestLoad_InvalidSeverityRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".srclint.yml", "severity_default: catastrophic\n")

	_, err := configloader.Load(context.Background(), isolatedOpts(dir))
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".srclint.yml", "rules: [not a map\n")

	_, err := configloader.Load(context.Background(), isolatedOpts(dir))
	require.Error(t, err)
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	opts := isolatedOpts(t.TempDir())
	opts.ExplicitPath = filepath.Join(opts.WorkingDir, "nope.yml")

	_, err := configloader.Load(context.Background(), opts)
	require.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SRCLINT_JOBS", "4")
	t.Setenv("SRCLINT_FIX", "true")
	t.Setenv("SRCLINT_IGNORE", "vendor/**,gen/**")

	cfg := config.NewConfig()
	require.NoError(t, configloader.LoadFromEnv(cfg))

	assert.Equal(t, 4, cfg.Jobs)
	assert.True(t, cfg.Fix)
	assert.Equal(t, []string{"vendor/**", "gen/**"}, cfg.Ignore)
}

func TestLoadFromEnv_InvalidValue(t *testing.T) {
	t.Setenv("SRCLINT_JOBS", "many")

	cfg := config.NewConfig()
	require.Error(t, configloader.LoadFromEnv(cfg))
}

func TestWriteConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yml")

	cfg := config.NewConfig()
	cfg.SeverityDefault = "error"
	require.NoError(t, configloader.WriteConfig(cfg, path))

	opts := isolatedOpts(dir)
	opts.ExplicitPath = path

	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "error", result.Config.SeverityDefault)
}
