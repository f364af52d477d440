package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Nil(t, b.fileConfig)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderAppliesDefaults verifies that building with no
// sources yields the defaults.
func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultReportFormat, cfg.Report.Format)
	assert.Equal(t, DefaultReportVariant, cfg.Report.Variant)
	assert.Empty(t, cfg.Report.Output)
	assert.False(t, cfg.Report.Interactive)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesWin verifies file < env < flags priority.
func TestBuild_LaterSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.fileConfig = &StructuredConfig{
		Log:    Log{Level: "debug"},
		Report: Report{Format: "table", Variant: "library", Output: "from-file.txt"},
	}
	b.configs = append(b.configs, &StructuredConfig{Report: Report{Format: "json", Variant: "library"}})
	b.flags = &flagValues{
		cfg:     &StructuredConfig{Report: Report{Format: "styled", Variant: "binary"}},
		changed: map[string]bool{FlagFormat: true, FlagVariant: true},
	}

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "styled", cfg.Report.Format)
	assert.Equal(t, "binary", cfg.Report.Variant)
	assert.Equal(t, "from-file.txt", cfg.Report.Output)
}

func TestBuild_NormalisesValues(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Report: Report{Format: "JSON", Variant: " Both "}})

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Report.Format)
	assert.Equal(t, "both", cfg.Report.Variant)
}

func TestBuild_InvalidFormat(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Report: Report{Format: "yaml"}})

	cfg, err := b.build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidReportConfigs)
}

func TestBuild_InvalidVariant(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Report: Report{Variant: "server"}})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrInvalidReportConfigs)
}

func TestBuild_InvalidLogLevel(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Log: Log{Level: "loud"}})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_PathFromLastSource(t *testing.T) {
	first := writeTempConfig(t, "first.json", `{"report": {"format": "table"}}`)
	second := writeTempConfig(t, "second.toml", "[report]\nformat = \"json\"\n")

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{ConfigFilePath: first},
		&StructuredConfig{ConfigFilePath: second},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.NotNil(t, b.fileConfig)
	assert.Equal(t, "json", b.fileConfig.Report.Format)
	assert.Equal(t, second, b.fileConfig.ConfigFilePath)
}

func TestWithFile_FlagPathWins(t *testing.T) {
	fromEnv := writeTempConfig(t, "env.json", `{"report": {"format": "table"}}`)
	fromFlag := writeTempConfig(t, "flag.json", `{"report": {"format": "json"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: fromEnv})
	b.withFlags(newFlagSet(t, "-c", fromFlag)).withFile()

	require.NoError(t, b.err)
	require.NotNil(t, b.fileConfig)
	assert.Equal(t, fromFlag, b.fileConfig.ConfigFilePath)
}

func TestWithFile_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withFile()

	assert.NoError(t, b.err)
	assert.Nil(t, b.fileConfig)
}

func TestWithFile_BrokenFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "/definitely/not/here.json"})

	_, err := b.withFile().build()

	require.Error(t, err)
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoad_EnvFlagsAndFile(t *testing.T) {
	path := writeTempConfig(t, "config.toml", `
[log]
level = "error"

[report]
format = "table"
output = "from-file.txt"
`)
	setEnvVars(t, map[string]string{
		"CONFIG":         path,
		"REPORT_FORMAT":  "json",
		"REPORT_VARIANT": "library",
	})
	t.Chdir(t.TempDir())
	fs := newFlagSet(t, "--variant", "binary")

	cfg, err := Load(fs)

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Report.Format)
	assert.Equal(t, "binary", cfg.Report.Variant)
	assert.Equal(t, "from-file.txt", cfg.Report.Output)
	assert.Equal(t, path, cfg.ConfigFilePath)
}

func TestLoad_ReadsDotEnvFromWorkingDir(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()
	t.Chdir(dir)
	writeDotEnv(t, dir, "REPORT_FORMAT=styled\n")

	cfg, err := Load(newFlagSet(t))

	require.NoError(t, err)
	assert.Equal(t, "styled", cfg.Report.Format)
}

func TestLoad_ExplicitFalseFlagOverridesEnv(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"REPORT_INTERACTIVE": "true",
		"REPORT_OUTPUT":      "from-env.txt",
	})
	t.Chdir(t.TempDir())

	cfg, err := Load(newFlagSet(t, "--interactive=false", "--output="))

	require.NoError(t, err)
	assert.False(t, cfg.Report.Interactive)
	assert.Empty(t, cfg.Report.Output)
}

func TestLoad_UnsetFlagKeepsEnv(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"REPORT_INTERACTIVE": "true"})
	t.Chdir(t.TempDir())

	cfg, err := Load(newFlagSet(t))

	require.NoError(t, err)
	assert.True(t, cfg.Report.Interactive)
}
