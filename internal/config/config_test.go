package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usbcopy/internal/domain"
)

func resolve(t *testing.T, f Flags) (Config, error) {
	t.Helper()
	// Hermetic home so a real ~/.config/usbcopy/config.toml never leaks in.
	t.Setenv("HOME", t.TempDir())
	return Resolve(f, nil)
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := resolve(t, Flags{Source: "/src"})
	require.NoError(t, err)

	assert.Equal(t, "/src", cfg.SourceDir)
	assert.Equal(t, DefaultReportPath, cfg.ReportPath)
	assert.Equal(t, domain.DefaultIgnoreDirs, cfg.IgnoreDirs)
	assert.Equal(t, domain.DefaultIgnoreExts, cfg.IgnoreExts)
	assert.Equal(t, domain.DefaultIgnoreFiles, cfg.IgnoreFiles)
	assert.False(t, cfg.DryRun)
}

func TestResolveRequiresSource(t *testing.T) {
	_, err := resolve(t, Flags{})
	assert.ErrorContains(t, err, "source is required")
}

func TestResolveSplitsFlagLists(t *testing.T) {
	cfg, err := resolve(t, Flags{
		Source:     "/src",
		IgnoreDirs: "tmp, scratch ,,cache",
		IgnoreExts: ".iso",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"tmp", "scratch", "cache"}, cfg.IgnoreDirs)
	assert.Equal(t, []string{".iso"}, cfg.IgnoreExts)
	// Untouched lists keep their defaults.
	assert.Equal(t, domain.DefaultIgnoreFiles, cfg.IgnoreFiles)
}

func TestResolveEnvFallback(t *testing.T) {
	t.Setenv("USBCOPY_SOURCE", "/from-env")
	t.Setenv("USBCOPY_DRY_RUN", "true")
	t.Setenv("USBCOPY_REPORT", "report.txt")

	cfg, err := resolve(t, Flags{})
	require.NoError(t, err)

	assert.Equal(t, "/from-env", cfg.SourceDir)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, "report.txt", cfg.ReportPath)
}

func TestFlagsWinOverEnv(t *testing.T) {
	t.Setenv("USBCOPY_SOURCE", "/from-env")

	cfg, err := resolve(t, Flags{Source: "/from-flag"})
	require.NoError(t, err)

	assert.Equal(t, "/from-flag", cfg.SourceDir)
}

func TestResolveReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
ignore_dirs = ["target"]
ignore_files = ["desktop.ini"]
report_path = "from-file.txt"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := resolve(t, Flags{Source: "/src", ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, []string{"target"}, cfg.IgnoreDirs)
	assert.Equal(t, []string{"desktop.ini"}, cfg.IgnoreFiles)
	assert.Equal(t, "from-file.txt", cfg.ReportPath)
	// Lists absent from the file keep their defaults.
	assert.Equal(t, domain.DefaultIgnoreExts, cfg.IgnoreExts)
}

func TestFlagListsWinOverConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`ignore_dirs = ["target"]`), 0o644))

	cfg, err := resolve(t, Flags{Source: "/src", ConfigFile: path, IgnoreDirs: "only-this"})
	require.NoError(t, err)

	assert.Equal(t, []string{"only-this"}, cfg.IgnoreDirs)
}

func TestMissingCustomConfigFileFails(t *testing.T) {
	_, err := resolve(t, Flags{Source: "/src", ConfigFile: "/nope/config.toml"})
	assert.ErrorContains(t, err, "not found")
}

func TestMissingDefaultConfigFileIsFine(t *testing.T) {
	cfg, err := resolve(t, Flags{Source: "/src"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultIgnoreDirs, cfg.IgnoreDirs)
}

func TestUnknownConfigKeysWarn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`ignore_dir = ["typo"]`), 0o644))

	var warned []string
	t.Setenv("HOME", t.TempDir())
	_, err := Resolve(Flags{Source: "/src", ConfigFile: path}, func(format string, args ...any) {
		warned = append(warned, format)
	})
	require.NoError(t, err)
	assert.NotEmpty(t, warned)
}

func TestExclusionsBuiltFromResolvedLists(t *testing.T) {
	cfg, err := resolve(t, Flags{Source: "/src", IgnoreExts: ".iso"})
	require.NoError(t, err)

	excl := cfg.Exclusions()
	assert.True(t, excl.ExcludesFile("disc.iso"))
	assert.False(t, excl.ExcludesFile("app.exe"))
	assert.True(t, excl.ExcludesDir("node_modules"))
}
