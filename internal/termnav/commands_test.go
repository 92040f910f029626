package termnav

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns what it wrote to
// stdout. Flag state is reset afterwards.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(resetRootCmd)

	err := rootCmd.Execute()
	return out.String(), err
}

func resetRootCmd() {
	rootCmd.SetArgs(nil)
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	var walk func(cmd *cobra.Command)
	walk = func(cmd *cobra.Command) {
		cmd.Flags().VisitAll(reset)
		cmd.PersistentFlags().VisitAll(reset)
		for _, sub := range cmd.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
}

func TestVersionCmd(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "termnav 1.2.3")
	assert.Contains(t, out, "abc123")
}

func TestInitCmd_PrintsHook(t *testing.T) {
	out, err := execute(t, "init", "bash")
	require.NoError(t, err)

	hook, _ := ShellInit("bash")
	assert.Equal(t, string(hook), out)
}

func TestInitCmd_UnknownShell(t *testing.T) {
	_, err := execute(t, "init", "powershell")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported shell")
}

func TestInitCmd_Install(t *testing.T) {
	rc := filepath.Join(t.TempDir(), "config.fish")

	out, err := execute(t, "init", "fish", "--install", rc)
	require.NoError(t, err)
	assert.Empty(t, out, "install mode prints nothing on stdout")

	data, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.Contains(t, string(data), "function tn")
}

func TestConfigPathCmd(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "termnav.yaml")

	out, err := execute(t, "config", "path", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfgPath+"\n", out)
}

func TestConfigInitAndShow(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "sub", "config.yaml")

	_, err := execute(t, "config", "init", "--config", cfgPath)
	require.NoError(t, err)
	require.True(t, ConfigFileExists(cfgPath))

	_, err = execute(t, "config", "init", "--config", cfgPath)
	require.Error(t, err, "init must not overwrite an existing file")

	out, err := execute(t, "config", "show", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "results: 10")
	assert.Contains(t, out, "show_hidden: false")
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("results: 4\nforce: true\nshow_hidden: false\n"), 0644))
	t.Cleanup(resetRootCmd)

	require.NoError(t, rootCmd.ParseFlags([]string{"--config", cfgPath, "-a", "-s"}))
	cfg, err := resolveConfig(rootCmd)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Results, "unset flag keeps the file value")
	assert.True(t, cfg.Force)
	assert.True(t, cfg.ShowHidden)
	assert.True(t, cfg.Simple)
	assert.False(t, cfg.Indexed(), "simple mode drops indexes")
}

func TestResolveConfig_ResultsFlag(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	t.Cleanup(resetRootCmd)

	require.NoError(t, rootCmd.ParseFlags([]string{"--config", cfgPath, "-r", "3", "-n"}))
	cfg, err := resolveConfig(rootCmd)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Results)
	assert.True(t, cfg.NoIndex)
}

func TestResolveConfig_RejectsZeroResults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	t.Cleanup(resetRootCmd)

	require.NoError(t, rootCmd.ParseFlags([]string{"--config", cfgPath, "--results", "0"}))
	_, err := resolveConfig(rootCmd)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid config"))
}
