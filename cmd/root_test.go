package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/taginput/internal/config"
	"github.com/zjrosen/taginput/internal/taginput"
)

func newTestViper() *viper.Viper {
	return viper.NewWithOptions(viper.KeyDelimiter("::"))
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	path := writeConfig(t, `
input:
  tag_backspace_delete_behavior: delete-confirm
  confirm_tag_delete: true
output:
  separator: ","
`)

	cfg, err := loadConfig(newTestViper(), path)

	require.NoError(t, err)
	require.Equal(t, "delete-confirm", cfg.Input.BackspaceBehavior)
	require.True(t, cfg.Input.ConfirmTagDelete)
	require.Equal(t, ",", cfg.Output.Separator)
	// Unset keys fall back to defaults.
	require.True(t, cfg.Input.ShowRemoveButton)
	require.Equal(t, config.Defaults().Input.Width, cfg.Input.Width)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := loadConfig(newTestViper(), filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
input:
  tag_backspace_delete_behavior: delete
  show_remove_button: true
`)
	v := newTestViper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("backspace", "", "")
	flags.Bool("confirm-delete", false, "")
	flags.Bool("show-remove", true, "")
	flags.Bool("blur-on-submit", false, "")
	flags.String("separator", "", "")
	bindFlags(v, flags)
	require.NoError(t, flags.Parse([]string{"--backspace=delete-modify", "--show-remove=false", `--separator=\t`}))

	cfg, err := loadConfig(v, path)

	require.NoError(t, err)
	require.Equal(t, taginput.ModeDeleteModify, cfg.Options().BackspaceBehavior)
	require.False(t, cfg.Input.ShowRemoveButton)
	require.Equal(t, "\t", cfg.Output.Separator)
}

func TestLoadConfig_InvalidBehaviorFailsValidation(t *testing.T) {
	path := writeConfig(t, "input:\n  tag_backspace_delete_behavior: sideways\n")

	cfg, err := loadConfig(newTestViper(), path)

	require.NoError(t, err)
	require.Error(t, cfg.Validate())
}

func TestUnescape(t *testing.T) {
	require.Equal(t, "\n", unescape(`\n`))
	require.Equal(t, "a\tb", unescape(`a\tb`))
	require.Equal(t, ", ", unescape(", "))
}

func TestWriteTags(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTags(&buf, []string{"red", "blue"}, "\n"))
	require.Equal(t, "red\nblue\n", buf.String())

	buf.Reset()
	require.NoError(t, writeTags(&buf, []string{"red", "blue"}, ","))
	require.Equal(t, "red,blue\n", buf.String())

	buf.Reset()
	require.NoError(t, writeTags(&buf, nil, ","))
	require.Empty(t, buf.String())
}

func TestRootCommandFlags(t *testing.T) {
	for name := range flagKeys {
		require.NotNil(t, rootCmd.Flags().Lookup(name), "flag %s", name)
	}
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("debug"))
	require.NotNil(t, rootCmd.Flags().Lookup("tag"))
	require.NotNil(t, rootCmd.Flags().Lookup("save"))
}

func TestDebugEnabled_FromConfigFile(t *testing.T) {
	t.Setenv("TAGINPUT_DEBUG", "")
	prev := debugFlag
	debugFlag = false
	t.Cleanup(func() { debugFlag = prev })

	cfg, err := loadConfig(newTestViper(), writeConfig(t, "debug: true\n"))
	require.NoError(t, err)
	require.True(t, debugEnabled(cfg))

	cfg, err = loadConfig(newTestViper(), writeConfig(t, "debug: false\n"))
	require.NoError(t, err)
	require.False(t, debugEnabled(cfg))

	t.Setenv("TAGINPUT_DEBUG", "1")
	require.True(t, debugEnabled(cfg))
}
