package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zjrosen/taginput/internal/app"
	"github.com/zjrosen/taginput/internal/config"
	"github.com/zjrosen/taginput/internal/log"
	"github.com/zjrosen/taginput/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const localConfigPath = ".taginput/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	saveFlag  bool
	initial   []string

	// Custom key delimiter keeps dotted color tokens like "tag.bg" intact.
	vp     = viper.NewWithOptions(viper.KeyDelimiter("::"))
	cfg    config.Config
	cfgErr error
)

var rootCmd = &cobra.Command{
	Use:   "taginput",
	Short: "Enter a list of tags in the terminal",
	Long: `taginput opens a tag entry field. Type a tag and press enter to add it,
backspace on an empty field to remove the last one, esc to finish.
The committed tags are printed to stdout, one per line by default.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/taginput/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a debug log to debug.log (or $TAGINPUT_DEBUG_LOG)")

	rootCmd.Flags().String("backspace", "",
		"backspace on an empty field: delete, delete-modify or delete-confirm")
	rootCmd.Flags().Bool("confirm-delete", false,
		"ask before the remove button drops a tag")
	rootCmd.Flags().Bool("show-remove", true,
		"show a remove button on every tag")
	rootCmd.Flags().Bool("blur-on-submit", false,
		"finish editing after every submit")
	rootCmd.Flags().String("separator", "",
		`separator printed between tags on exit (default "\n")`)
	rootCmd.Flags().StringSliceVarP(&initial, "tag", "t", nil,
		"start with this tag (repeatable)")
	rootCmd.Flags().BoolVar(&saveFlag, "save", false,
		"write the effective input settings back to the config file")

	bindFlags(vp, rootCmd.Flags())
}

// flagKeys maps command line flags to their config keys.
var flagKeys = map[string]string{
	"backspace":      "input::tag_backspace_delete_behavior",
	"confirm-delete": "input::confirm_tag_delete",
	"show-remove":    "input::show_remove_button",
	"blur-on-submit": "input::blur_on_submit",
	"separator":      "output::separator",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for name, key := range flagKeys {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

func setDefaults(v *viper.Viper) {
	defaults := config.Defaults()
	v.SetDefault("input::confirm_tag_delete", defaults.Input.ConfirmTagDelete)
	v.SetDefault("input::tag_backspace_delete_behavior", defaults.Input.BackspaceBehavior)
	v.SetDefault("input::show_remove_button", defaults.Input.ShowRemoveButton)
	v.SetDefault("input::blur_on_submit", defaults.Input.BlurOnSubmit)
	v.SetDefault("input::placeholder", defaults.Input.Placeholder)
	v.SetDefault("input::width", defaults.Input.Width)
	v.SetDefault("output::separator", defaults.Output.Separator)
}

func initConfig() {
	cfg, cfgErr = loadConfig(vp, cfgFile)
}

// loadConfig reads the config file into a Config. Lookup order:
//  1. explicit (the --config flag)
//  2. .taginput/config.yaml (current directory)
//  3. ~/.config/taginput/config.yaml (user config, created when missing)
func loadConfig(v *viper.Viper, explicit string) (config.Config, error) {
	setDefaults(v)

	home, _ := os.UserHomeDir()
	userPath := filepath.Join(home, ".config", "taginput", "config.yaml")

	switch {
	case explicit != "":
		v.SetConfigFile(explicit)
	case fileExists(localConfigPath):
		v.SetConfigFile(localConfigPath)
	default:
		v.AddConfigPath(filepath.Dir(userPath))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config.Config{}, fmt.Errorf("reading config: %w", err)
		}
		// No config anywhere: create the commented default and carry on
		// with defaults if that fails.
		if writeErr := config.WriteDefaultConfig(userPath); writeErr == nil {
			v.SetConfigFile(userPath)
			_ = v.ReadInConfig()
		}
	}

	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return config.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	c.Output.Separator = unescape(c.Output.Separator)
	return c, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// unescape turns the two-character sequences \n and \t typed on a command
// line into the characters they name.
func unescape(s string) string {
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(s)
}

// debugEnabled reports whether debug logging was asked for by flag,
// environment or the config file's debug key.
func debugEnabled(c config.Config) bool {
	return debugFlag || os.Getenv("TAGINPUT_DEBUG") != "" || c.Debug
}

func runApp(cmd *cobra.Command, _ []string) error {
	if cfgErr != nil {
		return cfgErr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if debugEnabled(cfg) {
		logPath := os.Getenv("TAGINPUT_DEBUG_LOG")
		if logPath == "" {
			logPath = "debug.log"
		}
		cleanup, err := log.InitWithTeaLog(logPath, "taginput")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
		log.Info(log.CatConfig, "taginput starting", "config", vp.ConfigFileUsed(), "backspace", cfg.Input.BackspaceBehavior)
	}

	configFilePath := vp.ConfigFileUsed()
	if saveFlag {
		if configFilePath == "" {
			configFilePath = localConfigPath
		}
		if err := config.SaveInput(configFilePath, cfg.Input); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		log.Info(log.CatConfig, "Saved input settings", "path", configFilePath)
	}

	if err := applyTheme(cfg.Theme); err != nil {
		return err
	}

	zone.NewGlobal()

	// The UI draws on stderr so stdout carries only the tags.
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(os.Stderr))

	model := app.New(cfg, initial...)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(os.Stderr),
	)

	if configFilePath != "" && fileExists(configFilePath) {
		vp.OnConfigChange(func(e fsnotify.Event) {
			log.Debug(log.CatConfig, "Config changed", "path", e.Name, "op", e.Op.String())
			var next config.Config
			if err := vp.Unmarshal(&next); err != nil {
				log.ErrorErr(log.CatConfig, "Failed to decode reloaded config", err)
				return
			}
			p.Send(app.ThemeChangedMsg{Theme: next.Theme})
		})
		vp.WatchConfig()
	}

	final, err := p.Run()
	if m, ok := final.(app.Model); ok {
		defer m.Close()
		if err == nil {
			err = writeTags(cmd.OutOrStdout(), m.Tags(), cfg.Output.Separator)
		}
	} else {
		model.Close()
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func applyTheme(theme config.ThemeConfig) error {
	if err := styles.ApplyTheme(theme.Styles()); err != nil {
		return fmt.Errorf("invalid theme configuration: %w", err)
	}
	return nil
}

// writeTags prints tags joined by sep with a trailing newline. Nothing is
// printed for an empty list.
func writeTags(w io.Writer, tags []string, sep string) error {
	if len(tags) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, strings.Join(tags, sep))
	return err
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
