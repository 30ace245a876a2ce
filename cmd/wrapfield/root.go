package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/wrapfield"
	"github.com/iw2rmb/wrapfield/internal/config"
	"github.com/iw2rmb/wrapfield/internal/log"
)

func init() {
	// Query the background color before any program starts so the terminal's
	// reply does not race with Bubble Tea's input reader.
	_ = lipgloss.HasDarkBackground()
}

type options struct {
	cfgFile string
	file    string
	output  string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "wrapfield",
		Short:         "A word-wrapping text field for the terminal",
		Long:          `wrapfield opens a soft-wrapping text field. Text re-flows on every edit and resize while the cursor stays on the same character.`,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return readConfigFile(v, opts.cfgFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return runEditor(cmd, cfg, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "",
		"config file (default: .wrapfield/config.yaml or ~/.config/wrapfield/config.yaml)")
	cmd.PersistentFlags().Bool("debug", false, "write debug logs to log_path")

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "load initial text from file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the final text to file on exit")
	cmd.Flags().Int("width", 0, "field width in cells (0 = terminal width)")
	cmd.Flags().Int("height", 0, "field height in cells (0 = terminal height)")
	cmd.Flags().Int("padding", 0, "inset between frame and text")
	cmd.Flags().String("placeholder", "", "text shown while the field is empty and unfocused")

	_ = v.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))
	for _, name := range []string{"width", "height", "padding", "placeholder"} {
		_ = v.BindPFlag(name, cmd.Flags().Lookup(name))
	}

	cmd.AddCommand(newVersionCmd(), newConfigCmd(v, opts))
	return cmd
}

// readConfigFile locates and reads the config file into v. A missing file is
// not an error; defaults apply.
func readConfigFile(v *viper.Viper, explicit string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}
	home, _ := os.UserHomeDir()

	path := config.FindConfig(explicit, wd, home)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

func runEditor(cmd *cobra.Command, cfg config.Config, opts *options) error {
	if cfg.Debug {
		cleanup, err := log.InitWithTeaLog(cfg.LogPath, "wrapfield")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer cleanup()
		level, _ := log.ParseLevel(cfg.LogLevel)
		log.SetMinLevel(level)
	}
	log.Info(log.CatCLI, "Starting", "version", wrapfield.Version(), "config", cmd.Flag("config").Value.String())

	text := ""
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", opts.file, err)
		}
		text = string(data)
	}

	model := newApp(cfg, text)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	if opts.output != "" {
		out := final.(app).editor.Text()
		if err := os.WriteFile(opts.output, []byte(out), 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", opts.output, err)
		}
		log.Info(log.CatCLI, "Wrote output", "path", opts.output, "bytes", len(out))
	}
	return nil
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", wrapfield.Version(), commit, date)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), wrapfield.VersionTag())
			return err
		},
	}
}

func newConfigCmd(v *viper.Viper, opts *options) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := opts.cfgFile
			if path == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("locating home directory: %w", err)
				}
				path = config.UserConfigPath(home)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.WriteDefaultConfig(path); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cfgCmd.AddCommand(initCmd, showCmd)
	return cfgCmd
}
