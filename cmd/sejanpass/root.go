package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sejanpass/sejanpass-go/internal/clipboard"
	"github.com/sejanpass/sejanpass-go/internal/generator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// app carries the state shared by every subcommand. Tests replace the
// terminal hooks and the clipboard.
type app struct {
	v       *viper.Viper
	cfgFile string
	home    string

	clipboard    clipboard.Sink
	stdoutIsTTY  func() bool
	stdinIsTTY   func() bool
	readPassword func() ([]byte, error)
}

func newApp() *app {
	return &app{
		v:            viper.New(),
		clipboard:    clipboard.System{},
		stdoutIsTTY:  func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
		stdinIsTTY:   func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		readPassword: func() ([]byte, error) { return term.ReadPassword(int(os.Stdin.Fd())) },
	}
}

// newRootCmd builds the command tree around a. Each call gets its own
// flag set so tests can run commands in isolation.
func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sejanpass",
		Short: "sejanpass generates random passwords.",
		Long: `sejanpass generates random passwords from a selectable set of
character classes and rates how strong a configuration is.

Defaults are read from $HOME/.sejanpass.yaml and SEJANPASS_* variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}

	cmd.Version = version
	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.sejanpass.yaml)")

	cmd.AddCommand(newGenerateCmd(a))
	cmd.AddCommand(newStrengthCmd(a))
	cmd.AddCommand(newHashCmd(a))

	return cmd
}

// initConfig sets defaults and reads the optional config file. A missing
// default file is fine; a missing file named by --config is not.
func (a *app) initConfig() error {
	a.v.SetDefault("length", generator.DefaultLength)
	a.v.SetDefault("classes", generator.AllClasses.Names())
	a.v.SetDefault("count", 1)
	a.v.SetDefault("policy.min_length", generator.DefaultMinLength)
	a.v.SetDefault("policy.max_length", generator.DefaultMaxLength)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home := a.home
		if home == "" {
			var err error
			if home, err = os.UserHomeDir(); err != nil {
				return fmt.Errorf("locating home directory: %w", err)
			}
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".sejanpass")
	}

	a.v.SetEnvPrefix("SEJANPASS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && a.cfgFile == "" {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// policy returns the configured length bounds.
func (a *app) policy() generator.Policy {
	return generator.Policy{
		MinLength: a.v.GetInt("policy.min_length"),
		MaxLength: a.v.GetInt("policy.max_length"),
	}
}

// selection reads the length and class set shared by generate and strength.
// Flags must already be bound.
func (a *app) selection() (int, generator.ClassSet, error) {
	classes, err := generator.ParseClasses(a.v.GetStringSlice("classes"))
	if err != nil {
		return 0, 0, err
	}
	return a.v.GetInt("length"), classes, nil
}

func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("length", "l", generator.DefaultLength, "password length")
	cmd.Flags().StringSlice("classes", generator.AllClasses.Names(), "character classes (digits, uppercase, lowercase, symbols)")
}

func boolPtr(b bool) *bool {
	return &b
}
