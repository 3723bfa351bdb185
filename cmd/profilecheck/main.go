package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/profilecheck/internal/config"
	"github.com/dshills/profilecheck/internal/explain"
	"github.com/dshills/profilecheck/internal/profile"
	"github.com/dshills/profilecheck/internal/source"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// checkFlags holds the parsed flags for the root command.
type checkFlags struct {
	profile    string
	profileSet bool
	configPath string
	verbose    bool
}

func main() {
	var flags checkFlags
	root := &cobra.Command{
		Use:           "profilecheck [profile]",
		Short:         "Check that a profile is valid",
		Long:          "profilecheck reads a profile from an argument, $PROFILECHECK_PROFILE, or a config file and reports whether it is valid.",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.profileSet = cmd.Flags().Changed("profile")
			return runCheck(cmd.Context(), args, flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := root.Flags()
	f.StringVar(&flags.profile, "profile", "", "Profile value to check (same as the positional argument)")
	f.StringVar(&flags.configPath, "config", "", "YAML config file (default $"+config.EnvPath+")")
	f.BoolVar(&flags.verbose, "verbose", false, "Log processing steps to stderr")

	if err := root.ExecuteContext(context.Background()); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runCheck(ctx context.Context, args []string, flags checkFlags, stdout, stderr io.Writer) error {
	// --- Step 1: Validate flags ---
	if flags.profileSet && len(args) > 0 {
		return codeError(3, "invalid flags: profile given both as argument and --profile")
	}

	// --- Step 2: Load config, if any ---
	var cfg *config.Config
	if path := config.Path(flags.configPath); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return codeError(3, "loading config: %s", err)
		}
	}

	logger := newLogger(stderr, flags.verbose || (cfg != nil && cfg.Verbose))

	// --- Step 3: Resolve profile ---
	src := source.Chain(profileSources(args, flags, cfg)...)
	value, err := source.Resolve(ctx, src)
	if err != nil {
		return codeError(3, "retrieving profile: %s", err)
	}
	logger.Info("profile resolved", "from", src.Name())

	// --- Step 4: Check and report ---
	outcome := profile.Check(value)
	if outcome == profile.OutcomeInvalid {
		logger.Info("profile rejected", "diff", explain.Diff(value))
	}
	if err := profile.Report(stdout, outcome); err != nil {
		return codeError(3, "%s", err)
	}

	return nil
}

// profileSources returns the retrieval sources in precedence order:
// argument or --profile, then the environment, then the config file.
func profileSources(args []string, flags checkFlags, cfg *config.Config) []source.Source {
	var sources []source.Source
	switch {
	case len(args) > 0:
		sources = append(sources, source.Static("argument", args[0]))
	case flags.profileSet:
		sources = append(sources, source.Static("--profile", flags.profile))
	}
	sources = append(sources, source.Env(source.EnvProfile))
	if cfg != nil {
		sources = append(sources, source.Config(cfg))
	}
	return sources
}

// newLogger returns a text logger on w. Info records are only emitted in
// verbose mode.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
