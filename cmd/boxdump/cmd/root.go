// Copyright 2026 The PKHeX Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kang1806/PKHeX/internal/config"
)

var (
	errUnknownFormat = errors.New("unknown record format")
	errOutOfRange    = errors.New("offset past end of file")
)

type envKey struct{}

// env is what every subcommand needs once flags and config are merged.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "boxdump",
		Short: "Inspect box storage files and record lists",
		Long: `boxdump decodes Game Boy era storage dumps: flat box storage
files made of fixed-size stored records, and serialized record lists
such as the party.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), envKey{}, e))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "YAML layout file")
	flags.StringP("format", "f", "", "record format: gen1 or gen2")
	flags.Bool("japanese", false, "use Japanese string lengths")
	flags.String("log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(newBoxesCmd(), newListCmd())
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func envFrom(cmd *cobra.Command) (*env, error) {
	e, ok := cmd.Context().Value(envKey{}).(*env)
	if !ok {
		return nil, fmt.Errorf("environment not found in context")
	}
	return e, nil
}

// loadEnv applies the config file, if any, and then explicit flags.
func loadEnv(cmd *cobra.Command) (*env, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.Changed("format") {
		name, _ := flags.GetString("format")
		gen, err := parseFormat(name)
		if err != nil {
			return nil, err
		}
		cfg.Layout.Generation = gen
	}
	if flags.Changed("japanese") {
		cfg.Layout.Japanese, _ = flags.GetBool("japanese")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	overrideInt(flags, "start", &cfg.Layout.Start)
	overrideInt(flags, "slots", &cfg.Layout.SlotsPerBox)
	overrideInt(flags, "offset", &cfg.List.Offset)
	overrideInt(flags, "capacity", &cfg.List.Capacity)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := cfg.Logging.SlogLevel()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return &env{cfg: cfg, logger: logger}, nil
}

func overrideInt(flags *pflag.FlagSet, name string, dst *int) {
	if flags.Changed(name) {
		*dst, _ = flags.GetInt(name)
	}
}

func parseFormat(name string) (int, error) {
	switch name {
	case "gen1", "1":
		return 1, nil
	case "gen2", "2":
		return 2, nil
	}
	return 0, fmt.Errorf("%q: %w", name, errUnknownFormat)
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}
	out = append(out, '\n')
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
