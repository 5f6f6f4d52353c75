package main

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kbukum/passgen/config"
	"github.com/kbukum/passgen/errors"
	"github.com/kbukum/passgen/generator"
	"github.com/kbukum/passgen/logger"
	"github.com/kbukum/passgen/random"
)

// generateConfig holds flags for the generate command.
type generateConfig struct {
	length   int
	count    int
	unique   bool
	shuffle  bool
	maxTries int
	seed     string
}

// generateResult is the --json output of generate.
type generateResult struct {
	RequestID   string   `json:"request_id"`
	Length      int      `json:"length"`
	EntropyBits float64  `json:"entropy_bits"`
	Passwords   []string `json:"passwords"`
}

func newGenerateCmd(root *rootConfig) *cobra.Command {
	cfg := &generateConfig{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords",
		Long: `Generate passwords of the requested length, one per line.

Flags override the loaded configuration. --seed makes the output
reproducible and must only be used for testing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, root, cfg)
		},
	}

	cmd.Flags().IntVarP(&cfg.length, "length", "l", 16, "password length")
	cmd.Flags().IntVarP(&cfg.count, "count", "n", 1, "number of passwords")
	cmd.Flags().BoolVar(&cfg.unique, "unique", true, "replace repeated characters")
	cmd.Flags().BoolVar(&cfg.shuffle, "shuffle", true, "shuffle the accepted candidate")
	cmd.Flags().IntVar(&cfg.maxTries, "max-tries", config.DefaultMaxTries, "attempts before giving up")
	cmd.Flags().StringVar(&cfg.seed, "seed", "", "hex seed for a deterministic random source")

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootConfig, flags *generateConfig) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	applyGenerateFlags(cmd, cfg, flags)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	requestID := uuid.NewString()
	ctx = logger.ContextWithRequestID(ctx, requestID)

	log := logger.New(&cfg.Logging, cfg.Telemetry.ServiceName)
	logger.SetGlobalLogger(log)

	shutdown, err := startTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			log.WithError(err).Warn("telemetry shutdown failed")
		}
	}()

	opts := []generator.Option{generator.WithLogger(log.WithComponent("generator"))}
	if flags.seed != "" {
		src, err := seededSource(flags.seed)
		if err != nil {
			return err
		}
		opts = append(opts, generator.WithRandomSource(src))
	}

	gen, err := generator.NewFromConfig(cfg, opts...)
	if err != nil {
		return err
	}
	passwords, err := gen.GenerateN(ctx, flags.count, flags.length)
	if err != nil {
		return err
	}

	if root.jsonOutput {
		bits, err := gen.EntropyBits(flags.length)
		if err != nil {
			return err
		}
		return writeJSON(cmd, generateResult{
			RequestID:   requestID,
			Length:      flags.length,
			EntropyBits: bits,
			Passwords:   passwords,
		})
	}
	for _, pw := range passwords {
		fmt.Fprintln(cmd.OutOrStdout(), pw)
	}
	return nil
}

// applyGenerateFlags overrides cfg with the flags the user set explicitly.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config, flags *generateConfig) {
	if cmd.Flags().Changed("unique") {
		cfg.UniqueChars = flags.unique
	}
	if cmd.Flags().Changed("shuffle") {
		cfg.Shuffle = flags.shuffle
	}
	if cmd.Flags().Changed("max-tries") {
		cfg.MaxTries = flags.maxTries
	}
}

func seededSource(seed string) (random.Source, error) {
	b, err := hex.DecodeString(seed)
	if err != nil {
		return nil, errors.InvalidArgument("seed", seed, "must be hex encoded").WithCause(err)
	}
	src, err := random.NewStream(b)
	if err != nil {
		return nil, err
	}
	return src, nil
}
