package main

import (
	"fmt"
	"time"

	"fieldgen/core"
	"fieldgen/field"
	"fieldgen/logging"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// generateOptions holds the parsed flag values for one invocation.
type generateOptions struct {
	cfg    field.Config
	output string
}

// newRootCommand builds the fieldgen command. A fresh command is needed per
// invocation because flag values live on it.
func newRootCommand(logger *logging.Logger) *cobra.Command {
	opts := &generateOptions{cfg: field.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "fieldgen -o FILE [flags]",
		Short: "Field Generator",
		Long: "Generate a seed-reproducible binary field for a Game of Life simulator.\n\n" +
			"The output is a single line of space-separated tokens: width, height,\n" +
			"then width*height cells (0 or 1) in row-major order.",
		Version:       core.GetVersionInfo(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("output") {
				return core.ErrMissingArgument("output")
			}
			if err := opts.cfg.Validate(); err != nil {
				return core.ClassifyGenerateError(opts.output, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, logger, opts)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.Int64VarP(&opts.cfg.Seed, "seed", "s", field.DefaultSeed, "RNG seed")
	flags.IntVarP(&opts.cfg.Width, "width", "W", field.DefaultWidth, "field width")
	flags.IntVarP(&opts.cfg.Height, "height", "H", field.DefaultHeight, "field height")
	flags.Float64VarP(&opts.cfg.AliveProbability, "proba", "p", field.DefaultAliveProbability, "alive probability")
	flags.StringVarP(&opts.output, "output", "o", "", "output filename (required)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return core.ErrInvalidArgument(err.Error(), err)
	})

	return cmd
}

// runGenerate writes the field and reports the outcome.
func runGenerate(cmd *cobra.Command, logger *logging.Logger, opts *generateOptions) error {
	cfg := opts.cfg
	log := logger.Named("generator").With(zap.String("run_id", uuid.New().String()[:8]))

	if !cfg.ProbabilityInRange() {
		log.Warn("Alive probability outside [0, 1]; every cell will be identical",
			zap.Float64("proba", cfg.AliveProbability),
		)
	}

	log.Debug("Generating field",
		zap.Int64("seed", cfg.Seed),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Float64("proba", cfg.AliveProbability),
		zap.String("output", opts.output),
	)

	start := time.Now()
	res, err := field.WriteFile(opts.output, cfg)
	if err != nil {
		cliErr := core.ClassifyGenerateError(opts.output, err)
		log.Error("Field generation failed",
			zap.String("output", opts.output),
			zap.Int64("bytes_written", res.Bytes),
			zap.String("code", core.GetErrorCode(cliErr)),
			zap.String("exit", core.ExitCodeName(core.ExitCodeFor(cliErr))),
			zap.Error(err),
		)
		return cliErr
	}

	log.Info("Field written",
		zap.String("output", res.Path),
		zap.Int64("cells", res.Cells),
		zap.Int64("alive", res.Alive),
		zap.Float64("alive_ratio", res.AliveRatio()),
		zap.String("size", humanize.IBytes(uint64(res.Bytes))),
		zap.String("sha256", res.SHA256),
		zap.Duration("duration", time.Since(start)),
	)

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "wrote %s", res.Path)
	fmt.Fprintf(cmd.OutOrStdout(), " (%dx%d, %s alive, %s)\n",
		cfg.Width, cfg.Height,
		humanize.Comma(res.Alive),
		humanize.IBytes(uint64(res.Bytes)),
	)
	return nil
}
