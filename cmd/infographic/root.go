package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/infographic/config"
	"github.com/benoitkugler/infographic/export"
	"github.com/benoitkugler/infographic/layout"
	"github.com/benoitkugler/infographic/raster"
)

// Exit codes of the command.
const (
	ExitSuccess = 0
	ExitFailure = 1 // the pipeline failed
	ExitUsage   = 2 // invalid flags or arguments
)

// ExitError attaches an exit code to an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// options holds the command line flags.
type options struct {
	configPath string
	output     string
	dpi        float64
	width      float64
	height     float64
	tight      bool
	verbose    bool
}

// NewRootCommand creates the infographic command.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "infographic",
		Short: "Render the agent reporting infographic to PNG",
		Long: "Lay out the infographic sections on a 10x24 canvas, rasterize it\n" +
			"and write it as a PNG file. Content and output settings may be\n" +
			"provided by a YAML file, flags take precedence over it.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &ExitError{Code: ExitUsage, Err: err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Err: err}
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML file with the content and output settings")
	flags.StringVarP(&opts.output, "output", "o", config.DefaultOutput, "output PNG file")
	flags.Float64Var(&opts.dpi, "dpi", raster.DefaultOptions.DPI, "output resolution, in pixels per inch")
	flags.Float64Var(&opts.width, "width", raster.DefaultOptions.Width, "page width, in inches")
	flags.Float64Var(&opts.height, "height", raster.DefaultOptions.Height, "page height, in inches")
	flags.BoolVar(&opts.tight, "tight", false, "crop the page to the canvas")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	return cmd
}

// execute runs cmd with args, reports a failure on
// the command error output and returns the exit code.
func execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		if exitCode(err) == ExitUsage {
			fmt.Fprintf(cmd.ErrOrStderr(), "Run '%s --help' for usage.\n", cmd.CommandPath())
		}
	}
	return exitCode(err)
}

func run(cmd *cobra.Command, opts *options) error {
	logger := log.New(io.Discard, "", 0)
	if opts.verbose {
		logger = log.New(cmd.ErrOrStderr(), "infographic: ", 0)
	}

	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
		logger.Printf("loaded configuration from %s", opts.configPath)
	}
	// explicit flags override the file
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("dpi") {
		cfg.DPI = opts.dpi
	}
	if flags.Changed("width") {
		cfg.Page.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Page.Height = opts.height
	}
	if flags.Changed("tight") {
		cfg.Tight = opts.tight
	}

	canvas, err := layout.Build(cfg.Content)
	if err != nil {
		return err
	}
	logger.Printf("laid out %d primitives on a %gx%g canvas", canvas.Len(), canvas.Width(), canvas.Height())

	img, err := raster.Render(canvas, cfg.RasterOptions())
	if err != nil {
		return err
	}
	size := img.Bounds().Size()
	logger.Printf("rendered %dx%d pixels at %g DPI", size.X, size.Y, cfg.DPI)

	if err = export.WritePNG(img, cfg.Output, cfg.ExportOptions()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Infographic saved as '%s'\n", cfg.Output)
	return nil
}
