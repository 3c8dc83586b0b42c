package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ik5/wav2c"
	"github.com/ik5/wav2c/audio"
	"github.com/ik5/wav2c/internal/config"
)

// options holds the flag values of one root command.
type options struct {
	cfgFile     string
	outputFile  string
	targetRate  int
	resampler   string
	quality     string
	arrayName   string
	lengthName  string
	perLine     int
	previewFile string
	verbose     bool
}

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

// newRootCmd builds the base command. Every call gets its own options, so
// commands can run side by side.
func newRootCmd() (*cobra.Command, *options) {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "wav2c [flags] <input.wav>",
		Short: "Convert a WAV sample into an 8-bit C array",
		Long: `wav2c - Convert a PCM WAV sample into a C header for embedded playback.

The input (8-bit or 16-bit PCM, any channel count) is mixed down to mono,
resampled to the target rate and quantized to unsigned 8-bit values.

Examples:
  # Convert with defaults (22050 Hz, sample_data.h)
  wav2c kick.wav

  # Custom rate, names and an audible preview
  wav2c -r 16000 --array-name kick --length-name KICK_LEN --preview kick8.wav kick.wav

  # Read settings from a file
  wav2c --config drums.yaml
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          opts.runConvert,
	}

	def := wav2c.DefaultConfig()
	f := cmd.Flags()
	f.StringVar(&opts.cfgFile, "config", "", "YAML config file")
	f.StringVarP(&opts.outputFile, "output", "o", def.OutputPath, "output header file")
	f.IntVarP(&opts.targetRate, "rate", "r", def.TargetRate, "target sample rate in Hz")
	f.StringVar(&opts.resampler, "resampler", def.Resampler,
		"resampler to use ("+strings.Join(audio.DefaultRegistry().Names(), ", ")+")")
	f.StringVar(&opts.quality, "quality", string(def.Quality), "resampler quality (quick, low, medium, high, veryhigh)")
	f.StringVar(&opts.arrayName, "array-name", def.ArrayName, "name of the sample array")
	f.StringVar(&opts.lengthName, "length-name", def.LengthName, "name of the length constant")
	f.IntVar(&opts.perLine, "per-line", def.PerLine, "values per line")
	f.StringVar(&opts.previewFile, "preview", "", "also write the result as an 8-bit WAV")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	return cmd, opts
}

// Execute runs the root command. The process wide logger is configured here
// and not in newRootCmd.
func Execute() error {
	cmd, opts := newRootCmd()
	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		opts.setupLogging(cmd.ErrOrStderr())
	}

	return cmd.Execute()
}

func (o *options) setupLogging(w io.Writer) {
	// Configure slog based on verbose flag
	logLevel := slog.LevelInfo
	if o.verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})))
}

func (o *options) runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := o.resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	res, err := wav2c.Convert(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		okStyle.Render(fmt.Sprintf("%d samples written to", len(res.Samples))),
		pathStyle.Render(res.OutputPath),
	)
	slog.Debug("done",
		"input_rate", res.SourceRate,
		"input_channels", res.Channels,
		"input_bits", res.Width*8,
		"duration", res.Duration,
	)

	return nil
}

// resolveConfig merges defaults, the config file and explicitly set flags,
// in increasing order of precedence.
func (o *options) resolveConfig(cmd *cobra.Command, args []string) (wav2c.Config, error) {
	cfg, err := config.Load(o.cfgFile, wav2c.DefaultConfig())
	if err != nil {
		return cfg, err
	}

	if len(args) == 1 {
		cfg.InputPath = args[0]
	}

	f := cmd.Flags()
	if f.Changed("output") {
		cfg.OutputPath = o.outputFile
	}
	if f.Changed("rate") {
		cfg.TargetRate = o.targetRate
	}
	if f.Changed("resampler") {
		cfg.Resampler = o.resampler
	}
	if f.Changed("quality") {
		cfg.Quality = audio.Quality(o.quality)
	}
	if f.Changed("array-name") {
		cfg.ArrayName = o.arrayName
	}
	if f.Changed("length-name") {
		cfg.LengthName = o.lengthName
	}
	if f.Changed("per-line") {
		cfg.PerLine = o.perLine
	}
	if f.Changed("preview") {
		cfg.PreviewPath = o.previewFile
	}

	if cfg.InputPath == "" {
		return cfg, fmt.Errorf("no input file: pass one as argument or set input in --config")
	}

	return cfg, nil
}
