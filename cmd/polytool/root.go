package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"honnef.co/go/spatial"
	"honnef.co/go/spatial/internal/geoio"
)

// app carries the state shared by all commands once flags and configuration
// have been resolved.
type app struct {
	conf *viper.Viper
	log  *zap.Logger

	tolerance    float64
	inputFormat  geoio.Format
	outputFormat geoio.Format
}

func newRootCmd() *cobra.Command {
	a := &app{conf: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "polytool",
		Short:         "Measure, split, and classify polylines and polygons",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	flags.Float64("tolerance", spatial.DefaultTolerance, "Tolerance for duplicate and plane tests")
	flags.StringP("format", "f", string(geoio.FormatGeoJSON), "Input format, one of [geojson, wkt, yaml]")
	flags.StringP("output-format", "o", "", "Output format, defaults to the input format")
	flags.String("log-level", "info", "Log level, one of [debug, info, warn, error]")
	flags.BoolP("verbose", "v", false, "Log in a human-readable format")
	// BindPFlags only fails for a nil flag set.
	_ = a.conf.BindPFlags(flags)

	rootCmd.AddCommand(lengthCmd(a))
	rootCmd.AddCommand(atCmd(a))
	rootCmd.AddCommand(closestCmd(a))
	rootCmd.AddCommand(splitCmd(a))
	rootCmd.AddCommand(dedupeCmd(a))
	rootCmd.AddCommand(resampleCmd(a))
	rootCmd.AddCommand(hullCmd(a))
	rootCmd.AddCommand(containsCmd(a))
	rootCmd.AddCommand(boundsCmd(a))
	rootCmd.AddCommand(sliceCmd(a))
	return rootCmd
}

// init reads the configuration file and environment and sets up logging.
// Flags take precedence over the environment, which takes precedence over the
// configuration file.
func (a *app) init(cmd *cobra.Command) error {
	conf := a.conf
	conf.SetEnvPrefix("POLYTOOL")
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	if cfg := conf.GetString("config"); cfg != "" {
		conf.SetConfigFile(cfg)
		if err := conf.ReadInConfig(); err != nil {
			return errors.Wrap(err, "reading config")
		}
	} else {
		conf.SetConfigName("polytool")
		conf.SetConfigType("yaml")
		conf.AddConfigPath(".")
		conf.AddConfigPath("$HOME/.config/polytool")
		if err := conf.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return errors.Wrap(err, "reading config")
			}
		}
	}

	log, err := newLogger(cmd, conf.GetString("log-level"), conf.GetBool("verbose"))
	if err != nil {
		return err
	}
	a.log = log

	a.tolerance = conf.GetFloat64("tolerance")
	if !(a.tolerance >= 0) {
		return errors.Errorf("tolerance must not be negative, got %g", a.tolerance)
	}
	if a.inputFormat, err = geoio.ParseFormat(conf.GetString("format")); err != nil {
		return err
	}
	a.outputFormat = a.inputFormat
	if out := conf.GetString("output-format"); out != "" {
		if a.outputFormat, err = geoio.ParseFormat(out); err != nil {
			return err
		}
	}

	if used := conf.ConfigFileUsed(); used != "" {
		a.log.Debug("loaded config", zap.String("file", used))
	}
	return nil
}

// newLogger returns a logger that writes to the command's error stream: JSON
// lines by default, or a console encoding when verbose is set.
func newLogger(cmd *cobra.Command, level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "parsing log level")
	}

	var enc zapcore.Encoder
	if verbose {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(cmd.ErrOrStderr()), lvl)
	return zap.New(core).Named("polytool"), nil
}
