package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hupe1980/unitgo"
	"github.com/hupe1980/unitgo/codec"
	"github.com/hupe1980/unitgo/unit"
)

const envPrefix = "UNITCONV"

var (
	errFormat = errors.New("unknown output format")
	errCodec  = errors.New("unknown codec")
)

type rootOpts struct {
	to       string
	format   string
	absolute bool
	logLevel string
	codec    string
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "unitconv <value> <unit>",
		Short: "Parse a physical quantity and convert it to another unit",
		Args:  cobra.MinimumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := rootOpts{
				to:       v.GetString("to"),
				format:   v.GetString("format"),
				absolute: v.GetBool("absolute"),
				logLevel: v.GetString("log-level"),
				codec:    v.GetString("codec"),
			}
			return run(cmd, strings.Join(args, " "), opts)
		},
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	cmd.Flags().String("to", "", "target unit abbreviation")
	cmd.Flags().String("format", "text", "output format: text or json")
	cmd.Flags().Bool("absolute", false, "read the input as an absolute quantity (e.g. a temperature reading)")
	cmd.Flags().String("codec", codec.Default.Name(), "json codec: json or go-json")

	cmd.AddCommand(newUnitsCommand())
	return cmd
}

// loadConfig layers flags over UNITCONV_* environment variables over the
// optional config file.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return err
	}
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func run(cmd *cobra.Command, input string, opts rootOpts) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	c, ok := codec.ByName(opts.codec)
	if !ok {
		return fmt.Errorf("%q: %w", opts.codec, errCodec)
	}
	logger := unitgo.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	conv := unitgo.New(unitgo.WithLogger(logger), unitgo.WithCodec(c))

	ctx := cmd.Context()
	parse := conv.Parse
	if opts.absolute {
		parse = conv.ParseAbsolute
	}
	m, err := parse(ctx, input)
	if err != nil {
		return err
	}
	if opts.to != "" {
		if m, err = conv.Convert(ctx, m, opts.to); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch opts.format {
	case "text":
		_, err = fmt.Fprintln(out, m)
	case "json":
		var data []byte
		if data, err = conv.Marshal(m); err == nil {
			_, err = fmt.Fprintln(out, string(data))
		}
	default:
		err = fmt.Errorf("%q: %w", opts.format, errFormat)
	}
	return err
}

func newUnitsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "units [kind]",
		Short: "List kinds, or the units of one kind",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, k := range unit.Kinds() {
					fmt.Fprintf(out, "%s\t%s\n", k.Name(), k.Dimensions())
				}
				return nil
			}
			k, err := unit.KindByName(args[0])
			if err != nil {
				return err
			}
			for _, d := range k.Units() {
				fmt.Fprintf(out, "%s\t%s\t%s\n", d.Symbol(), d.Name(), strings.Join(d.Abbreviations(), ","))
			}
			return nil
		},
	}
}
