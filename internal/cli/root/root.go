// Package root contains the osmcities command line definition.
package root

import (
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/osmcities/osmcities/internal/citynames"
	"github.com/osmcities/osmcities/internal/model"
	"github.com/osmcities/osmcities/internal/overpass"
	"github.com/osmcities/osmcities/internal/runner"
	"github.com/osmcities/osmcities/internal/runtimex"
	"github.com/osmcities/osmcities/internal/version"
)

// Options contains the parsed command line options.
type Options struct {
	Code      string
	Level     string
	Out       string
	Endpoint  string
	Scan      string
	UserAgent string
	Verbose   bool
}

// New creates the command line application storing flags into opts.
func New(opts *Options) *kingpin.Application {
	runtimex.PanicIfNil(opts, "passed nil opts")

	cmd := kingpin.New("osmcities", "Retrieves all the city names within the region of interest.")
	cmd.Version(version.Version)

	cmd.Flag("code", "Area code (ISO3166-2, e.g. FR or IT-25).").Short('c').Required().StringVar(&opts.Code)
	cmd.Flag("level", "OSM administrative boundary level.").Short('l').Default(runner.DefaultAdminLevel).StringVar(&opts.Level)
	cmd.Flag("out", "Output file name (also accepted as -out).").Default(runner.DefaultOutputPath).StringVar(&opts.Out)
	cmd.Flag("endpoint", "Overpass interpreter URL.").Default(overpass.DefaultEndpoint).StringVar(&opts.Endpoint)
	cmd.Flag("scan", "Stop at the first untagged element (prefix) or examine them all (all).").
		Default(citynames.ScanPrefix.String()).EnumVar(&opts.Scan, citynames.ScanPrefix.String(), citynames.ScanAll.String())
	cmd.Flag("user-agent", "User-Agent header to send.").Default(runner.DefaultUserAgent).StringVar(&opts.UserAgent)
	cmd.Flag("verbose", "Enable verbose log output.").Short('v').BoolVar(&opts.Verbose)

	cmd.PreAction(func(ctx *kingpin.ParseContext) error {
		log.SetHandler(cli.Default)
		log.SetLevel(log.InfoLevel)
		if opts.Verbose {
			log.SetLevel(log.DebugLevel)
			log.Debugf("osmcities version %s", version.Version)
		}
		return nil
	})

	return cmd
}

// Config converts the options into a [*runner.Config].
func (opts *Options) Config(logger model.Logger) (*runner.Config, error) {
	mode, err := citynames.ParseScanMode(opts.Scan)
	if err != nil {
		return nil, err
	}
	config := &runner.Config{
		RegionCode: opts.Code,
		AdminLevel: opts.Level,
		OutputPath: opts.Out,
		Endpoint:   opts.Endpoint,
		UserAgent:  opts.UserAgent,
		ScanMode:   mode,
		Logger:     logger,
	}
	return config, nil
}

// legacyLongFlags are the long flags historically spelled with one dash.
var legacyLongFlags = []string{"out"}

// NormalizeArgs rewrites `-out PATH` and `-out=PATH` as `--out`, since
// kingpin would otherwise parse `-out` as the `-o -u -t` short flags.
// We stop rewriting after a `--` terminator.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for idx, arg := range args {
		if arg == "--" {
			out = append(out, args[idx:]...)
			break
		}
		for _, name := range legacyLongFlags {
			if arg == "-"+name || strings.HasPrefix(arg, "-"+name+"=") {
				arg = "-" + arg
				break
			}
		}
		out = append(out, arg)
	}
	return out
}
