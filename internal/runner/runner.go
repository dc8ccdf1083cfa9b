// Package runner implements the osmcities pipeline: build the Overpass
// query, fetch the response, extract the names, write the names file.
package runner

import (
	"context"
	"net/http"

	"github.com/osmcities/osmcities/internal/citynames"
	"github.com/osmcities/osmcities/internal/model"
	"github.com/osmcities/osmcities/internal/namefile"
	"github.com/osmcities/osmcities/internal/overpass"
	"github.com/osmcities/osmcities/internal/version"
	"github.com/pkg/errors"
)

const (
	// DefaultAdminLevel is the default OSM administrative level.
	DefaultAdminLevel = "8"

	// DefaultOutputPath is the default output file path.
	DefaultOutputPath = "city_list.txt"
)

// DefaultUserAgent is the default User-Agent header.
var DefaultUserAgent = "osmcities/" + version.Version

// ErrEmptyRegionCode indicates that Config.RegionCode is empty.
var ErrEmptyRegionCode = errors.New("runner: empty region code")

// Config contains the settings for a single run. All fields except
// RegionCode are OPTIONAL and have sensible defaults.
type Config struct {
	// RegionCode is the MANDATORY ISO3166-2 style region code.
	RegionCode string

	// AdminLevel is the OSM admin_level. Default: DefaultAdminLevel.
	AdminLevel string

	// OutputPath is where we write the names. Default: DefaultOutputPath.
	OutputPath string

	// Endpoint is the Overpass interpreter URL. Default: overpass.DefaultEndpoint.
	Endpoint string

	// UserAgent is the User-Agent header. Default: DefaultUserAgent.
	UserAgent string

	// ScanMode selects the elements we examine. Default: citynames.ScanPrefix.
	ScanMode citynames.ScanMode

	// HTTPClient is the HTTP client. Default: a client without timeout.
	HTTPClient model.HTTPClient

	// Logger is the logger. Default: model.DiscardLogger.
	Logger model.Logger
}

func (c *Config) adminLevel() string {
	if c.AdminLevel != "" {
		return c.AdminLevel
	}
	return DefaultAdminLevel
}

func (c *Config) outputPath() string {
	if c.OutputPath != "" {
		return c.OutputPath
	}
	return DefaultOutputPath
}

func (c *Config) endpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return overpass.DefaultEndpoint
}

func (c *Config) userAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return DefaultUserAgent
}

func (c *Config) httpClient() model.HTTPClient {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	// no Timeout: the query asks the server to give up after 300 seconds
	return &http.Client{}
}

// Summary describes a successful run.
type Summary struct {
	// Query is the Overpass QL query we sent.
	Query string

	// Elements is the number of elements in the response.
	Elements int

	// Names is the number of names we wrote.
	Names int

	// OutputPath is the file we wrote.
	OutputPath string
}

// Run fetches the names of the administrative areas selected by config
// and writes them to config's output path. Every step is fatal on failure
// and we never retry.
func Run(ctx context.Context, config *Config) (*Summary, error) {
	if config.RegionCode == "" {
		return nil, ErrEmptyRegionCode
	}
	logger := model.ValidLoggerOrDefault(config.Logger)

	query := overpass.BuildQuery(config.RegionCode, config.adminLevel())
	logger.Debugf("runner: query:\n%s", query)

	client := overpass.NewClient(config.endpoint(), config.httpClient(), logger, config.userAgent())
	logger.Infof("Fetching admin_level=%s areas within %s", config.adminLevel(), config.RegionCode)
	doc, err := client.Fetch(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "fetching areas")
	}
	if doc.Remark != "" {
		logger.Warnf("overpass: %s", doc.Remark)
	}
	logger.Debugf("runner: %d elements from %q", len(doc.Elements), doc.Generator)

	names := citynames.ExtractNames(doc, config.ScanMode)
	count, err := namefile.WriteNames(names, config.outputPath())
	if err != nil {
		return nil, errors.Wrapf(err, "writing %s", config.outputPath())
	}
	logger.Infof("Wrote %d names to %s", count, config.outputPath())

	summary := &Summary{
		Query:      query,
		Elements:   len(doc.Elements),
		Names:      count,
		OutputPath: config.outputPath(),
	}
	return summary, nil
}
