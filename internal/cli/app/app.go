// Package app contains the osmcities application entry point.
package app

import (
	"context"

	"github.com/apex/log"
	"github.com/osmcities/osmcities/internal/cli/root"
	"github.com/osmcities/osmcities/internal/runner"
)

// Run the app. This is the main app entry point
func Run(ctx context.Context, args []string) error {
	var opts root.Options
	cmd := root.New(&opts)
	if _, err := cmd.Parse(root.NormalizeArgs(args)); err != nil {
		return err
	}

	config, err := opts.Config(log.Log)
	if err != nil {
		return err
	}

	summary, err := runner.Run(ctx, config)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"region_code": config.RegionCode,
		"admin_level": config.AdminLevel,
		"elements":    summary.Elements,
		"names":       summary.Names,
		"output":      summary.OutputPath,
	}).Info("Retrieved area names")
	return nil
}
