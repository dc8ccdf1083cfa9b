package root

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/osmcities/osmcities/internal/citynames"
	"github.com/osmcities/osmcities/internal/model"
	"github.com/osmcities/osmcities/internal/overpass"
	"github.com/osmcities/osmcities/internal/runner"
)

func TestNormalizeArgs(t *testing.T) {
	type testcase struct {
		name   string
		input  []string
		expect []string
	}

	testcases := []testcase{{
		name:   "with no legacy flags",
		input:  []string{"-c", "FR", "-l", "6"},
		expect: []string{"-c", "FR", "-l", "6"},
	}, {
		name:   "with -out followed by a value",
		input:  []string{"-c", "FR", "-out", "fr.txt"},
		expect: []string{"-c", "FR", "--out", "fr.txt"},
	}, {
		name:   "with -out=value",
		input:  []string{"-out=fr.txt", "-c", "FR"},
		expect: []string{"--out=fr.txt", "-c", "FR"},
	}, {
		name:   "with --out already",
		input:  []string{"--out", "fr.txt"},
		expect: []string{"--out", "fr.txt"},
	}, {
		name:   "with a flag that only starts like -out",
		input:  []string{"-output", "fr.txt"},
		expect: []string{"-output", "fr.txt"},
	}, {
		name:   "after the -- terminator",
		input:  []string{"-c", "FR", "--", "-out"},
		expect: []string{"-c", "FR", "--", "-out"},
	}, {
		name:   "with no arguments",
		input:  []string{},
		expect: []string{},
	}}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.expect, NormalizeArgs(tc.input)); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("we apply the defaults", func(t *testing.T) {
		var opts Options
		cmd := New(&opts)
		if _, err := cmd.Parse([]string{"-c", "FR", "-l", "6"}); err != nil {
			t.Fatal(err)
		}
		expect := Options{
			Code:      "FR",
			Level:     "6",
			Out:       runner.DefaultOutputPath,
			Endpoint:  overpass.DefaultEndpoint,
			Scan:      "prefix",
			UserAgent: runner.DefaultUserAgent,
		}
		if diff := cmp.Diff(expect, opts); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("we parse every flag", func(t *testing.T) {
		var opts Options
		cmd := New(&opts)
		args := NormalizeArgs([]string{
			"-c", "IT-25", "-out=lombardia.txt", "--level", "4", "--scan", "all",
			"--endpoint", "https://overpass.example.org/api/interpreter",
			"--user-agent", "antani/1.0", "-v",
		})
		if _, err := cmd.Parse(args); err != nil {
			t.Fatal(err)
		}
		expect := Options{
			Code:      "IT-25",
			Level:     "4",
			Out:       "lombardia.txt",
			Endpoint:  "https://overpass.example.org/api/interpreter",
			Scan:      "all",
			UserAgent: "antani/1.0",
			Verbose:   true,
		}
		if diff := cmp.Diff(expect, opts); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("the region code is required", func(t *testing.T) {
		var opts Options
		cmd := New(&opts)
		_, err := cmd.Parse([]string{"-l", "6"})
		if err == nil || !strings.Contains(err.Error(), "--code") {
			t.Fatal("not the error we expected", err)
		}
	})

	t.Run("we reject unknown scan modes", func(t *testing.T) {
		var opts Options
		cmd := New(&opts)
		_, err := cmd.Parse([]string{"-c", "FR", "--scan", "filter"})
		if err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestOptionsConfig(t *testing.T) {
	t.Run("on success", func(t *testing.T) {
		opts := &Options{
			Code:      "FR",
			Level:     "6",
			Out:       "fr.txt",
			Endpoint:  overpass.DefaultEndpoint,
			Scan:      "all",
			UserAgent: "antani/1.0",
		}
		config, err := opts.Config(model.DiscardLogger)
		if err != nil {
			t.Fatal(err)
		}
		if config.RegionCode != "FR" || config.AdminLevel != "6" || config.OutputPath != "fr.txt" {
			t.Fatal("unexpected config", config)
		}
		if config.ScanMode != citynames.ScanAll {
			t.Fatal("unexpected scan mode", config.ScanMode)
		}
		if config.Logger != model.DiscardLogger {
			t.Fatal("unexpected logger")
		}
	})

	t.Run("with an invalid scan mode", func(t *testing.T) {
		opts := &Options{Code: "FR", Scan: "filter"}
		config, err := opts.Config(model.DiscardLogger)
		if !errors.Is(err, citynames.ErrUnknownScanMode) {
			t.Fatal("not the error we expected", err)
		}
		if config != nil {
			t.Fatal("expected nil config")
		}
	})
}
