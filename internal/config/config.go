// Package config loads quill's writer settings from quill.yml.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/simonhull/firebird-suite/quill/artifact"
)

// Config holds the writer settings a project's quill.yml supplies.
//
//	writer:
//	  mode: record        # write | record
//	  report: codegen.json
//	  verify: true
type Config struct {
	Mode       artifact.Mode
	ReportPath string
	Verify     bool
}

// Load reads quill.yml from dir. A missing file yields defaults (direct
// write mode); any other read failure is an error. Settings can be
// overridden through QUILL_* environment variables, e.g.
// QUILL_WRITER_MODE=record.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("quill")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("writer.mode", string(artifact.ModeWrite))
	v.SetDefault("writer.report", "quill-report.json")
	v.SetDefault("writer.verify", false)

	v.AutomaticEnv()
	v.SetEnvPrefix("QUILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read quill.yml: %w", err)
		}
	}

	cfg := &Config{
		Mode:       artifact.Mode(v.GetString("writer.mode")),
		ReportPath: v.GetString("writer.report"),
		Verify:     v.GetBool("writer.verify"),
	}

	switch cfg.Mode {
	case artifact.ModeWrite, artifact.ModeRecord:
	default:
		return nil, fmt.Errorf("unknown writer mode %q in quill.yml", cfg.Mode)
	}
	if cfg.Mode == artifact.ModeRecord && cfg.ReportPath == "" {
		return nil, fmt.Errorf("record mode requires writer.report in quill.yml")
	}

	return cfg, nil
}

// Options maps the configuration onto writer construction options.
func (c *Config) Options() artifact.Options {
	return artifact.Options{
		Mode:                    c.Mode,
		ReportPath:              c.ReportPath,
		VerifyAgainstFilesystem: c.Verify,
	}
}
