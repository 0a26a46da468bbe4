package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/spencrc/cssmin"
	"github.com/spencrc/cssmin/internal/report"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssmin.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence; only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSMIN_* prefix)
	if err := k.Load(env.Provider("CSSMIN_", ".", func(s string) string {
		// CSSMIN_MINIFY_VERIFY -> minify.verify
		// CSSMIN_MINIFY_SUFFIX -> minify.suffix
		// CSSMIN_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSMIN_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildMinifyConfig constructs the library's Config struct from koanf state.
func buildMinifyConfig() cssmin.Config {
	config := cssmin.Config{
		OutputDir: getStringWithFallback("output-dir", "minify.output-dir", ""),
		Suffix:    getStringWithFallback("suffix", "minify.suffix", cssmin.DefaultSuffix),
		Write:     getBoolWithFallback("write", "minify.write", false),
		Verify:    getBoolWithFallback("verify", "minify.verify", false),
		Verbose:   getBoolWithFallback("verbose", "verbose", false),
	}

	// Handle includes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("minify.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = []string{"**/*.css"}
	}

	return config
}

// buildReportOptions constructs the reporter options from koanf state.
func buildReportOptions() report.Options {
	return report.Options{
		UseColors:        getBoolWithFallback("color", "color", false),
		PrintIssuedLines: getBoolWithFallback("print-lines", "minify.print-lines", true),
		PrintCheckerName: getBoolWithFallback("print-checker-name", "minify.print-checker-name", true),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
