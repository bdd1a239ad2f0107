package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/contentkit/modelreport/internal/config"
	"github.com/contentkit/modelreport/internal/contentful"
	"github.com/contentkit/modelreport/internal/progress"
	"github.com/contentkit/modelreport/internal/render"
	"github.com/contentkit/modelreport/internal/report"
)

// loadConfiguration loads the layered configuration and applies any flags
// the user set explicitly on top. Flags beat every other source.
func loadConfiguration(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.DefaultConfigPath
	} else if _, err := os.Stat(configPath); err != nil {
		// The implicit default may be absent, but a path the user named
		// must exist; a typo should not silently fall back to defaults.
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("space") {
		cfg.SpaceID, _ = flags.GetString("space")
	}
	if flags.Changed("environment") {
		cfg.Environment, _ = flags.GetString("environment")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir, _ = flags.GetString("output-dir")
	}
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetInt("timeout")
	}
	if flags.Changed("quiet") {
		cfg.Quiet, _ = flags.GetBool("quiet")
	}
	if flags.Changed("yes") {
		cfg.AssumeYes, _ = flags.GetBool("yes")
	}

	return cfg, nil
}

// addRemoteFlags registers the flags shared by commands that talk to the
// management API.
func addRemoteFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("space", "s", "", "Space ID")
	cmd.Flags().StringP("environment", "e", "master", "Environment ID")
	cmd.Flags().Int("timeout", 0, "HTTP timeout in seconds")
}

// fetchTimeout converts the configured timeout to a duration.
func fetchTimeout(cfg *config.Configuration) time.Duration {
	return time.Duration(cfg.Timeout) * time.Second
}

// reportFilename names the output file after the space and environment; the
// offline path has no space, so it falls back to a fixed stem.
func reportFilename(cfg *config.Configuration, ext string) string {
	if cfg.SpaceID != "" {
		return fmt.Sprintf("content-model-%s-%s.%s", cfg.SpaceID, cfg.Environment, ext)
	}
	return "content-model." + ext
}

// renderAndWrite renders one report and either prints it or persists it,
// finishing with a colored summary line.
func renderAndWrite(cmd *cobra.Command, cfg *config.Configuration, types []contentful.ContentType, ind *progress.Indicator) error {
	renderer := render.ForSelector(cfg.Format)

	ind.Start(fmt.Sprintf("Rendering %s report", renderer.Format()))
	rep := render.NewReport(render.Meta{
		GeneratedAt: time.Now(),
		SpaceID:     cfg.SpaceID,
		Environment: cfg.Environment,
	}, types)

	out, err := renderer.Render(rep)
	if err != nil {
		ind.Fail("Rendering failed", err)
		return err
	}
	ind.Succeed(fmt.Sprintf("Rendered %s report", renderer.Format()))

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	writer := &report.Writer{OutputDir: cfg.OutputDir, AssumeYes: cfg.AssumeYes}
	path, err := writer.Write(reportFilename(cfg, renderer.Extension()), out)
	if err != nil {
		return err
	}

	if !cfg.Quiet {
		fieldCount := 0
		for _, ct := range rep.Decoded {
			fieldCount += len(ct.Fields)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d content types, %d fields -> %s\n",
			color.GreenString("Done:"), len(rep.Decoded), fieldCount, path)
	}
	return nil
}
