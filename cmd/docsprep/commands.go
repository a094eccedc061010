package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/joestump/docsprep/api"
	"github.com/joestump/docsprep/internal/config"
	"github.com/joestump/docsprep/internal/docs"
)

func (a *app) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether a pre-generated OpenAPI file is present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.runCheck(cmd)
			return nil
		},
	}
	addCheckFlags(cmd)
	return cmd
}

func (a *app) newInjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inject",
		Short: "Write the API base URL into the documentation template",
		Long: `Replaces the first occurrence of the placeholder token in the template
with the API base URL taken from --api-url or API_URL, then rewrites the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runInject()
		},
	}
	addInjectFlags(cmd)
	return cmd
}

func (a *app) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run check and inject, in that order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.runCheck(cmd)
			return a.runInject()
		},
	}
	addCheckFlags(cmd)
	addInjectFlags(cmd)
	return cmd
}

func (a *app) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default documentation template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			path := a.config().TemplatePath()

			written, err := docs.Scaffold(a.fs, path, api.IndexTemplate, force)
			if err != nil {
				return err
			}
			if !written {
				log.Info().Str("path", path).Msg("template already exists, use --force to overwrite")
				return nil
			}
			log.Info().Str("path", path).Msg("template written")
			return nil
		},
	}
	cmd.Flags().String("template", config.DefaultTemplate, "template file name")
	cmd.Flags().Bool("force", false, "overwrite an existing template")
	return cmd
}

func addCheckFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("spec-file", config.DefaultSpecFile, "OpenAPI file name")
	f.Bool("validate", false, "parse and validate the OpenAPI file when present")
}

func addInjectFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("template", config.DefaultTemplate, "template file name")
	f.String("placeholder", config.DefaultPlaceholder, "token replaced with the API base URL")
	f.String("api-url", config.DefaultAPIURL, "API base URL (env API_URL)")
}

// runCheck never fails: a missing or invalid OpenAPI file only changes what
// gets logged.
func (a *app) runCheck(cmd *cobra.Command) {
	cfg := a.config()
	mode := docs.Check(a.fs, cfg.SpecPath())
	if mode != docs.ModeStatic || !cfg.Validate {
		return
	}

	sum, err := docs.Inspect(cmd.Context(), a.fs, cfg.SpecPath())
	if err != nil {
		log.Warn().Err(err).Msg("OpenAPI file is not valid")
		return
	}
	log.Info().
		Str("openapi", sum.OpenAPI).
		Str("title", sum.Title).
		Str("version", sum.Version).
		Int("paths", sum.Paths).
		Msg("OpenAPI file validated")
}

func (a *app) runInject() error {
	cfg := a.config()
	res, err := docs.Inject(a.fs, cfg.TemplatePath(), cfg.Placeholder, cfg.APIURL)
	if err != nil {
		return err
	}
	if !res.Replaced {
		log.Warn().Str("path", res.Path).Str("placeholder", cfg.Placeholder).Msg("placeholder not found, template unchanged")
	}
	log.Info().Str("path", res.Path).Msgf("API URL injected: %s", res.Value)
	return nil
}
