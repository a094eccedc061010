package main

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/joestump/docsprep/internal/config"
)

// app carries what every subcommand needs. The filesystem and viper instance
// are injected so tests can run commands against a MemMapFs.
type app struct {
	fs afero.Fs
	v  *viper.Viper
}

func newRootCmd(fsys afero.Fs, v *viper.Viper) *cobra.Command {
	a := &app{fs: fsys, v: v}

	rootCmd := &cobra.Command{
		Use:   "docsprep",
		Short: "Prepare the static API documentation site for deployment",
		Long: `docsprep runs the build steps of the static API documentation site.

Check the OpenAPI file:   docsprep check
Inject the API base URL:  API_URL=https://api.example.com docsprep inject
Both, as the build runs:  docsprep build`,
		Version:           config.Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	// Defaults match the file names the docs site ships with.
	pf := rootCmd.PersistentFlags()
	pf.String("dir", ".", "documentation directory the file names resolve against")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Bool("log-console", true, "human-readable log output instead of JSON lines")

	config.SetDefaults(v)

	// DOCSPREP_* env vars map onto viper keys: DOCSPREP_SPEC_FILE -> "spec_file".
	v.SetEnvPrefix("DOCSPREP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	// The deployment platform sets API_URL without a prefix.
	_ = v.BindEnv("api_url", "API_URL", "DOCSPREP_API_URL")

	rootCmd.AddCommand(
		a.newCheckCmd(),
		a.newInjectCmd(),
		a.newBuildCmd(),
		a.newInitCmd(),
	)
	return rootCmd
}

// setup binds the executing command's flags to viper and configures logging.
// check, inject and build share flag names, so only the running command's
// flags are bound.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := a.v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return bindErr
	}

	config.ConfigureLogging(config.Load(a.v), cmd.OutOrStdout())
	return nil
}

func (a *app) config() config.Config {
	return config.Load(a.v)
}
