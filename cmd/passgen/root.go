package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/kbukum/passgen/config"
	"github.com/kbukum/passgen/version"
)

// rootConfig holds flags shared by every subcommand.
type rootConfig struct {
	configFile string
	envFile    string
	jsonOutput bool
}

// NewRootCmd creates the root command for the passgen CLI.
func NewRootCmd() *cobra.Command {
	root := &rootConfig{}

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate policy-compliant passwords",
		Long: `passgen draws passwords from letters, digits and a configurable set of
special characters, retrying until every configured policy accepts one.

Settings come from passgen.yml, a .env file and PGEN_* environment variables.`,
		Version:       version.Get().Short(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&root.configFile, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&root.envFile, "env-file", "", ".env file path")
	cmd.PersistentFlags().BoolVar(&root.jsonOutput, "json", false, "output as JSON")

	cmd.AddCommand(newGenerateCmd(root))
	cmd.AddCommand(newEntropyCmd(root))
	cmd.AddCommand(newVersionCmd(root))

	return cmd
}

// loadConfig loads configuration honouring --config and --env-file.
func (r *rootConfig) loadConfig() (*config.Config, error) {
	var opts []config.LoaderOption
	if r.configFile != "" {
		opts = append(opts, config.WithConfigFile(r.configFile))
	}
	if r.envFile != "" {
		opts = append(opts, config.WithEnvFile(r.envFile))
	}
	return config.Load(opts...)
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
