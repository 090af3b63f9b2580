package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/giftprogress/internal/config"
	"github.com/alexisbeaulieu97/giftprogress/internal/logger"
)

const (
	defaultConfigPath = "giftprogress.yaml"
	envPrefix         = "GIFTPROGRESS"
)

// rootOptions resolves settings shared by every command from flags and
// GIFTPROGRESS_* environment variables.
type rootOptions struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	root := &rootOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "giftprogress",
		Short:         "Render and explore gift and space progress bars",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringP("config", "c", defaultConfigPath, "Path to the YAML configuration")
	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON instead of console text")

	root.v.SetEnvPrefix(envPrefix)
	root.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	root.v.AutomaticEnv()
	_ = root.v.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	_ = root.v.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))
	_ = root.v.BindPFlag("json-logs", cmd.PersistentFlags().Lookup("json-logs"))

	cmd.AddCommand(newRenderCmd(root))
	cmd.AddCommand(newDemoCmd(root))
	cmd.AddCommand(newConfigCmd(root))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// config loads the configuration file. The default path may be absent; a
// path given by flag or environment must exist.
func (r *rootOptions) config() (*config.Config, error) {
	return config.Load(r.v.GetString("config"), r.v.IsSet("config"))
}

func (r *rootOptions) logger(cmd *cobra.Command) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         r.v.GetString("log-level"),
		HumanReadable: !r.v.GetBool("json-logs"),
		Writer:        cmd.ErrOrStderr(),
	})
}
