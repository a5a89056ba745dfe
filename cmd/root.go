package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/xll-gen/assetpack/internal/config"
	"github.com/xll-gen/assetpack/pkg/log"
)

var (
	// configPath is the assetpack.yaml to read (--config).
	configPath string
	// logLevel and logFile override the logging section of the config.
	logLevel string
	logFile  string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "assetpack",
	Short: "Package asset files into a Go binary",
	Long: `assetpack scans asset roots (textures, models, shaders, scripts, sounds) and
generates a Go file that compiles every asset into the binary, together with a
loader that returns an asset's bytes by logical name.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	log.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to assetpack.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
}

// loadConfig reads the configuration and initializes logging from it.
// The default config file may be absent; an explicitly named one may not.
func loadConfig() (*config.Config, error) {
	explicit := rootCmd.PersistentFlags().Changed("config")
	cfg, err := config.Load(configPath, !explicit)
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFile != "" {
		cfg.Logging.Path = logFile
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}
