package main

import (
	"fmt"
	"os"

	"mountls/internal/config"
	"mountls/internal/log"

	"github.com/spf13/cobra"
)

var (
	version = "dev"

	cfgFile   string
	debugFlag bool
	cfg       *config.Config
)

// Entry point for the application
func main() {
	rootCmd := &cobra.Command{
		Use:   "mountls",
		Short: "Wait for removable storage and print its root listing",
		Long: `mountls waits for a removable storage device to appear, mounts its
filesystem read-only, prints the top-level directory listing once, then idles.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				log.Warnf("config: %v (using defaults)", err)
				cfg = config.New()
			}
			if cmd.Flags().Changed("debug") {
				cfg.Settings.Debug = debugFlag
			}
			log.SetDebug(cfg.Settings.Debug)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/mountls/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "emit the state-transition trace")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(tuiCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
