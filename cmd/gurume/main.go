package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/gurume/internal/cli"
	"codeberg.org/snonux/gurume/internal/logging"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
		logging.Setup(viper.GetString("log.level"), os.Stderr)
	})

	rootCmd.AddCommand(
		newRomajiCommand(flags),
		newTranslateCommand(flags),
		newShopCommand(flags),
		newSessionCommand(flags),
		newModelsCommand(),
	)

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
