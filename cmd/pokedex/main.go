// Command pokedex runs the pokemon API server and its maintenance tasks.
//
// Configuration is read from --config, CONFIG_PATH or ./config.yaml, then the
// environment; a .env file in the working directory is loaded first.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Ramon-Molinero/pokedex/internal/app"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pokedex",
		Short:        "Pokemon collection API",
		SilenceUsage: true,
	}
	root.Version = app.BuildVersion()
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (overrides CONFIG_PATH)")
	root.AddCommand(serveCmd())
	root.AddCommand(seedCmd())
	root.AddCommand(findCmd())
	root.AddCommand(versionCmd())
	return root
}
