package main

import (
	"os"

	"github.com/spf13/cobra"

	"apen/internal/interfaces/cli/migrate"
	"apen/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "apen",
		Short: "Apen y Asociados website backend",
		Long:  `API server for the Apen y Asociados site: contact form delivery, posts and services.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
