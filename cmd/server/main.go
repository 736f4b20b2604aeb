package main

import (
	"os"

	"github.com/saulo-duarte/sambat-api/cmd/server/commands"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/spf13/cobra"
)

// @title       Sambat API
// @version     1.0
// @description Bikram Sambat calendar with holidays, events and tasks.
// @BasePath    /

// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization

func main() {
	rootCmd := &cobra.Command{
		Use:   "sambat",
		Short: "Bikram Sambat calendar API",
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewUserCommand())
	rootCmd.AddCommand(commands.NewTokenCommand())

	if err := rootCmd.Execute(); err != nil {
		config.Log.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
