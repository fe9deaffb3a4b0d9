// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "onenet-identity",
	Short: "OneNet identity is an RBAC identity store service",
	Long: `OneNet identity is a role-based access control identity store.
On startup it seeds the backing database with a baseline permission catalog,
roles and user accounts, then serves a read-only RBAC API.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
