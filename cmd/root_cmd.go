package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tomling",
	Short: "tomling reads TOML documents and Cargo manifests.",
	Long:  "tomling is a tool for parsing TOML 1.0 documents and projecting Cargo.toml manifests, meant for constrained or embedded environments.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tomling",
	Long:  `All software has versions. This is tomling's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tomling v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tomlCmd)
}
