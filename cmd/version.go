package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosteel/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosteel",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("Steel Member Design Checker")
		fmt.Printf("Based on %s (Specification for Structural Steel Buildings)\n", version.Code)
		fmt.Printf("Build: %s\n", version.Build())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
