package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosteel/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gosteel",
	Short: "Steel Member Design Checker",
	Long: `gosteel - Go Steel Member Design Checker

A CLI tool for checking structural steel members against
AISC 360-10 (Specification for Structural Steel Buildings).

This tool helps structural engineers perform:
  - Section property and width-to-thickness classification
  - Compression, flexure, shear and torsion strength checks
  - Combined loading interaction (H1-1, H3-6)
  - ASCE 7 load combinations
  - API RP 2A-WSD tubular allowable stresses
  - Batch checks from JSON or Excel member tables

Design method and factors default to ASD with Ω = 1.67 and φ = 0.90.
They can be set with GOSTEEL_METHOD, GOSTEEL_OMEGA and GOSTEEL_PHI
(also read from a .env file) or with the global flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosteel v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Steel Member Design Checker                          ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for checking structural steel members")
		fmt.Println("  against AISC 360-10.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • I-sections, channels, angles and circular pipes")
		fmt.Println("    • ASD and LRFD design strengths with every limit state shown")
		fmt.Println("    • Combined loading interaction and load combinations")
		fmt.Println("    • Capacity curves, Excel and PDF reports")
		fmt.Println()
		fmt.Println("  Use 'gosteel --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	addGlobalFlags(rootCmd)
}
