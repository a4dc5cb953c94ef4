// Command recap analyzes the capturing-group structure of regular
// expressions and generates typed Go accessors for them.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Version = "0.1.0"

	log     = logrus.New()
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "recap",
		Short:   "Analyze regex capturing-group structure and generate typed accessors",
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(os.Stderr)
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newGenerateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
