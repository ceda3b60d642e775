package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brandrank",
	Short: "brandrank - AI search ranking checker for brand keywords",
	Long: `brandrank checks whether your brand appears when an AI model is asked
to list the businesses most relevant to a search keyword. It sends one
chat completion request per check, parses the generated ranking, and
reports the rank at which your brand is mentioned.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(webuiCmd)
}
