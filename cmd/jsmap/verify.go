package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/walysson-bot/vscode-js-debug/sourceutils"
)

var (
	verifyHash string
)

var verifyCmd = &cobra.Command{
	Use:   "verify <file.js>",
	Short: "Check that a file can be trusted as the source behind a mapping",
	Long: `Check that a local file may be used as the source for a mapping.

Without --hash only the file's existence is checked. With --hash the file
content is hashed with SHA-256 and compared against the expected value,
the way a runtime reports script hashes. Paths inside .asar archives are
trusted as-is because their content is controlled by packaging.

The exit status is 0 when the file is trusted and 1 when it is not.

Examples:
  jsmap verify dist/app.min.js
  jsmap verify --hash b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9 dist/app.min.js`,
	Args: cobra.ExactArgs(1),
	Run:  runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyHash, "hash", "", "Expected SHA-256 of the file content (hex)")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) {
	path, ok := sourceutils.CheckContentHash(args[0], verifyHash, nil)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %s cannot be trusted as mapping source\n", args[0])
		os.Exit(1)
	}
	fmt.Println(path)
}
