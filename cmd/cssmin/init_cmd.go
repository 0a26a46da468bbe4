package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssmin.yaml config file",
	Long:  `Create a .cssmin.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssmin.yaml"); err == nil && !force {
			return fmt.Errorf(".cssmin.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssmin.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .cssmin.yaml")
		return nil
	},
}

const defaultConfig = `# cssmin configuration
# Docs: https://github.com/spencrc/cssmin

# Shared settings
verbose: false
color: false

# Minification settings
minify:
  include:
    - "**/*.css"
  output-dir: ""           # empty = write next to each input
  suffix: .min.css
  write: false             # print to stdout unless true
  verify: false            # re-lex minified output
  strict: false            # exit 1 on warnings too
  output-format: full      # issues | summary | full | json
  print-lines: true
  print-checker-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
