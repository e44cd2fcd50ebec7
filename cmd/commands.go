package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var showShadowed bool

var (
	commandNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	shadowedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// commandsCmd prints the table the shell resolves commands against
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Show the commands found on the search path.",
	Long: `Show the commands found on the search path, in the order the shell will
resolve them. With --shadowed, executables hidden by an earlier directory
on the path are listed under the command that hides them.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		_, table, err := buildTable(cmd, cfg, nil)
		if err != nil {
			return err
		}

		width := 0
		for _, name := range table.Names() {
			if len(name) > width {
				width = len(name)
			}
		}

		out := cmd.OutOrStdout()
		for _, entry := range table.Entries() {
			fmt.Fprintf(out, "%s  %s\n", commandNameStyle.Width(width).Render(entry.Name), entry.Path)

			if !showShadowed {
				continue
			}
			for _, hidden := range table.Shadowed(entry.Name) {
				fmt.Fprintln(out, shadowedStyle.Render(fmt.Sprintf("  shadows %s", hidden.Path)))
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
	commandsCmd.Flags().BoolVar(&showShadowed, "shadowed", false, "also list executables hidden by an earlier directory")
}
