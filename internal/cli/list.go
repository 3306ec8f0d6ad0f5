package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/phanxgames/retro"
)

func newListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transition kinds and their default durations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, kindTable())

			if configPath == "" {
				return nil
			}
			cfg, err := retro.LoadConfig(configPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, StyleTitle.Render(configPath))
			for _, name := range cfg.Names() {
				t, err := cfg.Build(name)
				if err != nil {
					return err
				}
				printKeyValue(out, name, fmt.Sprintf("%s %ss", t.Kind(), formatSeconds(t.TransitionDuration())))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "also list the transitions defined in a TOML file")
	return cmd
}

// kindTable renders every kind with its default duration.
func kindTable() string {
	kinds := retro.Kinds()
	rows := make([][]string, len(kinds))
	for i, k := range kinds {
		rows[i] = []string{strconv.Itoa(i + 1), k.String(), formatSeconds(retro.DefaultDurationFor(k)) + "s"}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Kind", "Duration").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			switch col {
			case 0:
				return StyleDim.Padding(0, 1)
			case 2:
				return StyleNumber.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		})
	return t.Render()
}

func formatSeconds(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
