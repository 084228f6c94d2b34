package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTrendingCmd(v *viper.Viper) *cobra.Command {
	var upcoming bool

	cmd := &cobra.Command{
		Use:     "trending",
		Aliases: []string{"t"},
		Short:   "List the Discover movies",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v, nil)
			if err != nil {
				return err
			}

			movies, label := s.Catalog.Trending(), "trending"
			if upcoming {
				movies, label = s.Catalog.Upcoming(), "upcoming"
			}

			out := cmd.OutOrStdout()
			if len(movies) == 0 {
				fmt.Fprintf(out, "No %s movies yet.\n", label)
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("TITLE", "YEAR", "RATING", "GENRES")
			for _, m := range movies {
				t.Row(m.Title, fmt.Sprintf("%d", m.Year), fmt.Sprintf("%.1f", m.Rating), strings.Join(m.Genres, ", "))
			}
			fmt.Fprintln(out, t.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&upcoming, "upcoming", false, "list upcoming movies instead")
	return cmd
}
