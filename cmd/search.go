package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cinerate/internal/domain"
	"cinerate/internal/search"
)

// settleGrace bounds how long search waits beyond the debounce window
const settleGrace = 5 * time.Second

func newSearchCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "search <query...>",
		Aliases: []string{"s"},
		Short:   "Search movie titles and directors",
		Long: `Search runs one debounced query against the catalog and prints the
matches in catalog order. Matching is a case-insensitive substring test
on the title or the director.

Examples:
  cinerate search nolan
  cinerate search the dark --debounce 0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v, nil)
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			st, err := runSearch(search.NewService(s.Catalog, search.WithDelay(s.Config.Debounce())), query)
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), st)
			return nil
		},
	}
}

// runSearch pushes query through a Debouncer and waits for it to settle
func runSearch(svc *search.Service, query string) (search.State, error) {
	if strings.TrimSpace(query) == "" {
		return search.State{}, errors.New("query must not be blank")
	}

	settled := make(chan search.State, 1)
	d := search.NewDebouncer(svc, nil, func(st search.State) {
		settled <- st
	})
	defer d.Close()

	d.Change(query)

	select {
	case st := <-settled:
		return st, nil
	case <-time.After(svc.Delay() + settleGrace):
		return search.State{}, fmt.Errorf("search for %q did not settle", query)
	}
}

func printResults(w io.Writer, st search.State) {
	if len(st.Results) == 0 {
		fmt.Fprintf(w, "No results found for %q\n", st.Query)
		return
	}

	rows := make([][]string, 0, len(st.Results))
	for _, m := range st.Results {
		rows = append(rows, movieRow(m))
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "YEAR", "DIRECTOR", "RATING").
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%d result(s) for %q\n", len(st.Results), st.Query)
}

func movieRow(m domain.Movie) []string {
	return []string{
		fmt.Sprintf("%d", m.ID),
		m.Title,
		fmt.Sprintf("%d", m.Year),
		m.Director,
		fmt.Sprintf("%.1f", m.Rating),
	}
}
