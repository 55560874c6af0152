package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zoobzio/aggql"
)

func newKeywordsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keywords [WORD...]",
		Short: "List reserved keywords, or check whether words are reserved",
		RunE: func(cmd *cobra.Command, args []string) error {
			dialect, err := aggql.DialectByName(a.cfg.Dialect)
			if err != nil {
				return err
			}
			set := dialect.Keywords()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, word := range set.Words() {
					if _, err := fmt.Fprintln(out, word); err != nil {
						return err
					}
				}
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, word := range args {
				status := "not reserved"
				if set.Contains(word) {
					status = "reserved"
				}
				fmt.Fprintf(w, "%s\t%s\n", word, status)
			}
			return w.Flush()
		},
	}
}

func newDialectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List the built-in SQL dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DIALECT\tKEYWORDS\tVERSION")
			for _, name := range aggql.DialectNames() {
				dialect, err := aggql.DialectByName(name)
				if err != nil {
					return err
				}
				set := dialect.Keywords()
				fmt.Fprintf(w, "%s\t%d\t%s\n", name, set.Len(), set.Version())
			}
			return w.Flush()
		},
	}
}
