package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/aggql"
)

func newQualifyCmd(a *app) *cobra.Command {
	var (
		tables []string
		cursor int
	)

	cmd := &cobra.Command{
		Use:   "qualify TEXT",
		Short: "Rewrite alias-prefixed identifiers into table-prefixed ones",
		Long: `Qualify replaces alias.column with table.column for every alias declared
after one of the given tables, in the text up to the cursor.`,
		Example: `  aggql qualify --tables orders "select o.total from orders o"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dialect, err := aggql.DialectByName(a.cfg.Dialect)
			if err != nil {
				return err
			}

			text := args[0]
			if cursor < 0 {
				cursor = len(text)
			}
			a.logger.Debug().
				Strs("tables", tables).
				Int("cursor", cursor).
				Str("dialect", dialect.Name()).
				Msg("qualifying text")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), aggql.QualifyWith(dialect, text, tables, cursor))
			return err
		},
	}

	cmd.Flags().StringSliceVarP(&tables, "tables", "t", nil, "known table names")
	cmd.Flags().IntVarP(&cursor, "cursor", "c", -1, "cursor offset in bytes (default end of text)")
	_ = cmd.MarkFlagRequired("tables")

	return cmd
}
