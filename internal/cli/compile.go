package cli

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zoobzio/aggql"
)

func newCompileCmd(a *app) *cobra.Command {
	var queryPath, schemaPath string

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a query document into SQL",
		Long: `Compile reads a query document and a schema document, resolves the joins
between the referenced tables and prints one SQL statement.

Use "-" as the query path to read it from stdin.`,
		Example: `  aggql compile --query revenue.yaml --schema schema.yaml
  cat revenue.json | aggql compile -q - -s schema.json --dialect postgres`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dialect, err := aggql.DialectByName(a.cfg.Dialect)
			if err != nil {
				return err
			}

			queryDoc, err := a.readDocument(cmd, queryPath)
			if err != nil {
				return err
			}
			schemaDoc, err := a.readDocument(cmd, schemaPath)
			if err != nil {
				return err
			}

			query, err := aggql.DecodeQuery(queryDoc)
			if err != nil {
				return err
			}
			db, err := aggql.DecodeDatabase(schemaDoc)
			if err != nil {
				return err
			}

			a.logger.Debug().
				Str("dialect", dialect.Name()).
				Int("labels", len(query.Labels)).
				Int("aggregations", len(query.Aggregations)).
				Int("filters", len(query.Filters)).
				Msg("compiling query")

			stmt, err := aggql.Plan(dialect, query, db)
			if err != nil {
				return err
			}
			for _, step := range stmt.Joins {
				a.logger.Debug().
					Str("table", step.Table).
					Int("conditions", len(step.Conditions)).
					Msg("join step")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), stmt.SQL())
			return err
		},
	}

	cmd.Flags().StringVarP(&queryPath, "query", "q", "", "query document (JSON or YAML)")
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema document (JSON or YAML)")
	_ = cmd.MarkFlagRequired("query")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

// readDocument reads path from the command filesystem, or stdin for "-".
func (a *app) readDocument(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
