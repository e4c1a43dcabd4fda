// Package accounts lists the supported accounts.
package accounts

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fjacquet/zaim-csv/cmd/root"
)

// Cmd represents the accounts command
var Cmd = &cobra.Command{
	Use:   "accounts",
	Short: "List supported accounts and their file name patterns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.GetContainer()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ACCOUNT\tENCODING\tCATALOG\tPATTERNS")
		for _, p := range app.GetParsers() {
			var patterns []string
			if named, ok := p.(interface{ Patterns() []string }); ok {
				patterns = named.Patterns()
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				p.Account(), p.Dialect().Encoding, p.Account().CatalogFile(), strings.Join(patterns, " "))
		}
		return w.Flush()
	},
}
