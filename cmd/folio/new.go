package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arbazsiddiqui/folio/scaffold"
)

var newCmd = &cobra.Command{
	Use:   "new <dir>",
	Short: "Create a new folio site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		data, err := scaffold.NewData(dir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Creating new folio site: %s\n\n", dir)
		if err := scaffold.Generate(dir, data, out); err != nil {
			return err
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Done! Next steps:")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  cd %s\n", dir)
		fmt.Fprintln(out, "  folio serve")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Write posts in content/posts/ and list your work in projects.yaml.")
		fmt.Fprintln(out, "Set admin_password in site.yaml to enable /admin/.")
		return nil
	},
}
