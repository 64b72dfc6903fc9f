package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spachava753/tutorials/internal/models"
)

func newResolveCommand(a *app) *cobra.Command {
	var commit string
	var byRoute bool

	cmd := &cobra.Command{
		Use:   "resolve <tutorial> <filename> <step> <revision>",
		Short: "Print the improve-this-code link for a file in a tutorial step",
		Long: `Resolves the "improve this code" link for a file shown in a tutorial step.
Manual pages (*.md) link to the step template, other files link to the file
at --commit or at the revision.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			lookup := a.catalog.Get
			if byRoute {
				lookup = a.catalog.FindByRoute
			}
			def, err := lookup(args[0])
			if err != nil {
				return err
			}

			var patch models.Patch
			if commit != "" {
				patch = models.ParsedPatch{SHA: commit, Paths: []string{args[1]}}
			}

			url, err := def.ResolveImproveCodeURL(cmd.Context(), patch, args[1], args[2], args[3], a.client)
			if err != nil {
				return fmt.Errorf("resolving link: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
	cmd.Flags().StringVar(&commit, "commit", "", "commit the step patch was taken from")
	cmd.Flags().BoolVar(&byRoute, "route", false, "look the tutorial up by base route instead of id")
	return cmd
}
