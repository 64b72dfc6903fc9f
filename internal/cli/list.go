package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type listedTutorial struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	GitHub    string            `json:"github"`
	BaseRoute string            `json:"base_route"`
	Versions  map[string]string `json:"versions"`
}

func newListCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered tutorials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := a.catalog.List()
			out := cmd.OutOrStdout()

			if asJSON {
				listed := make([]listedTutorial, 0, len(defs))
				for _, def := range defs {
					versions := make(map[string]string, len(def.Versions))
					for rev, v := range def.Versions {
						versions[rev] = v.Number()
					}
					listed = append(listed, listedTutorial{
						ID:        def.ID,
						Name:      def.Name,
						GitHub:    def.GitHub,
						BaseRoute: def.BaseRoute,
						Versions:  versions,
					})
				}
				data, err := json.MarshalIndent(listed, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling tutorials: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			for _, def := range defs {
				fmt.Fprintf(out, "%s\t%s\t/%s\t%s\n", def.ID, def.GitHub, def.BaseRoute, def.Name)
				for _, rev := range def.Revisions() {
					fmt.Fprintf(out, "  %s => %s\n", rev, def.Versions[rev].Number())
				}
			}
			if len(defs) == 0 {
				fmt.Fprintln(out, "No tutorials registered.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
