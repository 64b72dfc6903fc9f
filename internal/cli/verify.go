package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spachava753/tutorials/internal/verify"
)

// ErrVerifyFailed is returned when at least one revision could not be found.
var ErrVerifyFailed = errors.New("some tutorial revisions failed verification")

func newVerifyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [tutorial...]",
		Short: "Check that every tutorial revision exists on GitHub",
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := a.catalog.List()
			if len(args) > 0 {
				defs = defs[:0:0]
				for _, id := range args {
					def, err := a.catalog.Get(id)
					if err != nil {
						return err
					}
					defs = append(defs, def)
				}
			}

			v, err := verify.NewVerifier(a.client, a.cfg.GitHub.APIURL, a.cfg.Verify.Concurrency)
			if err != nil {
				return err
			}

			results, err := v.Verify(cmd.Context(), defs)
			if err != nil {
				return fmt.Errorf("verifying revisions: %w", err)
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				if r.OK() {
					fmt.Fprintf(out, "ok\t%s\t%s\t%s\n", r.TutorialID, r.Revision, r.CommitSHA)
					continue
				}
				failed++
				fmt.Fprintf(out, "FAIL\t%s\t%s\t%s: %s\n", r.TutorialID, r.Revision, *r.Error, r.Message)
			}

			fmt.Fprintf(out, "\n%d checked, %d failed\n", len(results), failed)
			if failed > 0 {
				return ErrVerifyFailed
			}
			return nil
		},
	}
}
