package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mod-updater/internal/app"
)

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <repo> <group> <artifact>",
		Short: "Print the latest release of a single Maven artifact",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), cmd, args)
		},
	}
}

func runLookup(ctx context.Context, cmd *cobra.Command, args []string) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Lookup(ctx, app.LookupRequest{
		ProjectRequest: projectRequest(),
		Reference:      strings.Join(args, ","),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Version)
	return nil
}
