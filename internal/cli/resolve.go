package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mod-updater/internal/app"
)

type resolveOptions struct {
	Output string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved variable namespace as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the namespace to this file instead of stdout")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Resolve(ctx, app.ResolveRequest{
		ProjectRequest: projectRequest(),
		Output:         resolveString(cmd, opts.Output, "output", "output"),
	})
	if err != nil {
		return err
	}
	if result.Output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote namespace to %s\n", result.Output)
		return nil
	}
	_, err = cmd.OutOrStdout().Write(result.Encoded)
	return err
}
