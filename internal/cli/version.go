package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DehanLUO/modern-go-template/internal/buildmeta"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}

			ctx := cmd.Context()
			svc := a.services.BuildInfoService
			stage := buildmeta.Stage(svc.GetBuildMetadata(ctx))

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", svc.GetAppVersion(ctx), stage)
			return err
		},
	}
}
