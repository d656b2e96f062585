package commands

import (
	"github.com/spf13/cobra"

	"keywarden/internal/domain"
)

func inspectCmd() *cobra.Command {
	var (
		public  string
		scheme  string
		network string
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect a public key to its SS58 address",
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, &scheme, &network)
			sch, err := domain.ParseScheme(scheme)
			if err != nil {
				return err
			}
			rec, err := appCtx.Keys.FromPublic(cmd.Context(), public, sch, network)
			if err != nil {
				return err
			}
			return printJSON(rec.Redacted())
		},
	}
	cmd.Flags().StringVar(&public, "public", "", "0x<hex public key>")
	cmd.Flags().StringVar(&scheme, "scheme", "sr25519", "key scheme: sr25519 or ed25519")
	cmd.Flags().StringVar(&network, "network", "substrate", "network id passed to subkey")
	_ = cmd.MarkFlagRequired("public")
	return cmd
}
