package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keywarden/internal/domain"
)

func deriveCmd() *cobra.Command {
	var (
		scheme     string
		network    string
		phrase     string
		public     string
		withSecret bool
	)
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive public key and SS58 address from a secret phrase or public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, &scheme, &network)
			sch, err := domain.ParseScheme(scheme)
			if err != nil {
				return err
			}

			var rec *domain.KeyRecord
			switch {
			case phrase != "":
				rec, err = appCtx.Keys.FromPhrase(cmd.Context(), phrase, sch, network)
			case public != "":
				rec, err = appCtx.Keys.FromPublic(cmd.Context(), public, sch, network)
			default:
				return fmt.Errorf("provide --phrase or --public")
			}
			if err != nil {
				return err
			}
			if err := appCtx.Keys.Enrich(cmd.Context(), rec); err != nil {
				return err
			}
			if withSecret {
				return printJSON(rec)
			}
			return printJSON(rec.Redacted())
		},
	}
	cmd.Flags().StringVar(&scheme, "scheme", "sr25519", "key scheme: sr25519 or ed25519")
	cmd.Flags().StringVar(&network, "network", "substrate", "network id passed to subkey")
	cmd.Flags().StringVar(&phrase, "phrase", "", "secret phrase (mnemonic)")
	cmd.Flags().StringVar(&public, "public", "", "0x<hex public key>")
	cmd.Flags().BoolVar(&withSecret, "with-secret", false, "include secret material in output")
	return cmd
}
