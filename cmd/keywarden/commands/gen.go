package commands

import (
	"github.com/spf13/cobra"

	"keywarden/internal/domain"
)

func genCmd() *cobra.Command {
	var (
		scheme  string
		network string
		out     string
		name    string
		pw      passwordOpts
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a single keypair via subkey and save it encrypted",
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, &scheme, &network)
			sch, err := domain.ParseScheme(scheme)
			if err != nil {
				return err
			}
			rec, err := appCtx.Keys.Generate(cmd.Context(), sch, network)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				if name != "" {
					path = appCtx.Store.Resolve(name)
				} else {
					path = appCtx.Store.DefaultPath(sch, "")
				}
			}
			secret, err := pw.source().ResolveNew("Set password for key file: ", "Confirm password: ")
			if err != nil {
				return err
			}
			if err := appCtx.Keys.Save(cmd.Context(), rec, path, secret); err != nil {
				return err
			}
			status("Saved generated key to %s", path)
			return printJSON(rec.Redacted())
		},
	}
	cmd.Flags().StringVar(&scheme, "scheme", "sr25519", "key scheme: sr25519 or ed25519")
	cmd.Flags().StringVar(&network, "network", "substrate", "network id passed to subkey")
	cmd.Flags().StringVar(&out, "out", "", "output file path (default: <keys-dir>/<timestamp>-<scheme>.json)")
	cmd.Flags().StringVar(&name, "name", "", "filename under the keys dir instead of a timestamp")
	pw.register(cmd)
	return cmd
}
