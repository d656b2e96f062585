package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keywarden/internal/domain"
)

func saveCmd() *cobra.Command {
	var (
		scheme       string
		network      string
		phrase       string
		phrasePrompt bool
		public       string
		out          string
		name         string
		pw           passwordOpts
	)
	cmd := &cobra.Command{
		Use:     "save",
		Aliases: []string{"key-save"},
		Short:   "Encrypt and save a key file (scrypt + AES-GCM)",
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, &scheme, &network)
			sch, err := domain.ParseScheme(scheme)
			if err != nil {
				return err
			}

			if phrasePrompt || (phrase == "" && public == "") {
				// Hidden entry; the phrase never reaches terminal echo or
				// shell history.
				raw, err := appCtx.Secrets.ReadSecret("Enter secret phrase (input hidden): ")
				if err != nil {
					return err
				}
				if len(raw) == 0 {
					return fmt.Errorf("secret phrase cannot be empty")
				}
				phrase = string(raw)
			}

			var rec *domain.KeyRecord
			if phrase != "" {
				rec, err = appCtx.Keys.FromPhrase(cmd.Context(), phrase, sch, network)
			} else {
				rec, err = appCtx.Keys.FromPublic(cmd.Context(), public, sch, network)
			}
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
			status("Saved encrypted key to %s", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&scheme, "scheme", "sr25519", "key scheme: sr25519 or ed25519")
	cmd.Flags().StringVar(&network, "network", "substrate", "network id passed to subkey")
	cmd.Flags().StringVar(&phrase, "phrase", "", "secret phrase (mnemonic)")
	cmd.Flags().BoolVar(&phrasePrompt, "phrase-prompt", false, "prompt securely for the secret phrase")
	cmd.Flags().StringVar(&public, "public", "", "0x<hex public key>")
	cmd.Flags().StringVar(&out, "out", "", "output file path (default: <keys-dir>/<timestamp>-<scheme>.json)")
	cmd.Flags().StringVar(&name, "name", "", "filename under the keys dir")
	pw.register(cmd)
	return cmd
}
