package commands

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"keywarden/internal/domain"
	"keywarden/internal/password"
)

// gen-all produces the validator pair: Aura (sr25519) and GRANDPA
// (ed25519), sealed under one password.
func genAllCmd() *cobra.Command {
	var (
		network     string
		outDir      string
		auraName    string
		grandpaName string
		pw          passwordOpts
	)
	cmd := &cobra.Command{
		Use:   "gen-all",
		Short: "Generate Aura (sr25519) and GRANDPA (ed25519) keypairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, nil, &network)
			ctx := cmd.Context()

			aura, err := appCtx.Keys.Generate(ctx, domain.SchemeSr25519, network)
			if err != nil {
				return err
			}
			grandpa, err := appCtx.Keys.Generate(ctx, domain.SchemeEd25519, network)
			if err != nil {
				return err
			}

			dir := outDir
			if dir == "" {
				dir = appCtx.Store.Dir()
			}
			stamp := time.Now().UTC().Format("20060102-150405")
			auraPath := filepath.Join(dir, fileName(auraName, stamp+"-aura-sr25519.json"))
			grandpaPath := filepath.Join(dir, fileName(grandpaName, stamp+"-grandpa-ed25519.json"))

			secret, err := pw.source().ResolveNew("Set password for key files: ", "Confirm password: ")
			if err != nil {
				return err
			}
			if secret == nil {
				// One interactive prompt covers both files.
				secret, err = password.PromptNew(appCtx.Secrets, "Set password for key files: ", "Confirm password: ")
				if err != nil {
					return err
				}
			}

			if err := appCtx.Keys.Save(ctx, aura, auraPath, secret); err != nil {
				return err
			}
			if err := appCtx.Keys.Save(ctx, grandpa, grandpaPath, secret); err != nil {
				return err
			}
			status("Saved Aura key to %s", auraPath)
			status("Saved GRANDPA key to %s", grandpaPath)
			return printJSON(map[string]any{
				"aura":    aura.Redacted(),
				"grandpa": grandpa.Redacted(),
				"network": network,
				"saved":   map[string]string{"aura": auraPath, "grandpa": grandpaPath},
			})
		},
	}
	cmd.Flags().StringVar(&network, "network", "substrate", "network id passed to subkey")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory to save both keys (default: keys dir)")
	cmd.Flags().StringVar(&auraName, "aura-name", "", "filename for the Aura key")
	cmd.Flags().StringVar(&grandpaName, "grandpa-name", "", "filename for the GRANDPA key")
	pw.register(cmd)
	return cmd
}

func fileName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	if !strings.HasSuffix(name, ".json") {
		return name + ".json"
	}
	return name
}
