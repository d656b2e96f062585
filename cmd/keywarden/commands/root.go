package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"keywarden/internal/app"
	"keywarden/internal/password"
	"keywarden/internal/subkey"
)

var (
	home   string
	appCtx *app.App
)

// Execute builds the command tree and runs it.
func Execute() error {
	root := &cobra.Command{
		Use:           "keywarden",
		Short:         "Validator key tools: generate, encrypt, derive and multisig",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := app.DefaultHome()
				if err != nil {
					return err
				}
				home = dir
			}
			cfg, err := app.LoadConfig(home)
			if err != nil {
				return err
			}
			appCtx = app.New(cfg, subkey.Default())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.keywarden)")

	root.AddCommand(
		genCmd(), genAllCmd(),
		inspectCmd(), deriveCmd(), multisigCmd(),
		saveCmd(), loadCmd(), getCmd(),
		listCmd(), selectCmd(),
	)
	return root.Execute()
}

// printJSON writes indented JSON to stdout; results stay machine-readable
// because all prompts and status text go to stderr.
func printJSON(v any) error {
	blob, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(blob))
	return nil
}

// status writes a human progress line to stderr.
func status(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// applyConfigDefaults lets config.yaml supply scheme/network when the
// flags were left at their built-in defaults.
func applyConfigDefaults(cmd *cobra.Command, scheme, network *string) {
	if scheme != nil && !cmd.Flags().Changed("scheme") && appCtx.Config.Scheme != "" {
		*scheme = appCtx.Config.Scheme
	}
	if network != nil && !cmd.Flags().Changed("network") && appCtx.Config.Network != "" {
		*network = appCtx.Config.Network
	}
}

// passwordOpts are the shared password-source flags.
type passwordOpts struct {
	password string
	file     string
	stdin    bool
	prompt   bool
}

func (p *passwordOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.password, "password", "", "password (omit to be prompted)")
	cmd.Flags().StringVar(&p.file, "password-file", "", "read password bytes from a file (raw, newline trimmed)")
	cmd.Flags().BoolVar(&p.stdin, "password-stdin", false, "read password bytes from stdin (first line)")
	cmd.Flags().BoolVar(&p.prompt, "prompt", false, "prompt for password")
}

func (p *passwordOpts) source() password.Source {
	return password.Source{
		Value:   p.password,
		File:    p.file,
		Stdin:   p.stdin,
		Prompt:  p.prompt,
		Secrets: appCtx.Secrets,
	}
}
