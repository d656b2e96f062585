package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loadCmd() *cobra.Command {
	var (
		file       string
		name       string
		withSecret bool
		pw         passwordOpts
	)
	cmd := &cobra.Command{
		Use:     "load [name]",
		Aliases: []string{"key-load"},
		Short:   "Decrypt a saved key file and print its fields",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := file
			if target == "" {
				n := name
				if n == "" && len(args) == 1 {
					n = args[0]
				}
				if n == "" {
					return fmt.Errorf("provide --file, --name, or a positional name")
				}
				target = appCtx.Store.Resolve(n)
			}
			secret, err := pw.source().ResolveExisting("Password for key file: ")
			if err != nil {
				return err
			}
			rec, err := appCtx.Keys.Load(target, secret)
			if err != nil {
				return err
			}
			if withSecret {
				return printJSON(rec)
			}
			return printJSON(rec.Redacted())
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path of the encrypted key file")
	cmd.Flags().StringVar(&name, "name", "", "filename under the keys dir (\".json\" optional)")
	cmd.Flags().BoolVar(&withSecret, "with-secret", false, "include secret material in output")
	pw.register(cmd)
	return cmd
}
