package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func selectCmd() *cobra.Command {
	var (
		index      int
		show       bool
		withSecret bool
		pw         passwordOpts
	)
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select a stored key file by index, optionally decrypting it",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := appCtx.Store.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				status("No key files found in %s", appCtx.Store.Dir())
				return nil
			}

			interactive := !cmd.Flags().Changed("index")
			if interactive {
				status("Select a key file from %s:", appCtx.Store.Dir())
				for i, e := range entries {
					status("  [%d] %s", i, e.Name)
				}
				index, err = readIndex(len(entries))
				if err != nil {
					return err
				}
			} else if index < 0 || index >= len(entries) {
				return fmt.Errorf("index out of range (0..%d)", len(entries)-1)
			}

			chosen := entries[index]
			result := map[string]any{
				"index":    index,
				"selected": chosen.Path,
				"filename": chosen.Name,
			}
			if show || interactive {
				secret, err := pw.source().ResolveExisting("Password for key file: ")
				if err != nil {
					return err
				}
				rec, err := appCtx.Keys.Load(chosen.Path, secret)
				if err != nil {
					result["error"] = fmt.Sprintf("failed to load: %v", err)
				} else if withSecret {
					result["key"] = rec
				} else {
					result["key"] = rec.Redacted()
				}
			}
			return printJSON(result)
		},
	}
	cmd.Flags().IntVar(&index, "index", 0, "preselect by index (non-interactive)")
	cmd.Flags().BoolVar(&show, "show", false, "decrypt and include the key in the output")
	cmd.Flags().BoolVar(&withSecret, "with-secret", false, "include secret material when showing")
	pw.register(cmd)
	return cmd
}

func readIndex(n int) (int, error) {
	in := bufio.NewReader(os.Stdin)
	for {
		fmt.Fprint(os.Stderr, "Enter index: ")
		line, err := in.ReadString('\n')
		if err != nil {
			return 0, err
		}
		i, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && i >= 0 && i < n {
			return i, nil
		}
		status("Invalid selection, try again.")
	}
}
