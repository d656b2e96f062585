package commands

import (
	"time"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored key files, most recently modified first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := appCtx.Store.List()
			if err != nil {
				return err
			}
			items := make([]map[string]any, 0, len(entries))
			for i, e := range entries {
				items = append(items, map[string]any{
					"index":    i,
					"file":     e.Name,
					"modified": e.Modified.UTC().Format(time.RFC3339),
				})
			}
			return printJSON(map[string]any{
				"keys_dir": appCtx.Store.Dir(),
				"items":    items,
			})
		},
	}
}
