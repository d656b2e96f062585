package commands

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"keywarden/internal/multisig"
)

func multisigCmd() *cobra.Command {
	var (
		signers   []string
		threshold uint16
		prefix    uint8
	)
	cmd := &cobra.Command{
		Use:   "multisig",
		Short: "Compute the deterministic multisig address for signers and threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("ss58-prefix") {
				prefix = appCtx.Config.SS58Prefix
			}
			addr, err := multisig.Derive(signers, threshold, prefix)
			if err != nil {
				return err
			}
			return printJSON(map[string]any{
				"threshold":      threshold,
				"ss58_prefix":    prefix,
				"account_id_hex": hex.EncodeToString(addr.AccountID[:]),
				"ss58_address":   addr.SS58,
				"signers":        signers,
			})
		},
	}
	cmd.Flags().StringArrayVar(&signers, "signer", nil, "SS58 signer address; repeat for each signer")
	cmd.Flags().Uint16Var(&threshold, "threshold", 0, "number of approvals required")
	cmd.Flags().Uint8Var(&prefix, "ss58-prefix", 42, "SS58 network prefix for the derived address")
	_ = cmd.MarkFlagRequired("signer")
	_ = cmd.MarkFlagRequired("threshold")
	return cmd
}
