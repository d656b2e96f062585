package commands

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"keywarden/internal/domain"
	"keywarden/internal/ss58"
)

// get prints public key information without ever decrypting anything: from
// an SS58 address, a 0x public key, or a stored envelope's public
// metadata.
func getCmd() *cobra.Command {
	var (
		publicKey   string
		ss58Address string
		name        string
		field       string
		scheme      string
		network     string
	)
	cmd := &cobra.Command{
		Use:   "get [address|name]",
		Short: "Print public key info without decrypting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, &scheme, &network)
			sch, err := domain.ParseScheme(scheme)
			if err != nil {
				return err
			}

			if publicKey != "" {
				rec, err := appCtx.Keys.FromPublic(cmd.Context(), publicKey, sch, network)
				if err != nil {
					return err
				}
				return printField(rec.Redacted(), field)
			}
			if ss58Address != "" {
				rec, err := addressRecord(ss58Address, sch, network)
				if err != nil {
					return err
				}
				return printField(rec, field)
			}
			if name != "" {
				return printStoredPublic(name, field)
			}
			if len(args) == 1 {
				// Positional input: an SS58 address if it decodes, a stored
				// key name otherwise.
				if rec, err := addressRecord(args[0], sch, network); err == nil {
					return printField(rec, field)
				}
				return printStoredPublic(args[0], field)
			}
			return fmt.Errorf("provide --public-key 0x<hex>, --ss58-address <addr>, or a name")
		},
	}
	cmd.Flags().StringVar(&publicKey, "public-key", "", "0x<hex public key>")
	cmd.Flags().StringVar(&ss58Address, "ss58-address", "", "SS58 address")
	cmd.Flags().StringVar(&name, "name", "", "stored key filename; reads public metadata only")
	cmd.Flags().StringVar(&field, "field", "", "print a single field instead of the full JSON")
	cmd.Flags().StringVar(&scheme, "scheme", "sr25519", "key scheme: sr25519 or ed25519")
	cmd.Flags().StringVar(&network, "network", "substrate", "network id")
	return cmd
}

func addressRecord(address string, scheme domain.Scheme, network string) (domain.KeyRecord, error) {
	id, ok := ss58.Decode(address)
	if !ok {
		return domain.KeyRecord{}, fmt.Errorf("invalid SS58 address %q", address)
	}
	rec := domain.KeyRecord{
		Scheme:       scheme,
		Network:      network,
		ByteArray:    id[:],
		PublicKeyHex: "0x" + hex.EncodeToString(id[:]),
		SS58Address:  address,
		KeyType:      "ss58",
		IsPair:       false,
	}
	rec.Stamp(time.Now())
	return rec, nil
}

func printStoredPublic(name, field string) error {
	env, err := appCtx.Store.ReadEnvelope(appCtx.Store.Resolve(name))
	if err != nil {
		return err
	}
	return printField(env.PublicRecord(time.Now()), field)
}

func printField(rec domain.KeyRecord, field string) error {
	if field == "" {
		return printJSON(rec)
	}
	blob, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	var m map[string]any
	if err := json.Unmarshal(blob, &m); err != nil {
		return err
	}
	v, ok := m[field]
	if !ok {
		return fmt.Errorf("field %q not found", field)
	}
	if s, ok := v.(string); ok {
		fmt.Println(s)
		return nil
	}
	return printJSON(v)
}
