package subkey_test

import (
	"testing"

	"keywarden/internal/subkey"
)

const generateOutput = `Secret phrase:       bottom drive obey lake curtain smoke basket hold race lonely fit walk
  Network ID:        substrate
  Secret seed:       0xfac7959dbfe72f052e5a0c3c8d6530f202b02fd8f9f5ca3580ec8deb7797479e
  Public key (hex):  0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d
  Account ID:        0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d
  Public key (SS58): 5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY
  SS58 Address:      5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY
`

func TestParse_GenerateOutput(t *testing.T) {
	out := subkey.Parse(generateOutput)

	if want := "bottom drive obey lake curtain smoke basket hold race lonely fit walk"; out.SecretPhrase != want {
		t.Fatalf("secret phrase = %q", out.SecretPhrase)
	}
	if want := "0xfac7959dbfe72f052e5a0c3c8d6530f202b02fd8f9f5ca3580ec8deb7797479e"; out.SecretSeed != want {
		t.Fatalf("secret seed = %q", out.SecretSeed)
	}
	if want := "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"; out.PublicKeyHex != want {
		t.Fatalf("public key = %q", out.PublicKeyHex)
	}
	if want := "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"; out.SS58Address != want {
		t.Fatalf("ss58 address = %q", out.SS58Address)
	}
}

func TestParse_InspectPublicOutput(t *testing.T) {
	// Inspecting a public key yields no secret lines.
	out := subkey.Parse(`Network ID/Version: substrate
  Public key (hex):  0x8eaf04151687736326c9fea17e25fc5287613693c912909cb226aa4794f26a48
  SS58 Address:      5FHneW46xGXgs5mUiveU4sbTyGBzmstUspZC92UhjJM694ty
`)
	if out.SecretPhrase != "" || out.SecretSeed != "" {
		t.Fatal("secret fields should be empty")
	}
	if out.SS58Address != "5FHneW46xGXgs5mUiveU4sbTyGBzmstUspZC92UhjJM694ty" {
		t.Fatalf("ss58 address = %q", out.SS58Address)
	}
}

func TestParse_EmptyAndUnknownLines(t *testing.T) {
	out := subkey.Parse("warning: something unrelated\n\n")
	if out != (subkey.Parse("")) {
		t.Fatalf("unexpected fields parsed: %+v", out)
	}
}
