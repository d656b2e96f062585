package app

import (
	"keywarden/internal/domain"
	"keywarden/internal/password"
	"keywarden/internal/services/keyring"
	"keywarden/internal/store"
)

// App is the dependency graph shared by all subcommands.
type App struct {
	Config  Config
	Secrets domain.SecretReader
	Store   *store.FileStore
	Keys    *keyring.Service
}

// New wires the store and keyring service. tool may be a test double.
func New(cfg Config, tool domain.KeyTool) *App {
	secrets := password.NewTerminalReader()
	st := store.NewFileStore(cfg.KeysDir, secrets)
	return &App{
		Config:  cfg,
		Secrets: secrets,
		Store:   st,
		Keys:    keyring.New(tool, st),
	}
}
