// service.go wires configuration into the library service shared by all
// commands. Configuration errors are startup-class: they propagate as hard
// command failures instead of being folded into report text.

package cmd

import (
	"zotmcp/internal/config"
	"zotmcp/internal/library"
	"zotmcp/internal/zotero"
)

// newService builds the library service from the environment.
func newService() (*library.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client, err := zotero.New(zotero.Config{
		LibraryID:   cfg.LibraryID,
		LibraryType: cfg.LibraryType,
		APIKey:      cfg.APIKey,
		Local:       cfg.Local,
	})
	if err != nil {
		return nil, err
	}

	return library.New(client), nil
}
