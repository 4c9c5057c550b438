package main

import (
	"context"

	"github.com/okay-you-very-pro/oyvp/internal/settings"
	"github.com/okay-you-very-pro/oyvp/internal/storage"
	"github.com/okay-you-very-pro/oyvp/internal/version"
)

// appClient resolves dependencies lazily so configuration is loaded first.
type appClient struct{}

var coreClient = appClient{}

// SettingsStore returns the store at the platform config location.
func (appClient) SettingsStore() *settings.Store {
	return settings.NewDefaultStore()
}

// OpenRoster opens the configured roster backend.
func (appClient) OpenRoster(ctx context.Context) (storage.Roster, error) {
	return storage.NewRosterFromConfig(ctx)
}

func (appClient) Version() string {
	return version.String()
}
