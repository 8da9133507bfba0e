package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/legacykeep/legacy-vault/internal/adapter"
	"github.com/legacykeep/legacy-vault/internal/config"
	"github.com/legacykeep/legacy-vault/internal/logger"
	"github.com/legacykeep/legacy-vault/internal/service"
	"github.com/legacykeep/legacy-vault/internal/store"
	"github.com/legacykeep/legacy-vault/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("legacy-vault-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})
	serverAdapter.SetToken(cfg.Adapter.Token)

	var cache *store.ClientVaultCache
	if cfg.Cache.Path != "" {
		cache, err = store.NewClientVaultCache(ctx, cfg.Cache.Path, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create local vault cache")
		}
		defer cache.Close()
	}

	services := service.NewClientServices(serverAdapter, cache, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	password, vault, usedRecovery, err := ui.UnlockFlow(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("unlock error")
	}

	log.Info().Int("entries", len(vault)).Msg("vault unlocked")

	// a used recovery key is spent: rotate the password and mint a new one
	if usedRecovery {
		if err = rotatePassword(ctx, services, ui, password); err != nil {
			log.Fatal().Err(err).Msg("password rotation error")
		}
	}
}

func rotatePassword(ctx context.Context, services *service.ClientServices, ui *tui.TUI, oldPassword string) error {
	newPassword, err := ui.ChangePasswordFlow()
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	if err != nil {
		return err
	}

	result, err := services.VaultService.ChangePassword(ctx, oldPassword, newPassword)
	if err != nil {
		return err
	}

	return ui.ShowRecoveryKey(result)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
