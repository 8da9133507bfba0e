package service

import (
	"github.com/legacykeep/legacy-vault/internal/adapter"
	"github.com/legacykeep/legacy-vault/internal/crypto"
	"github.com/legacykeep/legacy-vault/internal/logger"
	"github.com/legacykeep/legacy-vault/internal/store"
)

// Services bundles the server-side services.
type Services struct {
	VaultService      VaultService
	ShareTokenService ShareTokenService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		VaultService:      NewVaultService(storages.VaultRepository, crypto.NewVaultCipher(), logger),
		ShareTokenService: NewShareTokenService(storages.ShareTokenRepository, logger),
	}
}

// ClientServices bundles the client-side services behind one constructor so
// the TUI wires against a single value.
type ClientServices struct {
	VaultService  ClientVaultService
	UnlockService ClientUnlockService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, cache *store.ClientVaultCache, logger *logger.Logger) *ClientServices {
	cipher := crypto.NewVaultCipher()
	recovery := crypto.NewRecoveryKeeper()
	pin := crypto.NewPinKeeper()

	return &ClientServices{
		VaultService:  NewClientVaultService(serverAdapter, cipher, recovery, pin, logger),
		UnlockService: NewClientUnlockService(serverAdapter, cache, cipher, recovery, logger),
	}
}
