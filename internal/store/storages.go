package store

type Storages struct {
	VaultRepository      VaultRepository
	ShareTokenRepository ShareTokenRepository
}

func NewStorages(db *DB) *Storages {
	return &Storages{
		VaultRepository:      NewVaultRepository(db, db.logger),
		ShareTokenRepository: NewShareTokenRepository(db, db.logger),
	}
}
