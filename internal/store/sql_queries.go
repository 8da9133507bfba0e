package store

import sq "github.com/Masterminds/squirrel"

const (
	getVault = `SELECT user_id, password_salt, encrypted_vault, password_verifier, encrypted_password_recovery, updated_at
	FROM vaults
	WHERE user_id = $1;`

	upsertVault = `INSERT INTO vaults (user_id, password_salt, encrypted_vault, password_verifier, encrypted_password_recovery, updated_at)
	VALUES ($1, $2, $3, $4, $5, NOW())
	ON CONFLICT (user_id) DO UPDATE
	SET password_salt = EXCLUDED.password_salt,
		encrypted_vault = EXCLUDED.encrypted_vault,
		password_verifier = EXCLUDED.password_verifier,
		encrypted_password_recovery = EXCLUDED.encrypted_password_recovery,
		updated_at = NOW()
	RETURNING user_id, password_salt, encrypted_vault, password_verifier, encrypted_password_recovery, updated_at;`
)

// psql builds parameterised PostgreSQL statements ($N placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// recoverableTokens is the shared predicate of the consistency rule: only
// active tokens that actually hold a recovery grant are considered.
func recoverableTokens(userID int64) sq.Sqlizer {
	return sq.And{
		sq.Eq{"user_id": userID},
		sq.Eq{"is_active": true},
		sq.NotEq{"encrypted_recovery_key": nil},
	}
}

// buildInvalidateRecoverableQuery produces the single conditional UPDATE that
// clears the recovery material from every recovery-capable token of the user.
// The rows stay active: the grant itself survives, it just can no longer
// decrypt anything without the holder entering the new recovery key by hand.
func buildInvalidateRecoverableQuery(userID int64) (string, []any, error) {
	return psql.Update("share_tokens").
		Set("encrypted_recovery_key", sq.Expr("NULL")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(recoverableTokens(userID)).
		ToSql()
}

// buildCountRecoverableQuery counts the tokens the invalidation statement
// would touch, using the exact same predicate.
func buildCountRecoverableQuery(userID int64) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From("share_tokens").
		Where(recoverableTokens(userID)).
		ToSql()
}

// buildListActiveGrantsQuery selects every active share token of the user,
// newest first.
func buildListActiveGrantsQuery(userID int64) (string, []any, error) {
	return psql.Select("id", "user_id", "is_active", "encrypted_recovery_key", "pin_salt", "created_at", "updated_at").
		From("share_tokens").
		Where(sq.And{sq.Eq{"user_id": userID}, sq.Eq{"is_active": true}}).
		OrderBy("created_at DESC").
		ToSql()
}

// buildCreateGrantQuery inserts a share token row. EncryptedRecoveryKey may
// be nil for tokens issued without a recovery grant.
func buildCreateGrantQuery(id string, userID int64, encryptedRecoveryKey *string, pinSalt string) (string, []any, error) {
	return psql.Insert("share_tokens").
		Columns("id", "user_id", "is_active", "encrypted_recovery_key", "pin_salt").
		Values(id, userID, true, encryptedRecoveryKey, pinSalt).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}
