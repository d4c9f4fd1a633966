package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	credentialsTable = "credentials"
	secretsTable     = "secrets"

	// insertBatchSize keeps a single INSERT well below SQLite's bound
	// variable limit (7 columns per row).
	insertBatchSize = 500
)

var credentialColumns = []string{
	"id",
	"title",
	"username",
	"url",
	"item_key_cipher",
	"secret_cipher",
}

// stmt is the SQLite statement builder: '?' placeholders.
var stmt = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetAllCredentialsQuery() (string, []any, error) {
	return stmt.Select(credentialColumns...).
		From(credentialsTable).
		OrderBy("position").
		ToSql()
}

func buildGetCredentialQuery(id string) (string, []any, error) {
	return stmt.Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildClearCredentialsQuery() (string, []any, error) {
	return stmt.Delete(credentialsTable).ToSql()
}

// buildInsertCredentialsQuery builds one multi-row INSERT for creds. offset is
// the position of creds[0] in the full cache.
func buildInsertCredentialsQuery(offset int, creds []models.CachedCredential) (string, []any, error) {
	insert := stmt.Insert(credentialsTable).
		Columns(append([]string{"position"}, credentialColumns...)...)

	for i, c := range creds {
		insert = insert.Values(
			offset+i,
			c.ID,
			c.Title,
			c.Username,
			c.URL,
			string(c.ItemKeyCipher),
			string(c.SecretCipher),
		)
	}

	return insert.ToSql()
}

func buildGetSecretQuery(name string) (string, []any, error) {
	return stmt.Select("value").
		From(secretsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildSetSecretQuery(name string, value []byte) (string, []any, error) {
	return stmt.Insert(secretsTable).
		Columns("name", "value").
		Values(name, value).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value").
		ToSql()
}

func buildDeleteSecretsQuery(names []string) (string, []any, error) {
	return stmt.Delete(secretsTable).
		Where(sq.Eq{"name": names}).
		ToSql()
}
