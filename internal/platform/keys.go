package platform

// Names of the values every adapter keeps in its secure key/value area.
const (
	keyUserSecretKey   = "user_secret_key"
	keySessionMetadata = "session_metadata"
	keyEncryptedVault  = "encrypted_vault"
)
