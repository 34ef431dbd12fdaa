package store

import (
	"log"

	"github.com/fernet/fernet-go"

	"github.com/casecollector/Case-Collector-Backend/internal/model"
)

// CredentialStore persists the CSFloat API key and its validation state.
// When a fernet key is configured the API key is encrypted at rest; with a
// nil key the credential is stored in the clear.
type CredentialStore struct {
	path   string
	secret *fernet.Key
}

// NewCredentialStore creates a CredentialStore backed by the given file.
// secret may be nil to disable encryption.
func NewCredentialStore(path string, secret *fernet.Key) *CredentialStore {
	return &CredentialStore{path: path, secret: secret}
}

// Load reads the credential from disk. A missing or malformed file, or a
// token that fails decryption, yields the zero credential with a logged
// warning; credential corruption is never fatal.
func (s *CredentialStore) Load() model.Credential {
	var cred model.Credential
	found, err := readJSONFile(s.path, &cred)
	if err != nil {
		log.Printf("failed to parse credential store, using defaults: %v", err)
		return model.Credential{}
	}
	if !found {
		return model.Credential{}
	}
	if cred.APIKey != nil && s.secret != nil {
		plain := fernet.VerifyAndDecrypt([]byte(*cred.APIKey), 0, []*fernet.Key{s.secret})
		if plain == nil {
			log.Printf("stored API key failed decryption, discarding credential")
			return model.Credential{}
		}
		key := string(plain)
		cred.APIKey = &key
	}
	return cred
}

// Save writes the credential to disk, encrypting the API key when a fernet
// secret is configured.
func (s *CredentialStore) Save(cred model.Credential) error {
	out := cred
	if cred.APIKey != nil && s.secret != nil {
		tok, err := fernet.EncryptAndSign([]byte(*cred.APIKey), s.secret)
		if err != nil {
			return err
		}
		enc := string(tok)
		out.APIKey = &enc
	}
	return writeJSONFile(s.path, out)
}
