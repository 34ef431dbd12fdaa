package model

// Credential holds the CSFloat API key state. APIKey is nil until a key has
// been set; IsValid records whether the last validation against the upstream
// service succeeded. In the persisted store the key is encrypted when a
// fernet secret is configured.
type Credential struct {
	APIKey  *string `json:"api_key"`
	IsValid bool    `json:"is_valid"`
}
