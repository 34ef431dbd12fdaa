package request

// SetCredentialRequest is the payload for configuring the CSFloat API key.
type SetCredentialRequest struct {
	APIKey string `json:"api_key"`
}
