package dto

import (
	"encoding/json"
	"time"
)

// RefreshTokenRequest is posted by the extension when its access token expires.
// UserID is accepted as either a JSON number or string.
type RefreshTokenRequest struct {
	RefreshToken string      `json:"refresh_token" binding:"required"`
	UserID       interface{} `json:"user_id"       binding:"required"`
}

// ProviderTokenResponse is a decoded bgm.tv token endpoint reply.
type ProviderTokenResponse struct {
	StatusCode int
	// Body is the JSON object as sent; numbers are json.Number.
	Body map[string]interface{}
	// IssuedAt comes from the response Date header.
	IssuedAt time.Time
}

// HasError reports whether the provider returned an OAuth error object.
func (r *ProviderTokenResponse) HasError() bool {
	_, ok := r.Body["error"]
	return ok
}

// Decode re-encodes the body into v.
func (r *ProviderTokenResponse) Decode(v interface{}) error {
	raw, err := json.Marshal(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
