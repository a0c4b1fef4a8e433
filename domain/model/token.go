package model

// Token is the bgm.tv OAuth grant stored per user. ID always mirrors UserID.
type Token struct {
	ID           int64   `json:"_id"           bson:"_id"`
	UserID       int64   `json:"user_id"       bson:"user_id"`
	AccessToken  string  `json:"access_token"  bson:"access_token"`
	RefreshToken string  `json:"refresh_token" bson:"refresh_token"`
	TokenType    string  `json:"token_type"    bson:"token_type"`
	Scope        *string `json:"scope"         bson:"scope"`
	ExpiresIn    int64   `json:"expires_in"    bson:"expires_in"`
	// AuthTime is the provider's Date header at issue time, in epoch seconds.
	AuthTime int64 `json:"auth_time" bson:"auth_time"`
}
