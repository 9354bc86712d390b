package domain

// AspCredential joins an ASP to a media with opaque secret references.
// Absence of a row means that (asp, media) pair is not scraped.
type AspCredential struct {
	AspID             string `json:"asp_id"`
	MediaID           string `json:"media_id"`
	UsernameSecretKey string `json:"username_secret_key"`
	PasswordSecretKey string `json:"password_secret_key"`
}

// Credential is a resolved login secret pair. Never persisted, never logged.
type Credential struct {
	Username string `json:"-"`
	Password string `json:"-"`
}
