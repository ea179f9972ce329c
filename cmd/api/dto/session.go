package dto

// SessionUser is the identity shown in the dashboard header.
type SessionUser struct {
	ID       string `json:"id" example:"12345"`
	Name     string `json:"name" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@example.com"`
	Image    string `json:"image,omitempty" example:"https://avatars.example.com/jane.png"`
	Provider string `json:"provider" example:"github"`
}

// ProviderDTO lists one configured sign-in provider.
type ProviderDTO struct {
	ID        string `json:"id" example:"github"`
	Name      string `json:"name" example:"GitHub"`
	SigninURL string `json:"signinUrl" example:"/auth/signin/github?callbackUrl=%2Fdashboard"`
}

// LoginPage is the payload of GET /login for a visitor without a session.
type LoginPage struct {
	CallbackURL string        `json:"callbackUrl" example:"/dashboard"`
	Error       string        `json:"error,omitempty" example:"access_denied"`
	Providers   []ProviderDTO `json:"providers"`
}

// TokenResponse carries a bearer token for API clients.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"86400"`
}
