package dto

type LoginRequest struct {
	Operador string `json:"operador" validate:"required"`
	PIN      string `json:"pin"      validate:"required,min=4"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Operador    string `json:"operador"`
}
