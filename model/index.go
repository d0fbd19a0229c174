package model

type TokenData struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt"`
}

type TokenClaim struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	TotalCount int64 `json:"totalCount"`
}
