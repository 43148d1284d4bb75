package responses

type RegisterUser struct {
	UserID string `json:"user_id"`
}

type LoginUser struct {
	AccessToken string `json:"access_token"`
}
