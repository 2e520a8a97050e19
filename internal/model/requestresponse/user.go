package requestresponse

// SignupRequest : тело запроса регистрации
type SignupRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Mobile   string `json:"mobile" example:"+10000000000"`
	Password string `json:"password" example:"plain-text-password"`
}

// UserData : публичные поля пользователя (без пароля)
type UserData struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Mobile   string `json:"mobile,omitempty" example:"+10000000000"`
}

// SignupResponse : успешный ответ регистрации
type SignupResponse struct {
	Message string   `json:"message" example:"User registered successfully"`
	User    UserData `json:"user"`
}

// LoginRequest : тело запроса входа
type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"plain-text-password"`
}

// LoginResponse : успешный ответ входа
type LoginResponse struct {
	Message string   `json:"message" example:"Login successful"`
	User    UserData `json:"user"`
}

// ProfileResponse : данные профиля
type ProfileResponse struct {
	User UserData `json:"user"`
}

// UpdateProfileRequest : тело запроса частичного обновления профиля
type UpdateProfileRequest struct {
	Username string `json:"username" example:"alice2"`
	Mobile   string `json:"mobile" example:"+10000000001"`
}
