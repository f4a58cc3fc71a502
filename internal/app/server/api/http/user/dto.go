package user

type credentialsRequest struct {
	Username string `json:"username" minLength:"3" maxLength:"32" doc:"Уникальное имя пользователя"`
	Password string `json:"password" minLength:"4" doc:"Пароль"`
}

type registerInput struct {
	Body credentialsRequest
}

type loginInput struct {
	Body credentialsRequest
}

// authOutput carries a dynamic status: expected auth failures answer 400 with
// the same body shape instead of a problem document.
type authOutput struct {
	Status int
	Body   AuthResponse
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}
