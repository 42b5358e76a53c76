package dto

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Messages — сообщения об ошибках валидации по полям
func (RegisterRequest) Messages() map[string]string {
	return map[string]string{
		"name":     "Name Is Required",
		"email":    "Please Include A Valid E-Mail",
		"password": "Please Enter A Password With 6 or More Characters",
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (LoginRequest) Messages() map[string]string {
	return map[string]string{
		"email":    "Please Include A Valid E-Mail",
		"password": "Password Is Required",
	}
}

type TokenResponse struct {
	Token string `json:"token"`
}
