package authapimodels

import "github.com/pkg/errors"

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l LoginData) Validate() error {
	if l.Email == "" {
		return errors.New("не указана почта")
	}
	if l.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type LoginView struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
}
