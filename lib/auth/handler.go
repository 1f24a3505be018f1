package authhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"hr-office-backend/db"
	employeestore "hr-office-backend/lib/dicts/employee/store"
	authutils "hr-office-backend/lib/utils/auth-utils"
	"hr-office-backend/models"
	authapimodels "hr-office-backend/models/api/auth"
)

type Provider interface {
	Login(data authapimodels.LoginData) (view authapimodels.LoginView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	employeeStore employeestore.Provider
}

func (i impl) Login(data authapimodels.LoginData) (view authapimodels.LoginView, err error) {
	if err = data.Validate(); err != nil {
		return view, errors.Wrap(models.ErrBadRequest, err.Error())
	}
	logger := log.WithField("email", data.Email)
	rec, err := i.employeeStore.GetByEmail(data.Email)
	if err != nil {
		return view, err
	}
	if rec == nil {
		logger.Warn("попытка входа с неизвестной почтой")
		return view, errors.Wrap(models.ErrForbidden, "неверная почта или пароль")
	}
	err = bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(data.Password))
	if err != nil {
		logger.Warn("попытка входа с неверным паролем")
		return view, errors.Wrap(models.ErrForbidden, "неверная почта или пароль")
	}
	token, err := authutils.GetToken(rec.ID, rec.GetFullName(), rec.Role)
	if err != nil {
		return view, errors.Wrap(err, "ошибка формирования токена")
	}
	logger.WithField("user_id", rec.ID).Info("пользователь вошел в систему")
	return authapimodels.LoginView{
		AccessToken: token,
		UserID:      rec.ID,
		FullName:    rec.GetFullName(),
		Role:        string(rec.Role),
	}, nil
}
