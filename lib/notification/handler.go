package notification

import (
	"time"

	log "github.com/sirupsen/logrus"
	"hr-office-backend/db"
	connectionhub "hr-office-backend/lib/notification/hub"
	pushdatastore "hr-office-backend/lib/notification/store"
	dbmodels "hr-office-backend/models/db"
	wsmodels "hr-office-backend/models/ws"
)

type Provider interface {
	Notify(userID, code, msg string)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: pushdatastore.NewInstance(db.DB),
	}
}

type impl struct {
	store pushdatastore.Provider
}

// Notify отправляет событие пользователю в websocket.
// Если пользователь не подключен, событие сохраняется и будет
// доставлено при следующем подключении.
func (i impl) Notify(userID, code, msg string) {
	logger := log.
		WithField("user_id", userID).
		WithField("event_code", code)
	if connectionhub.Instance != nil && connectionhub.Instance.IsConnected(userID) {
		connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     time.Now().Format("02.01.2006 15:04:05"),
			Code:     code,
			Msg:      msg,
		})
		return
	}
	err := i.store.Create(dbmodels.PushData{
		UserID: userID,
		Code:   code,
		Msg:    msg,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения не доставленного события")
	}
}
