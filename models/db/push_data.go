package dbmodels

// PushData - событие, не доставленное пользователю по websocket.
// Отправляется и удаляется при следующем подключении.
type PushData struct {
	BaseModel
	UserID string `gorm:"type:varchar(36);index:idx_push_user"`
	Code   string `gorm:"type:varchar(255)"`
	Msg    string
}
