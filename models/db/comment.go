package dbmodels

// Comment - заметка к заявке на найм или к назначению на командировку.
// Редактировать и удалять может только автор.
type Comment struct {
	BaseModel
	RequestID     *string   `gorm:"type:varchar(36);index:idx_comment_request"`
	AssignationID *string   `gorm:"type:varchar(36);index:idx_comment_assignation"`
	AuthorID      string    `gorm:"type:varchar(36)"`
	Author        *Employee `gorm:"foreignKey:AuthorID"`
	Text          string
}
