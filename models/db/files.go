package dbmodels

// FileStorage - метаданные вложения. Само содержимое лежит в S3 под
// ключом StorageKey, в БД бинарные данные не хранятся.
type FileStorage struct {
	BaseModel
	RequestID       *string `gorm:"type:varchar(36);index:idx_file_request"`
	ExpenseReportID *string `gorm:"type:varchar(36);index:idx_file_expense"`
	FileName        string  `gorm:"type:varchar(255)"`
	ContentType     string  `gorm:"type:varchar(255)"`
	FileSize        int64
	StorageKey      string `gorm:"type:varchar(255);uniqueIndex"`
	UploadedByID    string `gorm:"type:varchar(36)"`
}
