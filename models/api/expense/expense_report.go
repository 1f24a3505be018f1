package expenseapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-office-backend/models"
	apimodels "hr-office-backend/models/api"
	dbmodels "hr-office-backend/models/db"
)

type ExpenseReportData struct {
	AssignationID string  `json:"assignation_id"`
	TypeID        string  `json:"type_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
}

func (e ExpenseReportData) Validate() error {
	if e.AssignationID == "" {
		return errors.New("не указано назначение")
	}
	if e.TypeID == "" {
		return errors.New("не указан тип расходов")
	}
	if e.Amount <= 0 {
		return errors.New("сумма расхода должна быть положительной")
	}
	return nil
}

type ExpenseReportView struct {
	ID            string               `json:"id"`
	AssignationID string               `json:"assignation_id"`
	TypeID        string               `json:"type_id"`
	TypeName      string               `json:"type_name"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Amount        float64              `json:"amount"`
	Status        models.ExpenseStatus `json:"status"`
	Date          time.Time            `json:"date"`
	Attachments   []AttachmentView     `json:"attachments"`
}

func ExpenseReportConvert(rec dbmodels.ExpenseReport) ExpenseReportView {
	result := ExpenseReportView{
		ID:            rec.ID,
		AssignationID: rec.AssignationID,
		TypeID:        rec.TypeID,
		Title:         rec.Title,
		Description:   rec.Description,
		Amount:        rec.Amount,
		Status:        rec.Status,
		Date:          rec.CreatedAt,
	}
	if rec.Type != nil {
		result.TypeName = rec.Type.Name
	}
	attachments := []AttachmentView{}
	for _, file := range rec.Attachments {
		attachments = append(attachments, AttachmentConvert(file))
	}
	result.Attachments = attachments
	return result
}

type AttachmentView struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	FileSize    int64  `json:"file_size"`
}

func AttachmentConvert(rec dbmodels.FileStorage) AttachmentView {
	return AttachmentView{
		ID:          rec.ID,
		FileName:    rec.FileName,
		ContentType: rec.ContentType,
		FileSize:    rec.FileSize,
	}
}

// AttachmentData - вложение, передаваемое в JSON как base64.
type AttachmentData struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"` // base64
}

func (a AttachmentData) Validate() error {
	if a.FileName == "" {
		return errors.New("не указано имя файла")
	}
	if a.Content == "" {
		return errors.New("пустое содержимое файла")
	}
	return nil
}

// AttachmentContentView - содержимое вложения для скачивания через JSON.
type AttachmentContentView struct {
	AttachmentView
	Content string `json:"content"` // base64
}

type QueueFilter struct {
	apimodels.Pagination
	Status models.ExpenseStatus `json:"status"`
}

// QueueItemView - элемент очереди оператора: назначение, у которого есть
// хотя бы одна строка расходов в запрошенном статусе.
type QueueItemView struct {
	AssignationID string  `json:"assignation_id"`
	EmployeeName  string  `json:"employee_name"`
	MissionName   string  `json:"mission_name"`
	LinesCount    int64   `json:"lines_count"`
	TotalAmount   float64 `json:"total_amount"`
}
