package expensestore

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-office-backend/models"
	expenseapimodels "hr-office-backend/models/api/expense"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ExpenseReport) (id string, err error)
	GetByID(id string) (rec *dbmodels.ExpenseReport, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListByAssignationID(assignationID string) (list []dbmodels.ExpenseReport, err error)
	DistinctStatusesByAssignationID(assignationID string) (statuses []models.ExpenseStatus, err error)
	ReimburseByAssignationID(assignationID string) (affected int64, err error)
	Queue(filter expenseapimodels.QueueFilter) (list []QueueRow, err error)
	QueueCount(filter expenseapimodels.QueueFilter) (count int64, err error)
}

// QueueRow - строка очереди оператора, агрегат по назначению.
type QueueRow struct {
	AssignationID string
	EmployeeName  string
	MissionName   string
	LinesCount    int64
	TotalAmount   float64
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ExpenseReport) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ExpenseReport, error) {
	rec := dbmodels.ExpenseReport{}
	err := i.db.
		Preload("Type").
		Preload("Attachments").
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.ExpenseReport{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.ExpenseReport{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.Delete(&rec).Error
}

func (i impl) ListByAssignationID(assignationID string) (list []dbmodels.ExpenseReport, err error) {
	err = i.db.
		Preload("Type").
		Preload("Attachments").
		Where("assignation_id = ?", assignationID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DistinctStatusesByAssignationID(assignationID string) (statuses []models.ExpenseStatus, err error) {
	err = i.db.
		Model(&dbmodels.ExpenseReport{}).
		Distinct("status").
		Where("assignation_id = ?", assignationID).
		Order("status").
		Pluck("status", &statuses).
		Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

// ReimburseByAssignationID массово возмещает невозмещенные строки назначения.
// Уже возмещенные строки не трогает, повторный вызов дает affected=0.
func (i impl) ReimburseByAssignationID(assignationID string) (affected int64, err error) {
	tx := i.db.
		Model(&dbmodels.ExpenseReport{}).
		Where("assignation_id = ?", assignationID).
		Where("status = ?", models.ExpensePending).
		Update("status", models.ExpenseReimbursed)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (i impl) Queue(filter expenseapimodels.QueueFilter) (list []QueueRow, err error) {
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	err = i.db.
		Model(&dbmodels.ExpenseReport{}).
		Select(`expense_reports.assignation_id,
			employees.last_name || ' ' || employees.first_name AS employee_name,
			missions.name AS mission_name,
			COUNT(*) AS lines_count,
			SUM(expense_reports.amount) AS total_amount`).
		Joins("JOIN mission_assignations ON mission_assignations.id = expense_reports.assignation_id").
		Joins("JOIN employees ON employees.id = mission_assignations.employee_id").
		Joins("JOIN missions ON missions.id = mission_assignations.mission_id").
		Where("expense_reports.status = ANY(?)", pq.Array(queueStatuses(filter))).
		Group("expense_reports.assignation_id, employees.last_name, employees.first_name, missions.name").
		Order("MIN(expense_reports.created_at)").
		Offset(offset).
		Limit(limit).
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) QueueCount(filter expenseapimodels.QueueFilter) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.ExpenseReport{}).
		Where("status = ANY(?)", pq.Array(queueStatuses(filter))).
		Distinct("assignation_id").
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Без явного статуса очередь показывает невозмещенные строки.
func queueStatuses(filter expenseapimodels.QueueFilter) []string {
	if filter.Status == "" {
		return []string{string(models.ExpensePending)}
	}
	return []string{string(filter.Status)}
}
