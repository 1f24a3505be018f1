package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	ExportCompensationList(list []dbmodels.Compensation) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var compensationHeaders = []string{"Дата", "Транспорт", "Завтрак", "Обед", "Ужин", "Проживание", "Сумма за день", "Статус выплаты"}

// ExportCompensationList выгружает дневные компенсации в xlsx,
// последней строкой идет итог.
func (i impl) ExportCompensationList(list []dbmodels.Compensation) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, compensationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeCompensationData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Суточные")
	return f.WriteToBuffer()
}

func writeCompensationData(f *excelize.File, sheet string, list []dbmodels.Compensation, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(compensationHeaders), row+len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Дата"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Day.Format("02.01.2006")); err != nil {
			return row, err
		}

		// "Транспорт"
		col++
		if err := writeColumn(f, sheet, col, row, item.Transport); err != nil {
			return row, err
		}

		// "Завтрак"
		col++
		if err := writeColumn(f, sheet, col, row, item.Breakfast); err != nil {
			return row, err
		}

		// "Обед"
		col++
		if err := writeColumn(f, sheet, col, row, item.Lunch); err != nil {
			return row, err
		}

		// "Ужин"
		col++
		if err := writeColumn(f, sheet, col, row, item.Dinner); err != nil {
			return row, err
		}

		// "Проживание"
		col++
		if err := writeColumn(f, sheet, col, row, item.Accommodation); err != nil {
			return row, err
		}

		// "Сумма за день"
		col++
		if err := writeColumn(f, sheet, col, row, item.DayAmount()); err != nil {
			return row, err
		}

		// "Статус выплаты"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}
	}
	// итог
	row++
	if err := writeColumn(f, sheet, 1, row, "Итого"); err != nil {
		return row, err
	}
	if err := writeColumn(f, sheet, 7, row, dbmodels.TotalAmount(list)); err != nil {
		return row, err
	}
	return row, nil
}
