package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"hr-office-backend/models"
	dbmodels "hr-office-backend/models/db"
)

func TestExportCompensationList(t *testing.T) {
	handler := impl{}

	t.Run(`данные и итог попадают в файл`, func(t *testing.T) {
		list := []dbmodels.Compensation{
			{Day: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Transport: 5000, Breakfast: 2000, Lunch: 4000, Dinner: 4000, Accommodation: 8000, Status: models.CompensationNotPaid},
			{Day: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), Transport: 5000, Breakfast: 2000, Lunch: 4000, Dinner: 4000, Accommodation: 8000, Status: models.CompensationNotPaid},
		}
		buf, err := handler.ExportCompensationList(list)
		require.Nil(t, err)
		require.NotNil(t, buf)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()

		sheet := "Суточные"
		value, err := f.GetCellValue(sheet, "A1")
		require.Nil(t, err)
		require.Equal(t, "Дата", value)

		value, err = f.GetCellValue(sheet, "A2")
		require.Nil(t, err)
		require.Equal(t, "10.03.2026", value)

		value, err = f.GetCellValue(sheet, "G2")
		require.Nil(t, err)
		require.Equal(t, "23000", value)

		value, err = f.GetCellValue(sheet, "A4")
		require.Nil(t, err)
		require.Equal(t, "Итого", value)

		value, err = f.GetCellValue(sheet, "G4")
		require.Nil(t, err)
		require.Equal(t, "46000", value)
	})

	t.Run(`пустой список - только заголовок`, func(t *testing.T) {
		buf, err := handler.ExportCompensationList(nil)
		require.Nil(t, err)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()

		value, err := f.GetCellValue("Суточные", "A2")
		require.Nil(t, err)
		require.Equal(t, "", value)
	})
}
