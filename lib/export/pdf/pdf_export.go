package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"hr-office-backend/models"
	dbmodels "hr-office-backend/models/db"
)

// GenerateMissionOrder формирует командировочное предписание (ordre de
// mission) по валидированному назначению.
func GenerateMissionOrder(rec dbmodels.MissionAssignation) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateMissionOrder panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 12, "Ordre de Mission", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(6)

	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()
	htmlStr := fmt.Sprintf("<b>Сотрудник:</b> %v<br>", employeeName(rec)) +
		fmt.Sprintf("<b>Командировка:</b> %v<br>", missionName(rec)) +
		fmt.Sprintf("<b>Место:</b> %v<br>", missionSite(rec)) +
		fmt.Sprintf("<b>Отъезд:</b> %v<br>", rec.DepartureDate.Format("02.01.2006")) +
		fmt.Sprintf("<b>Возвращение:</b> %v<br>", rec.ReturnDate.Format("02.01.2006")) +
		fmt.Sprintf("<b>Длительность:</b> %v дн.<br>", rec.Duration)
	if rec.Transport != nil {
		htmlStr += fmt.Sprintf("<b>Транспорт:</b> %v<br>", rec.Transport.Type)
	}
	html.Write(lineHt*1.8, htmlStr)

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Валидация", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	for _, row := range rec.Validations {
		line := fmt.Sprintf("%v: %v", row.ValidatorRole, row.Status)
		if row.Validator != nil {
			line = fmt.Sprintf("%v - %v: %v", row.ValidatorRole, row.Validator.GetFullName(), row.Status)
		}
		if row.Status != models.ApprovalStatusAwaiting && row.ValidationDate != nil {
			line += fmt.Sprintf(" (%v)", row.ValidationDate.Format("02.01.2006"))
		}
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func employeeName(rec dbmodels.MissionAssignation) string {
	if rec.Employee != nil {
		return rec.Employee.GetFullName()
	}
	return ""
}

func missionName(rec dbmodels.MissionAssignation) string {
	if rec.Mission != nil {
		return rec.Mission.Name
	}
	return ""
}

func missionSite(rec dbmodels.MissionAssignation) string {
	if rec.Mission != nil {
		return rec.Mission.Site
	}
	return ""
}
