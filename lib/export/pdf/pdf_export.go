package pdfexport

import (
	"bytes"
	"fmt"

	candidateapimodels "ppalink-backend/models/api/candidate"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateProfile формирует pdf-версию анкеты кандидата
func GenerateProfile(profile candidateapimodels.ProfileView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateProfile panic recover: %v", r)
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

	pdf.Cell(0, 10, profile.FullName)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	_, lineHt := pdf.GetFontSize()
	htmlStr := fmt.Sprintf("<b>%v</b><br>", profile.Headline) +
		fmt.Sprintf("Локация: %v<br>", profile.Location) +
		fmt.Sprintf("Почта: %v<br>", profile.Email)
	if profile.Salary > 0 {
		htmlStr += fmt.Sprintf("Ожидаемая зарплата: %v<br>", profile.Salary)
	}
	if profile.LinkedinURL != "" {
		htmlStr += fmt.Sprintf("LinkedIn: %v<br>", profile.LinkedinURL)
	}
	if profile.PortfolioURL != "" {
		htmlStr += fmt.Sprintf("Портфолио: %v<br>", profile.PortfolioURL)
	}
	htmlStr += "<br><b>Навыки</b><br>" + profile.Skills + "<br>"
	htmlStr += "<br><b>О себе</b><br>" + profile.Summary + "<br>"

	html := pdf.HTMLBasicNew()
	html.Write(lineHt, htmlStr)

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
