package xlsexport

import (
	"bytes"
	"fmt"

	dbmodels "ppalink-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportApplicationList(list []dbmodels.Application) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"Кандидат", "Контакты", "Вакансия", "Навыки", "Ожидаемая ЗП", "Дата отклика", "Статус"}

func (i impl) ExportApplicationList(list []dbmodels.Application) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeApplicationData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Отклики")
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet string, list []dbmodels.Application, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Кандидат"
		col := 1
		fullName := ""
		email := ""
		if item.Candidate != nil && item.Candidate.User != nil {
			fullName = item.Candidate.User.GetFullName()
			email = item.Candidate.User.Email
		}
		if err := writeColumn(f, sheet, col, row, fullName); err != nil {
			return row, err
		}

		// "Контакты"
		col++
		if err := writeColumn(f, sheet, col, row, email); err != nil {
			return row, err
		}

		// "Вакансия"
		col++
		if item.Position != nil {
			if err := writeColumn(f, sheet, col, row, item.Position.Title); err != nil {
				return row, err
			}
		}

		// "Навыки"
		col++
		if item.Candidate != nil {
			if err := writeColumn(f, sheet, col, row, item.Candidate.Skills); err != nil {
				return row, err
			}
		}

		// "Ожидаемая ЗП"
		col++
		if item.Candidate != nil && item.Candidate.Salary > 0 {
			if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v", item.Candidate.Salary)); err != nil {
				return row, err
			}
		}

		// "Дата отклика"
		col++
		if !item.CreatedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}
	}
	return row, nil
}
