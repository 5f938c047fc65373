package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/factory-records/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(card model.RecordCard) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	sheet := sanitizeSheetName(card.Kind)
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", card.Kind)
	set("B1", card.ID)

	headerRow := 3
	set(fmt.Sprintf("A%d", headerRow), "Field")
	set(fmt.Sprintf("B%d", headerRow), "Value")
	for i, field := range card.Fields {
		row := headerRow + 1 + i
		set(fmt.Sprintf("A%d", row), field.Label)
		set(fmt.Sprintf("B%d", row), field.Value)
	}

	if style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = file.SetCellStyle(sheet, "A1", "B1", style)
		_ = file.SetCellStyle(sheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("B%d", headerRow), style)
	}
	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 48)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sanitizeSheetName(value string) string {
	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	value = strings.TrimSpace(replacer.Replace(value))
	if value == "" {
		return "Record"
	}
	if len(value) > 31 {
		value = value[:31]
	}
	return value
}
