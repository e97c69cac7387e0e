package catalog

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/DRSN-tech/storefront-seeder/pkg/e"
)

const utf8BOM = "\ufeff"

// Parse разбирает текст с разделителем строк '\n' и заголовком в первой строке.
// Каждая непустая строка разбирается по правилам CSV (поля в двойных кавычках могут
// содержать запятые, но не переводы строк) и сопоставляется с заголовком.
// Одиночная кавычка внутри поля без кавычек (5" Poster) считается обычным символом.
// Несовпадение числа полей с заголовком — ошибка e.ErrFieldCountMismatch.
func Parse(data string) ([]Record, error) {
	const op = "catalog.Parse"

	lines := strings.Split(data, "\n")

	headerLine := strings.TrimPrefix(strings.TrimSuffix(lines[0], "\r"), utf8BOM)
	if strings.TrimSpace(headerLine) == "" {
		return nil, e.Wrap(op, e.ErrEmptyDataset)
	}

	header, err := parseLine(headerLine)
	if err != nil {
		return nil, e.Wrap(fmt.Sprintf("%s: header", op), err)
	}

	records := make([]Record, 0, len(lines)-1)
	for i, line := range lines[1:] {
		lineNo := i + 2
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields, err := parseLine(line)
		if err != nil {
			return nil, e.Wrap(fmt.Sprintf("%s: line %d", op, lineNo), err)
		}

		if len(fields) != len(header) {
			return nil, e.Wrap(
				fmt.Sprintf("%s: line %d has %d fields, header has %d", op, lineNo, len(fields), len(header)),
				e.ErrFieldCountMismatch,
			)
		}

		records = append(records, NewRecord(lineNo, header, fields))
	}

	return records, nil
}

func parseLine(line string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	fields, err := reader.Read()
	if err != nil {
		return nil, err
	}

	return fields, nil
}
