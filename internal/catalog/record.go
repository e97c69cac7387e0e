package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Record — одна строка набора данных: имя колонки -> строковое значение.
type Record struct {
	Line    int // номер строки в исходном тексте, начиная с 1
	columns []string
	values  map[string]string
}

// MetaField — произвольное мета-поле из колонки с префиксом "Meta: ".
type MetaField struct {
	Key   string
	Value string
}

func NewRecord(line int, columns []string, values []string) Record {
	m := make(map[string]string, len(columns))
	for i, col := range columns {
		if i < len(values) {
			m[col] = values[i]
		} else {
			m[col] = ""
		}
	}

	return Record{
		Line:    line,
		columns: columns,
		values:  m,
	}
}

// Get возвращает значение колонки; отсутствующая колонка даёт пустую строку.
func (r Record) Get(col string) string {
	return r.values[col]
}

// Text возвращает очищенное текстовое значение колонки.
func (r Record) Text(col string) string {
	return SanitizeText(r.Get(col))
}

// Flag переводит текстовый флаг в bool: пустая строка и "0" — false, остальное — true.
func (r Record) Flag(col string) bool {
	v := r.Get(col)
	return v != "" && v != "0"
}

// Decimal разбирает десятичное значение. Пустое или некорректное значение даёт null.
func (r Record) Decimal(col string) decimal.NullDecimal {
	v := strings.TrimSpace(r.Get(col))
	if v == "" {
		return decimal.NullDecimal{}
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(d)
}

// StockQuantity возвращает nil для пустого значения и для "0" (остаток не ограничен),
// иначе абсолютное целое значение. Нечисловая строка даёт 0.
func (r Record) StockQuantity(col string) *int64 {
	v := strings.TrimSpace(r.Get(col))
	if v == "" || v == "0" {
		return nil
	}

	var qty int64
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		qty = n
	} else if f, err := strconv.ParseFloat(v, 64); err == nil {
		qty = int64(f)
	}
	if qty < 0 {
		qty = -qty
	}

	return &qty
}

// List разбивает значение по запятой, очищает элементы и отбрасывает пустые.
func (r Record) List(col string) []string {
	return splitClean(r.Get(col), listSep)
}

// CategoryPath разбивает иерархический путь "A > B > C" на сегменты.
func (r Record) CategoryPath(col string) []string {
	return SplitCategoryPath(r.Get(col))
}

// URL возвращает адрес, если это корректный http(s) URL.
func (r Record) URL(col string) (string, bool) {
	raw := strings.TrimSpace(r.Get(col))
	if raw == "" {
		return "", false
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", false
	}

	return u.String(), true
}

// Meta возвращает непустые мета-поля в порядке колонок заголовка.
func (r Record) Meta() []MetaField {
	var fields []MetaField
	for _, col := range r.columns {
		if !strings.HasPrefix(col, MetaColumnPrefix) {
			continue
		}

		value := r.values[col]
		if value == "" {
			continue
		}

		fields = append(fields, MetaField{
			Key:   SanitizeKey(strings.TrimPrefix(col, MetaColumnPrefix)),
			Value: SanitizeText(value),
		})
	}

	return fields
}

// SplitCategoryPath разбивает путь категорий по '>' и обрезает сегменты. Пустые сегменты отбрасываются.
func SplitCategoryPath(path string) []string {
	return splitClean(path, categoryPathSep)
}

func splitClean(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = SanitizeText(part); part != "" {
			result = append(result, part)
		}
	}

	return result
}
