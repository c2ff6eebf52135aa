// Package pagination нарезает результаты на страницы: нумерация с нуля
// для пакетной подгрузки поиска и с единицы для read API.
package pagination

import (
	"strconv"
	"strings"
)

// Batch возвращает элементы полуинтервала [page*size, (page+1)*size).
// Страница за пределами набора дает пустой срез.
func Batch[T any](items []T, page, size int) []T {
	if page < 0 || size <= 0 || page >= (len(items)+size-1)/size {
		return []T{}
	}
	start := page * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ParseBatchIndex разбирает номер пакета (с нуля). Пустое или
// некорректное значение дает 0.
func ParseBatchIndex(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 0 {
		return 0
	}
	return page
}

// Paginator описывает постраничную выдачу с нумерацией с единицы.
type Paginator struct {
	Total   int
	PerPage int
}

// NumPages — количество страниц; пустой набор все равно имеет одну страницу.
func (p Paginator) NumPages() int {
	if p.PerPage <= 0 || p.Total <= 0 {
		return 1
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

// Resolve превращает параметр запроса в допустимый номер страницы:
// нечисловое или пустое значение дает первую страницу, выход за
// границы дает последнюю.
func (p Paginator) Resolve(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	if page < 1 || page > p.NumPages() {
		return p.NumPages()
	}
	return page
}

// Offset — смещение первой записи страницы.
func (p Paginator) Offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.PerPage
}
