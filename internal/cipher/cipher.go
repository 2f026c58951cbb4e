// Package cipher разбирает значение --cipher-suite-blacklist.
package cipher

import "strings"

// Parse делит строку только по запятой и обрезает пробелы вокруг каждого элемента.
// Порядок, дубликаты и пустые элементы сохраняются; "" даёт [""].
func Parse(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
