package switches

import "strings"

// Source доступ только на чтение к переключателям процесса
type Source interface {
	// Has сообщает, передан ли переключатель
	Has(name string) bool
	// Value возвращает значение переключателя; ok=false если его нет.
	// Переключатель без значения даёт пустую строку и ok=true.
	Value(name string) (string, bool)
}

// Map источник на основе map: имя -> значение
type Map map[string]string

func (m Map) Has(name string) bool {
	_, ok := m[name]
	return ok
}

func (m Map) Value(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Parse разбирает аргументы вида --name, --name=value и -name=value.
// Всё после одиночного "--" и аргументы без дефиса пропускаются,
// при повторе переключателя побеждает последнее вхождение.
func Parse(args []string) Map {
	m := make(Map)
	for _, arg := range args {
		if arg == "--" {
			break
		}
		name, ok := trimPrefix(arg)
		if !ok {
			continue
		}
		value := ""
		if i := strings.IndexByte(name, '='); i >= 0 {
			name, value = name[:i], name[i+1:]
		}
		if name == "" {
			continue
		}
		m[name] = value
	}
	return m
}

func trimPrefix(arg string) (string, bool) {
	switch {
	case strings.HasPrefix(arg, "--"):
		return arg[2:], true
	case strings.HasPrefix(arg, "-") && len(arg) > 1:
		return arg[1:], true
	default:
		return "", false
	}
}
