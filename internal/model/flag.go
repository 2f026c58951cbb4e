package model

// SwitchKind представляет тип переключателя командной строки
type SwitchKind int

const (
	SwitchKindBool       SwitchKind = iota // Только присутствие, даёт true
	SwitchKindString                       // Значение переключателя как есть
	SwitchKindStringList                   // Список через запятую
	SwitchKindProxy                        // Участвует в выборе режима прокси
)

func (k SwitchKind) String() string {
	switch k {
	case SwitchKindBool:
		return "bool"
	case SwitchKindString:
		return "string"
	case SwitchKindStringList:
		return "list"
	case SwitchKindProxy:
		return "proxy"
	default:
		return "unknown"
	}
}

// Aggregate сообщает, что переключатели этого типа обрабатываются не
// построчно, а отдельным разборщиком, который даёт одну настройку.
func (k SwitchKind) Aggregate() bool {
	return k == SwitchKindStringList || k == SwitchKindProxy
}

// Switch описывает один переключатель
type Switch struct {
	Name string     // Имя без дефисов в начале (proxy-server)
	Kind SwitchKind // Тип значения
}

// Entry одна строка таблицы соответствия переключатель -> настройка
type Entry struct {
	Switch      Switch
	PrefKey     string // Ключ настройки (intl.app_locale)
	Description string // Описание, только для документации
}
