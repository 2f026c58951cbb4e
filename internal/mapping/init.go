package mapping

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const exampleHeader = `# switches.toml — дополнительные переключатели командной строки
# type: bool (только присутствие), string (значение как есть), list (через запятую)

`

var exampleTable = tableFile{
	Switches: map[string]switchEntry{
		"homepage": {
			Pref:        "browser.homepage",
			Type:        "string",
			Description: "Домашняя страница",
		},
		"disable-sync": {
			Pref:        "sync.disabled",
			Type:        "bool",
			Description: "Отключить синхронизацию",
		},
		"extra-fonts": {
			Pref:        "fonts.extra",
			Type:        "list",
			Description: "Дополнительные шрифты через запятую",
		},
	},
}

// WriteExample создаёт файл таблицы с примером. Существующий файл не трогает,
// в этом случае возвращает false.
func WriteExample(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	buf := &bytes.Buffer{}
	buf.WriteString(exampleHeader)
	if err := toml.NewEncoder(buf).Encode(exampleTable); err != nil {
		return false, fmt.Errorf("кодирование %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return false, fmt.Errorf("запись %s: %w", path, err)
	}
	return true, nil
}
