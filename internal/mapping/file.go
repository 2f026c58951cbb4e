package mapping

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/vovanwin/cmdlineprefs/internal/model"
)

// switchEntry представляет один переключатель из файла таблицы
type switchEntry struct {
	Pref        string `toml:"pref"`
	Type        string `toml:"type"`
	Description string `toml:"description,omitempty"`
}

// tableFile корневая структура файла таблицы
type tableFile struct {
	Switches map[string]switchEntry `toml:"switches"`
}

// ParseFile читает TOML таблицу и возвращает записи, отсортированные по имени переключателя
func ParseFile(path string) (Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение %s: %w", path, err)
	}

	var tf tableFile
	if _, err := toml.Decode(string(b), &tf); err != nil {
		return nil, fmt.Errorf("декодирование %s: %w", path, err)
	}

	if len(tf.Switches) == 0 {
		return nil, nil
	}

	var t Table
	for name, entry := range tf.Switches {
		e, err := switchEntryToModel(name, entry)
		if err != nil {
			return nil, fmt.Errorf("переключатель %q: %w", name, err)
		}
		t = append(t, e)
	}

	sort.Slice(t, func(i, j int) bool {
		return t[i].Switch.Name < t[j].Switch.Name
	})

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func switchEntryToModel(name string, entry switchEntry) (model.Entry, error) {
	if reserved(name) {
		return model.Entry{}, errors.New("разбирается отдельно и не может быть переопределён")
	}

	kind, err := parseSwitchKind(entry.Type)
	if err != nil {
		return model.Entry{}, err
	}

	if entry.Pref == "" {
		return model.Entry{}, errors.New("не указан pref")
	}
	if reservedKey(entry.Pref) {
		return model.Entry{}, fmt.Errorf("ключ %q занят составной настройкой", entry.Pref)
	}

	return model.Entry{
		Switch:      model.Switch{Name: name, Kind: kind},
		PrefKey:     entry.Pref,
		Description: entry.Description,
	}, nil
}

func parseSwitchKind(t string) (model.SwitchKind, error) {
	switch t {
	case "bool":
		return model.SwitchKindBool, nil
	case "string":
		return model.SwitchKindString, nil
	case "list":
		return model.SwitchKindStringList, nil
	default:
		return 0, fmt.Errorf("неподдерживаемый тип %q (допустимы: bool, string, list)", t)
	}
}
