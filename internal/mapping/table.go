// Package mapping описывает, какой переключатель командной строки
// заполняет какую настройку.
package mapping

import (
	"fmt"

	"github.com/vovanwin/cmdlineprefs/internal/model"
	"github.com/vovanwin/cmdlineprefs/internal/prefnames"
	"github.com/vovanwin/cmdlineprefs/internal/switches"
)

// Table упорядоченный список соответствий
type Table []model.Entry

func boolEntry(name, key string) model.Entry {
	return model.Entry{Switch: model.Switch{Name: name, Kind: model.SwitchKindBool}, PrefKey: key}
}

func stringEntry(name, key string) model.Entry {
	return model.Entry{Switch: model.Switch{Name: name, Kind: model.SwitchKindString}, PrefKey: key}
}

func proxyEntry(name string) model.Entry {
	return model.Entry{Switch: model.Switch{Name: name, Kind: model.SwitchKindProxy}, PrefKey: prefnames.Proxy}
}

var defaultTable = Table{
	stringEntry(switches.Lang, prefnames.ApplicationLocale),
	stringEntry(switches.AuthSchemes, prefnames.AuthSchemes),
	stringEntry(switches.AuthServerWhitelist, prefnames.AuthServerWhitelist),
	stringEntry(switches.AuthNegotiateDelegateWhitelist, prefnames.AuthNegotiateDelegateWhitelist),
	stringEntry(switches.GSSAPILibraryName, prefnames.GSSAPILibraryName),

	boolEntry(switches.EnableAuthNegotiatePort, prefnames.EnableAuthNegotiatePort),
	boolEntry(switches.DisableAuthNegotiateCnameLookup, prefnames.DisableAuthNegotiateCnameLookup),
	boolEntry(switches.Disable3DAPIs, prefnames.Disable3DAPIs),
	boolEntry(switches.DisableTLS1, prefnames.TLS1Disabled),
	boolEntry(switches.EnableCloudPrintProxy, prefnames.CloudPrintProxyEnabled),
	boolEntry(switches.NoPings, prefnames.HyperlinkAuditingDisabled),
	boolEntry(switches.AllowOutdatedPlugins, prefnames.PluginsAllowOutdated),
	boolEntry(switches.AlwaysAuthorizePlugins, prefnames.PluginsAlwaysAuthorize),

	proxyEntry(switches.NoProxyServer),
	proxyEntry(switches.ProxyAutoDetect),
	proxyEntry(switches.ProxyPacURL),
	proxyEntry(switches.ProxyServer),
	proxyEntry(switches.ProxyBypassList),

	{
		Switch:  model.Switch{Name: switches.CipherSuiteBlacklist, Kind: model.SwitchKindStringList},
		PrefKey: prefnames.CipherSuiteBlacklist,
	},
}

// Default возвращает копию встроенной таблицы
func Default() Table {
	out := make(Table, len(defaultTable))
	copy(out, defaultTable)
	return out
}

// reserved переключатели, которые разбираются отдельно и не переопределяются из файла
func reserved(name string) bool {
	for _, e := range defaultTable {
		if e.Switch.Name == name && e.Switch.Kind.Aggregate() {
			return true
		}
	}
	return false
}

// reservedKey ключи, которые во встроенной таблице заполняются составными настройками
func reservedKey(key string) bool {
	for _, e := range defaultTable {
		if e.PrefKey == key && e.Switch.Kind.Aggregate() {
			return true
		}
	}
	return false
}

// Lookup ищет запись по имени переключателя
func (t Table) Lookup(name string) (model.Entry, bool) {
	for _, e := range t {
		if e.Switch.Name == name {
			return e, true
		}
	}
	return model.Entry{}, false
}

// Validate проверяет таблицу: имена и ключи не пустые, переключатель встречается
// один раз, два разных переключателя одного типа не пишут в один ключ.
// Записи прокси пишут в один ключ намеренно и в последней проверке не участвуют.
// Ключ составной настройки (прокси, список) не может заполняться переключателем другого типа.
func (t Table) Validate() error {
	seenSwitch := make(map[string]struct{}, len(t))
	seenKey := make(map[string]map[model.SwitchKind]string)

	aggregate := make(map[string]model.SwitchKind)
	for _, e := range t {
		if !e.Switch.Kind.Aggregate() {
			continue
		}
		if _, ok := aggregate[e.PrefKey]; !ok {
			aggregate[e.PrefKey] = e.Switch.Kind
		}
	}

	for _, e := range t {
		if e.Switch.Name == "" {
			return fmt.Errorf("пустое имя переключателя (ключ %q)", e.PrefKey)
		}
		if e.PrefKey == "" {
			return fmt.Errorf("переключатель %q: пустой ключ настройки", e.Switch.Name)
		}
		if _, ok := seenSwitch[e.Switch.Name]; ok {
			return fmt.Errorf("переключатель %q указан дважды", e.Switch.Name)
		}
		seenSwitch[e.Switch.Name] = struct{}{}

		if kind, ok := aggregate[e.PrefKey]; ok && kind != e.Switch.Kind {
			return fmt.Errorf("переключатель %q (%s): ключ %q занят составной настройкой (%s)",
				e.Switch.Name, e.Switch.Kind, e.PrefKey, kind)
		}

		if e.Switch.Kind == model.SwitchKindProxy {
			continue
		}
		kinds, ok := seenKey[e.PrefKey]
		if !ok {
			kinds = make(map[model.SwitchKind]string)
			seenKey[e.PrefKey] = kinds
		}
		if other, ok := kinds[e.Switch.Kind]; ok {
			return fmt.Errorf("ключ %q (%s) уже заполняется переключателем %q, повтор: %q",
				e.PrefKey, e.Switch.Kind, other, e.Switch.Name)
		}
		kinds[e.Switch.Kind] = e.Switch.Name
	}
	return nil
}

// Merge объединяет таблицы, более поздние записи заменяют ранние с тем же
// именем переключателя на их месте, новые добавляются в конец.
func Merge(tables ...Table) Table {
	var out Table
	index := make(map[string]int)
	for _, t := range tables {
		for _, e := range t {
			if i, ok := index[e.Switch.Name]; ok {
				out[i] = e
				continue
			}
			index[e.Switch.Name] = len(out)
			out = append(out, e)
		}
	}
	return out
}
