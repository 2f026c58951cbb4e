// Package prefstore собирает настройки из переключателей командной строки.
//
// Store строится один раз в Build и дальше только читается: методов, которые
// его меняют, нет, поэтому один *Store можно раздавать любому числу
// потребителей и читать из разных горутин без блокировок.
package prefstore

import (
	"log/slog"
	"sort"

	"github.com/vovanwin/cmdlineprefs/internal/cipher"
	"github.com/vovanwin/cmdlineprefs/internal/mapping"
	"github.com/vovanwin/cmdlineprefs/internal/model"
	"github.com/vovanwin/cmdlineprefs/internal/proxy"
	"github.com/vovanwin/cmdlineprefs/internal/switches"
	"github.com/vovanwin/cmdlineprefs/pkg/types"
)

// Store неизменяемый набор настроек
type Store struct {
	values     map[string]types.Value
	proxyValid bool
}

type options struct {
	table  mapping.Table
	logger *slog.Logger
}

// Option настройка сборки
type Option func(*options)

// WithTable заменяет встроенную таблицу соответствий целиком.
// Чтобы дополнить её, передайте mapping.Merge(mapping.Default(), extra).
func WithTable(t mapping.Table) Option {
	return func(o *options) {
		o.table = t
	}
}

// WithLogger задаёт логгер для диагностики сборки
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Build читает src один раз и возвращает готовый Store. Ошибок не бывает:
// противоречивые переключатели прокси только логируются и видны через ProxySwitchesValid.
func Build(src switches.Source, opts ...Option) *Store {
	o := options{
		table:  mapping.Default(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	values := make(map[string]types.Value)
	proxyKey := ""

	for _, e := range o.table {
		name := e.Switch.Name
		switch e.Switch.Kind {
		case model.SwitchKindBool:
			if src.Has(name) {
				values[e.PrefKey] = types.Bool(true)
			}
		case model.SwitchKindString:
			if v, ok := src.Value(name); ok {
				values[e.PrefKey] = types.String(v)
			}
		case model.SwitchKindStringList:
			if v, ok := src.Value(name); ok {
				values[e.PrefKey] = types.StringList(cipher.Parse(v))
			}
		case model.SwitchKindProxy:
			if proxyKey == "" {
				proxyKey = e.PrefKey
			}
		}
	}

	// Прокси собирается одной записью, если таблица вообще знает о прокси
	if proxyKey != "" {
		if cfg, ok := proxy.Resolve(src); ok {
			values[proxyKey] = types.Proxy(cfg)
		}
	}

	valid := true
	if conflicts := proxy.Conflicts(src); len(conflicts) > 0 {
		valid = false
		o.logger.Warn("противоречивые переключатели прокси",
			slog.String("switch", switches.NoProxyServer),
			slog.Any("conflicts", conflicts))
	}

	o.logger.Debug("настройки из командной строки собраны", slog.Int("count", len(values)))

	return &Store{values: values, proxyValid: valid}
}

// Get возвращает значение по ключу; ok=false если ключа нет
func (s *Store) Get(key string) (types.Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// GetBool возвращает bool; ok=false если ключа нет или тип другой
func (s *Store) GetBool(key string) (bool, bool) {
	v, ok := s.values[key]
	if !ok {
		return false, false
	}
	return v.AsBool()
}

func (s *Store) GetString(key string) (string, bool) {
	v, ok := s.values[key]
	if !ok {
		return "", false
	}
	return v.AsString()
}

func (s *Store) GetStringList(key string) ([]string, bool) {
	v, ok := s.values[key]
	if !ok {
		return nil, false
	}
	return v.AsStringList()
}

func (s *Store) GetProxy(key string) (types.ProxyConfig, bool) {
	v, ok := s.values[key]
	if !ok {
		return types.ProxyConfig{}, false
	}
	return v.AsProxy()
}

// Keys возвращает отсортированные ключи
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Store) Len() int { return len(s.values) }

// ProxySwitchesValid false если no-proxy-server передан вместе с другими переключателями прокси
func (s *Store) ProxySwitchesValid() bool { return s.proxyValid }

// Equal сравнивает содержимое двух Store
func (s *Store) Equal(o *Store) bool {
	if s == nil || o == nil {
		return s == o
	}
	if len(s.values) != len(o.values) || s.proxyValid != o.proxyValid {
		return false
	}
	for k, v := range s.values {
		ov, ok := o.values[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
