package types

import "slices"

// Kind тип значения настройки
type Kind int

const (
	KindBool Kind = iota
	KindString
	KindStringList
	KindProxy
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindStringList:
		return "[]string"
	case KindProxy:
		return "proxy"
	default:
		return "unknown"
	}
}

// ProxyMode стратегия проксирования. Строковое значение совпадает с тем,
// что ожидают потребители словаря proxy.
type ProxyMode string

const (
	ProxyModeDirect       ProxyMode = "direct"
	ProxyModeAutoDetect   ProxyMode = "auto_detect"
	ProxyModePacScript    ProxyMode = "pac_script"
	ProxyModeFixedServers ProxyMode = "fixed_servers"
	ProxyModeSystem       ProxyMode = "system"
)

// ProxyConfig структурированная настройка прокси.
// Server и BypassList заполняются только для fixed_servers, PacURL только для pac_script.
// HasBypassList отличает пустой --proxy-bypass-list= от отсутствующего.
type ProxyConfig struct {
	Mode          ProxyMode `yaml:"mode" toml:"mode"`
	Server        string    `yaml:"server,omitempty" toml:"server,omitempty"`
	BypassList    string    `yaml:"bypass_list" toml:"bypass_list"`
	HasBypassList bool      `yaml:"-" toml:"-"`
	PacURL        string    `yaml:"pac_url,omitempty" toml:"pac_url,omitempty"`
}

// Dict возвращает словарь в том виде, в каком его видят потребители:
// mode всегда, остальные поля только если заданы.
func (c ProxyConfig) Dict() map[string]any {
	d := map[string]any{"mode": string(c.Mode)}
	if c.Server != "" {
		d["server"] = c.Server
	}
	if c.HasBypassList {
		d["bypass_list"] = c.BypassList
	}
	if c.PacURL != "" {
		d["pac_url"] = c.PacURL
	}
	return d
}

// Value значение настройки: bool, string, список строк или ProxyConfig.
// Нулевое значение не используется, значения создаются конструкторами ниже.
type Value struct {
	kind  Kind
	b     bool
	s     string
	list  []string
	proxy ProxyConfig
}

func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

func String(v string) Value {
	return Value{kind: KindString, s: v}
}

// StringList копирует срез, вызывающий может дальше его менять.
func StringList(v []string) Value {
	return Value{kind: KindStringList, list: slices.Clone(v)}
}

func Proxy(c ProxyConfig) Value {
	return Value{kind: KindProxy, proxy: c}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsStringList возвращает копию списка.
func (v Value) AsStringList() ([]string, bool) {
	if v.kind != KindStringList {
		return nil, false
	}
	return slices.Clone(v.list), true
}

func (v Value) AsProxy() (ProxyConfig, bool) {
	return v.proxy, v.kind == KindProxy
}

// Equal сравнивает значения с учётом типа
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindString:
		return v.s == o.s
	case KindStringList:
		return slices.Equal(v.list, o.list)
	case KindProxy:
		return v.proxy == o.proxy
	default:
		return false
	}
}

// Interface возвращает значение в виде простого дерева (bool, string, []string, map[string]any)
// для сериализации.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindStringList:
		return slices.Clone(v.list)
	case KindProxy:
		return v.proxy.Dict()
	default:
		return nil
	}
}
