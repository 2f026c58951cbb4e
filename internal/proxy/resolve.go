// Package proxy выводит режим прокси из переключателей командной строки
// и проверяет, что переданные переключатели не противоречат друг другу.
//
// Приоритет правил (первое сработавшее побеждает):
//
//	1. no-proxy-server                 -> direct
//	2. proxy-auto-detect               -> auto_detect
//	3. proxy-pac-url (не пустой)       -> pac_script
//	4. proxy-server="" / proxy-server  -> direct / fixed_servers (+ proxy-bypass-list)
//	5. ничего из перечисленного        -> system, настройка не создаётся
package proxy

import (
	"github.com/vovanwin/cmdlineprefs/internal/switches"
	"github.com/vovanwin/cmdlineprefs/pkg/types"
)

// Rule одно правило выбора режима
type Rule struct {
	Name  string
	Match func(src switches.Source) (types.ProxyConfig, bool)
}

var rules = []Rule{
	{Name: switches.NoProxyServer, Match: matchNoProxy},
	{Name: switches.ProxyAutoDetect, Match: matchAutoDetect},
	{Name: switches.ProxyPacURL, Match: matchPacURL},
	{Name: switches.ProxyServer, Match: matchServer},
}

// Rules возвращает копию правил в порядке приоритета
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Resolve применяет правила по умолчанию.
// ok=false означает режим system: ни один переключатель прокси не задал режим.
func Resolve(src switches.Source) (types.ProxyConfig, bool) {
	return ResolveWith(rules, src)
}

// ResolveWith применяет переданные правила сверху вниз
func ResolveWith(rs []Rule, src switches.Source) (types.ProxyConfig, bool) {
	for _, r := range rs {
		if cfg, ok := r.Match(src); ok {
			return cfg, true
		}
	}
	return types.ProxyConfig{Mode: types.ProxyModeSystem}, false
}

func matchNoProxy(src switches.Source) (types.ProxyConfig, bool) {
	if !src.Has(switches.NoProxyServer) {
		return types.ProxyConfig{}, false
	}
	return types.ProxyConfig{Mode: types.ProxyModeDirect}, true
}

func matchAutoDetect(src switches.Source) (types.ProxyConfig, bool) {
	if !src.Has(switches.ProxyAutoDetect) {
		return types.ProxyConfig{}, false
	}
	return types.ProxyConfig{Mode: types.ProxyModeAutoDetect}, true
}

func matchPacURL(src switches.Source) (types.ProxyConfig, bool) {
	url, ok := src.Value(switches.ProxyPacURL)
	if !ok || url == "" {
		return types.ProxyConfig{}, false
	}
	return types.ProxyConfig{Mode: types.ProxyModePacScript, PacURL: url}, true
}

func matchServer(src switches.Source) (types.ProxyConfig, bool) {
	server, ok := src.Value(switches.ProxyServer)
	if !ok {
		return types.ProxyConfig{}, false
	}
	// Явно пустой сервер означает "без прокси"
	if server == "" {
		return types.ProxyConfig{Mode: types.ProxyModeDirect}, true
	}
	cfg := types.ProxyConfig{Mode: types.ProxyModeFixedServers, Server: server}
	if bypass, ok := src.Value(switches.ProxyBypassList); ok {
		cfg.BypassList = bypass
		cfg.HasBypassList = true
	}
	return cfg, true
}
