package prefstore

import (
	"bytes"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/vovanwin/cmdlineprefs/internal/mapping"
	"github.com/vovanwin/cmdlineprefs/internal/model"
	"github.com/vovanwin/cmdlineprefs/internal/prefnames"
	"github.com/vovanwin/cmdlineprefs/internal/switches"
	"github.com/vovanwin/cmdlineprefs/pkg/types"
)

const (
	unknownBool   = "unknown_switch"
	unknownString = "unknown_other_switch"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func build(src switches.Map) *Store {
	return Build(src, WithLogger(quietLogger()))
}

func verifyProxyMode(t *testing.T, s *Store, want types.ProxyMode) types.ProxyConfig {
	t.Helper()
	v, ok := s.Get(prefnames.Proxy)
	if !ok {
		t.Fatalf("ключ %q не найден", prefnames.Proxy)
	}
	if v.Kind() != types.KindProxy {
		t.Fatalf("ожидался тип proxy, получен %v", v.Kind())
	}
	cfg, _ := v.AsProxy()
	if cfg.Mode != want {
		t.Errorf("mode = %q, ожидался %q", cfg.Mode, want)
	}
	return cfg
}

func TestSimpleStringPref(t *testing.T) {
	s := build(switches.Map{switches.Lang: "hi-MOM"})

	v, ok := s.Get(prefnames.ApplicationLocale)
	if !ok {
		t.Fatal("intl.app_locale не найден")
	}
	got, ok := v.AsString()
	if !ok || got != "hi-MOM" {
		t.Errorf("intl.app_locale = %q (%v), ожидался \"hi-MOM\"", got, v.Kind())
	}
}

func TestEmptyStringValueIsKept(t *testing.T) {
	s := build(switches.Map{switches.Lang: ""})

	got, ok := s.GetString(prefnames.ApplicationLocale)
	if !ok || got != "" {
		t.Errorf("GetString = %q, %v; ожидалась пустая строка", got, ok)
	}
}

func TestSimpleBooleanPref(t *testing.T) {
	s := build(switches.Map{switches.NoProxyServer: ""})

	verifyProxyMode(t, s, types.ProxyModeDirect)
}

func TestBooleanPrefs(t *testing.T) {
	for _, e := range mapping.Default() {
		if e.Switch.Kind != model.SwitchKindBool {
			continue
		}
		t.Run(e.Switch.Name, func(t *testing.T) {
			present := build(switches.Map{e.Switch.Name: ""})
			got, ok := present.GetBool(e.PrefKey)
			if !ok || !got {
				t.Errorf("GetBool(%q) = %v, %v; ожидалось true", e.PrefKey, got, ok)
			}

			absent := build(switches.Map{})
			if _, ok := absent.Get(e.PrefKey); ok {
				t.Errorf("ключ %q не должен существовать без переключателя", e.PrefKey)
			}
		})
	}
}

func TestStringPrefs(t *testing.T) {
	for _, e := range mapping.Default() {
		if e.Switch.Kind != model.SwitchKindString {
			continue
		}
		t.Run(e.Switch.Name, func(t *testing.T) {
			present := build(switches.Map{e.Switch.Name: "value-" + e.Switch.Name})
			got, ok := present.GetString(e.PrefKey)
			if !ok || got != "value-"+e.Switch.Name {
				t.Errorf("GetString(%q) = %q, %v", e.PrefKey, got, ok)
			}

			absent := build(switches.Map{})
			if _, ok := absent.Get(e.PrefKey); ok {
				t.Errorf("ключ %q не должен существовать без переключателя", e.PrefKey)
			}
		})
	}
}

func TestNoPrefs(t *testing.T) {
	s := build(switches.Map{unknownString: "", unknownBool: "a value"})

	if _, ok := s.Get(unknownBool); ok {
		t.Errorf("неизвестный переключатель %q не должен давать настройку", unknownBool)
	}
	if _, ok := s.Get(unknownString); ok {
		t.Errorf("неизвестный переключатель %q не должен давать настройку", unknownString)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, ожидалось 0; ключи: %v", s.Len(), s.Keys())
	}
}

func TestMultipleSwitches(t *testing.T) {
	s := build(switches.Map{
		unknownString:            "",
		switches.ProxyServer:     "proxy",
		switches.ProxyBypassList: "list",
		unknownBool:              "a value",
	})

	if _, ok := s.Get(unknownBool); ok {
		t.Errorf("%q не должен быть найден", unknownBool)
	}
	if _, ok := s.Get(unknownString); ok {
		t.Errorf("%q не должен быть найден", unknownString)
	}

	cfg := verifyProxyMode(t, s, types.ProxyModeFixedServers)
	if cfg.Server != "proxy" {
		t.Errorf("server = %q, ожидался \"proxy\"", cfg.Server)
	}
	if cfg.BypassList != "list" {
		t.Errorf("bypass_list = %q, ожидался \"list\"", cfg.BypassList)
	}
}

func TestManualProxyModeInference(t *testing.T) {
	s1 := build(switches.Map{unknownString: "", switches.ProxyServer: "proxy"})
	verifyProxyMode(t, s1, types.ProxyModeFixedServers)

	s2 := build(switches.Map{switches.ProxyPacURL: "proxy"})
	cfg := verifyProxyMode(t, s2, types.ProxyModePacScript)
	if cfg.PacURL != "proxy" {
		t.Errorf("pac_url = %q, ожидался \"proxy\"", cfg.PacURL)
	}

	s3 := build(switches.Map{switches.ProxyServer: ""})
	cfg = verifyProxyMode(t, s3, types.ProxyModeDirect)
	if cfg.Server != "" || cfg.BypassList != "" {
		t.Errorf("direct не должен содержать параметров: %+v", cfg)
	}
}

func TestNoProxySwitchesNoEntry(t *testing.T) {
	s := build(switches.Map{switches.Lang: "en"})
	if _, ok := s.Get(prefnames.Proxy); ok {
		t.Error("без переключателей прокси ключ proxy не должен создаваться")
	}
}

func TestProxySwitchValidation(t *testing.T) {
	tests := []struct {
		name string
		src  switches.Map
		want bool
	}{
		{"no switches", switches.Map{}, true},
		{"only no-proxy", switches.Map{switches.NoProxyServer: ""}, true},
		{"no-proxy and auto-detect", switches.Map{switches.NoProxyServer: "", switches.ProxyAutoDetect: ""}, false},
		{"all except no-proxy", switches.Map{
			switches.ProxyAutoDetect: "",
			switches.ProxyServer:     "server",
			switches.ProxyPacURL:     "url",
			switches.ProxyBypassList: "list",
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := build(tt.src).ProxySwitchesValid(); got != tt.want {
				t.Errorf("ProxySwitchesValid() = %v, ожидалось %v", got, tt.want)
			}
		})
	}
}

func TestInvalidProxySwitchesStillResolve(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := Build(switches.Map{switches.NoProxyServer: "", switches.ProxyServer: "proxy"}, WithLogger(logger))

	verifyProxyMode(t, s, types.ProxyModeDirect)
	if s.ProxySwitchesValid() {
		t.Error("комбинация должна быть недопустимой")
	}
	if !strings.Contains(buf.String(), "противоречивые переключатели прокси") {
		t.Errorf("ожидалось предупреждение в логе, получено: %q", buf.String())
	}
	if !strings.Contains(buf.String(), switches.ProxyServer) {
		t.Errorf("в логе нет конфликтующего переключателя: %q", buf.String())
	}
}

func TestDisableSSLCipherSuites(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"0x0004,0x0005", []string{"0x0004", "0x0005"}},
		{"0x0004, WHITESPACE_IGNORED TEST , 0x0005", []string{"0x0004", "WHITESPACE_IGNORED TEST", "0x0005"}},
		{"0x0004;MOAR;0x0005", []string{"0x0004;MOAR;0x0005"}},
	}

	for _, tt := range tests {
		s := build(switches.Map{switches.CipherSuiteBlacklist: tt.value})

		v, ok := s.Get(prefnames.CipherSuiteBlacklist)
		if !ok {
			t.Fatalf("%q: ключ не найден", tt.value)
		}
		if v.Kind() != types.KindStringList {
			t.Fatalf("%q: ожидался список, получен %v", tt.value, v.Kind())
		}
		got, _ := v.AsStringList()
		if !slices.Equal(got, tt.want) {
			t.Errorf("%q: получено %q, ожидалось %q", tt.value, got, tt.want)
		}
	}
}

func TestStringListIsCopied(t *testing.T) {
	s := build(switches.Map{switches.CipherSuiteBlacklist: "a,b"})

	got, _ := s.GetStringList(prefnames.CipherSuiteBlacklist)
	got[0] = "changed"

	again, _ := s.GetStringList(prefnames.CipherSuiteBlacklist)
	if again[0] != "a" {
		t.Errorf("Store изменился через возвращённый срез: %q", again)
	}
}

func TestTypedGettersWrongKind(t *testing.T) {
	s := build(switches.Map{switches.Lang: "en"})

	if _, ok := s.GetBool(prefnames.ApplicationLocale); ok {
		t.Error("GetBool на строковом ключе должен вернуть ok=false")
	}
	if _, ok := s.GetProxy(prefnames.ApplicationLocale); ok {
		t.Error("GetProxy на строковом ключе должен вернуть ok=false")
	}
	if _, ok := s.GetString("missing"); ok {
		t.Error("GetString на отсутствующем ключе должен вернуть ok=false")
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	src := switches.Map{
		switches.Lang:                 "ru",
		switches.ProxyServer:          "proxy:3128",
		switches.ProxyBypassList:      "localhost",
		switches.CipherSuiteBlacklist: "0x0004,0x0005",
		switches.NoPings:              "",
	}

	a := build(src)
	b := build(src)

	if !a.Equal(b) {
		t.Fatalf("две сборки из одного источника отличаются: %v / %v", a.Snapshot(), b.Snapshot())
	}
	for _, k := range a.Keys() {
		va, _ := a.Get(k)
		vb, ok := b.Get(k)
		if !ok || !va.Equal(vb) {
			t.Errorf("ключ %q отличается", k)
		}
	}
}

func TestEqualNil(t *testing.T) {
	s := build(switches.Map{switches.Lang: "en"})

	if s.Equal(nil) {
		t.Error("Store не должен быть равен nil")
	}
	var empty *Store
	if !empty.Equal(nil) {
		t.Error("два nil должны быть равны")
	}
	if empty.Equal(s) {
		t.Error("nil не должен быть равен Store")
	}
}

func TestWithTable(t *testing.T) {
	extra := mapping.Table{
		{Switch: model.Switch{Name: "homepage", Kind: model.SwitchKindString}, PrefKey: "browser.homepage"},
		{Switch: model.Switch{Name: "extra-fonts", Kind: model.SwitchKindStringList}, PrefKey: "fonts.extra"},
	}
	table := mapping.Merge(mapping.Default(), extra)

	s := Build(switches.Map{
		"homepage":           "about:blank",
		"extra-fonts":        "Arial, Verdana",
		switches.ProxyServer: "proxy",
	}, WithTable(table), WithLogger(quietLogger()))

	if got, _ := s.GetString("browser.homepage"); got != "about:blank" {
		t.Errorf("browser.homepage = %q", got)
	}
	if got, _ := s.GetStringList("fonts.extra"); !slices.Equal(got, []string{"Arial", "Verdana"}) {
		t.Errorf("fonts.extra = %q", got)
	}
	verifyProxyMode(t, s, types.ProxyModeFixedServers)
}

func TestTableWithoutProxyEntries(t *testing.T) {
	table := mapping.Table{
		{Switch: model.Switch{Name: switches.Lang, Kind: model.SwitchKindString}, PrefKey: prefnames.ApplicationLocale},
	}

	s := Build(switches.Map{switches.ProxyServer: "proxy", switches.Lang: "en"}, WithTable(table), WithLogger(quietLogger()))

	if _, ok := s.Get(prefnames.Proxy); ok {
		t.Error("таблица без записей прокси не должна давать ключ proxy")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, ожидалось 1", s.Len())
	}
}

func TestConcurrentReads(t *testing.T) {
	s := build(switches.Map{
		switches.Lang:                 "en",
		switches.ProxyPacURL:          "http://wpad/wpad.dat",
		switches.CipherSuiteBlacklist: "0x0004",
	})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := s.GetString(prefnames.ApplicationLocale); !ok {
					t.Error("intl.app_locale не найден")
					return
				}
				if _, ok := s.GetProxy(prefnames.Proxy); !ok {
					t.Error("proxy не найден")
					return
				}
				_ = s.Keys()
			}
		}()
	}
	wg.Wait()
}
