package proxy

import "github.com/vovanwin/cmdlineprefs/internal/switches"

// noProxyGroup несовместима с любым переключателем из proxyGroup
var (
	noProxyGroup = []string{switches.NoProxyServer}
	proxyGroup   = []string{
		switches.ProxyAutoDetect,
		switches.ProxyServer,
		switches.ProxyPacURL,
		switches.ProxyBypassList,
	}
)

// Validate возвращает false, если одновременно переданы no-proxy-server
// и хотя бы один переключатель, задающий прокси. На Resolve не влияет.
func Validate(src switches.Source) bool {
	return len(Conflicts(src)) == 0
}

// Conflicts возвращает переключатели прокси, которые противоречат no-proxy-server.
// Пустой результат означает допустимую комбинацию.
func Conflicts(src switches.Source) []string {
	if !anyPresent(src, noProxyGroup) {
		return nil
	}
	var out []string
	for _, name := range proxyGroup {
		if src.Has(name) {
			out = append(out, name)
		}
	}
	return out
}

func anyPresent(src switches.Source, names []string) bool {
	for _, name := range names {
		if src.Has(name) {
			return true
		}
	}
	return false
}
