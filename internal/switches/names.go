package switches

// Имена переключателей, о которых договорились со слоем командной строки.
const (
	Lang = "lang"

	NoProxyServer   = "no-proxy-server"
	ProxyAutoDetect = "proxy-auto-detect"
	ProxyPacURL     = "proxy-pac-url"
	ProxyServer     = "proxy-server"
	ProxyBypassList = "proxy-bypass-list"

	CipherSuiteBlacklist = "cipher-suite-blacklist"

	EnableAuthNegotiatePort         = "enable-auth-negotiate-port"
	DisableAuthNegotiateCnameLookup = "disable-auth-negotiate-cname-lookup"
	AuthSchemes                     = "auth-schemes"
	AuthServerWhitelist             = "auth-server-whitelist"
	AuthNegotiateDelegateWhitelist  = "auth-negotiate-delegate-whitelist"
	GSSAPILibraryName               = "gssapi-library-name"

	Disable3DAPIs          = "disable-3d-apis"
	DisableTLS1            = "disable-tls1"
	EnableCloudPrintProxy  = "enable-cloud-print-proxy"
	NoPings                = "no-pings"
	AllowOutdatedPlugins   = "allow-outdated-plugins"
	AlwaysAuthorizePlugins = "always-authorize-plugins"
)
