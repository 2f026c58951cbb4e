// Package prefnames содержит ключи настроек, которые заполняются из командной строки.
package prefnames

const (
	ApplicationLocale = "intl.app_locale"

	// Proxy словарь с полями mode, server, bypass_list, pac_url
	Proxy = "proxy"

	// CipherSuiteBlacklist список отключённых шифров
	CipherSuiteBlacklist = "ssl.cipher_suites.blacklist"

	EnableAuthNegotiatePort         = "auth.enable_negotiate_port"
	DisableAuthNegotiateCnameLookup = "auth.disable_negotiate_cname_lookup"
	AuthSchemes                     = "auth.schemes"
	AuthServerWhitelist             = "auth.server_whitelist"
	AuthNegotiateDelegateWhitelist  = "auth.negotiate_delegate_whitelist"
	GSSAPILibraryName               = "auth.gssapi_library_name"

	Disable3DAPIs             = "disable_3d_apis"
	TLS1Disabled              = "ssl.tls1_disabled"
	CloudPrintProxyEnabled    = "cloud_print.enabled"
	HyperlinkAuditingDisabled = "browser.hyperlink_auditing_disabled"
	PluginsAllowOutdated      = "plugins.allow_outdated"
	PluginsAlwaysAuthorize    = "plugins.always_authorize"
)
