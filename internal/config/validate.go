package config

import (
	"fmt"
	"net/netip"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Backend.JWTSecret) < 32 {
		return fmt.Errorf("backend.jwt_secret must be at least 32 characters (got %d)", len(c.Backend.JWTSecret))
	}

	if err := c.Backend.validate(); err != nil {
		return fmt.Errorf("backend: %w", err)
	}

	if _, err := c.Server.TrustedProxyPrefixes(); err != nil {
		return fmt.Errorf("server.trusted_proxies: %w", err)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must be >= 0 (got %v)", c.Database.StatementTimeout)
	}

	if c.Auth.ProfileFetchTimeout <= 0 {
		return fmt.Errorf("auth.profile_fetch_timeout must be > 0 (got %v)", c.Auth.ProfileFetchTimeout)
	}
	if !strings.HasPrefix(c.Auth.LoginPath, "/") {
		return fmt.Errorf("auth.login_path must start with / (got %q)", c.Auth.LoginPath)
	}

	if c.Evidence.MaxUploadBytes <= 0 {
		return fmt.Errorf("evidence.max_upload_bytes must be > 0 (got %d)", c.Evidence.MaxUploadBytes)
	}
	if c.Evidence.UploadTimeout < 0 {
		return fmt.Errorf("evidence.upload_timeout must be >= 0 (got %v)", c.Evidence.UploadTimeout)
	}

	if c.Cache.ListTTL < 0 {
		return fmt.Errorf("cache.list_ttl must be >= 0 (got %v)", c.Cache.ListTTL)
	}

	return nil
}

func (b *BackendConfig) validate() error {
	u, err := url.Parse(b.URL)
	if err != nil {
		return fmt.Errorf("url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url must be http(s) (got %q)", b.URL)
	}
	b.URL = strings.TrimRight(b.URL, "/")

	if b.EvidenceBucket == "" {
		return fmt.Errorf("evidence_bucket is required")
	}
	if b.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %v)", b.RequestTimeout)
	}
	if b.UploadTimeout < 0 {
		return fmt.Errorf("upload_timeout must be >= 0 (got %v)", b.UploadTimeout)
	}
	return nil
}

// TrustedProxyPrefixes parses TrustedProxies. A bare address is a
// single-host prefix.
func (s ServerConfig) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, raw := range strings.Split(s.TrustedProxies, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.Contains(raw, "/") {
			p, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, err
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}
