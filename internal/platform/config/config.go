// Package config reads service settings from the environment.
//
// Must* helpers panic through the logger on a missing or malformed value and
// belong in main. May* helpers fall back to a default and warn when a value is
// present but unusable.
package config

import (
	"encoding/base64"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gadash/internal/platform/logger"
)

// Conf is a view over the environment scoped by a key prefix
type Conf struct{ prefix string }

// New returns the unprefixed view
func New() Conf { return Conf{} }

// Prefix narrows the view: New().Prefix("GA_").MustString("PROPERTY_ID") reads GA_PROPERTY_ID
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) raw(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

// may parses key, returning def when unset and warning when unparsable
func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s := c.raw(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).
			Msg("invalid config value; using default")
		return def
	}
	return v
}

// must parses key and panics when it is unset or unparsable
func must[T any](c Conf, key string, parse func(string) (T, error)) T {
	s := c.raw(key)
	if s == "" {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.key(key)).Err(err).Msg("invalid required env")
	}
	return v
}

func parseString(s string) (string, error) { return s, nil }

// MustString returns the trimmed value; secrets pass through here so values are never logged
func (c Conf) MustString(key string) string { return must(c, key, parseString) }

// MayString returns the trimmed value or def
func (c Conf) MayString(key, def string) string { return may(c, key, def, parseString) }

// MayInt returns the value or def
func (c Conf) MayInt(key string, def int) int { return may(c, key, def, strconv.Atoi) }

// MayBool accepts strconv.ParseBool spellings
func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

// MayDuration accepts time.ParseDuration syntax such as 250ms or 25s
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}

// MayBase64 decodes a standard base64 value, nil when unset or invalid
func (c Conf) MayBase64(key string) []byte {
	return may(c, key, []byte(nil), base64.StdEncoding.DecodeString)
}

// MayCSV splits a comma separated list, dropping blanks; def when nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.raw(key), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value when it case-insensitively matches one of allowed, def when unset.
// Anything else panics: a typo in a mode switch must not silently pick the default.
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return v
		}
	}
	if v != "" {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	}
	return v
}

// MayAddr returns a listen address. A bare port such as 4000 becomes :4000.
func (c Conf) MayAddr(key, def string) string {
	return may(c, key, def, func(s string) (string, error) {
		if !strings.Contains(s, ":") {
			s = ":" + s
		}
		_, port, err := net.SplitHostPort(s)
		if err != nil {
			return "", err
		}
		if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
			return "", fmt.Errorf("port %q out of range", port)
		}
		return s, nil
	})
}
