package logger

import "log/slog"

// Attribute helpers keep key names identical across packages. Helpers whose
// input may be absent return the zero Attr, which slog drops.

func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// UserID is "guest" for anonymous visitors in audit lines; callers decide.
func UserID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("user_id", id)
}

func Locale(code string) slog.Attr { return slog.String("locale", code) }

// Source is the detection source of a locale: session, url, header or default.
func Source(source string) slog.Attr { return slog.String("source", source) }

func IP(ip string) slog.Attr { return slog.String("ip_address", ip) }

func Component(name string) slog.Attr { return slog.String("component", name) }

func Event(name string) slog.Attr { return slog.String("event", name) }
