package handler

import (
	"net/http"
	"net/url"
	"strings"
)

// redirect answers 303 See Other so a POST is followed by a GET.
type redirect func(r *http.Request) string

func (to redirect) Render(w http.ResponseWriter, r *http.Request) error {
	http.Redirect(w, r, to(r), http.StatusSeeOther)
	return nil
}

// Redirect sends the client to target.
func Redirect(target string) Response {
	return redirect(func(*http.Request) string { return target })
}

// RedirectBack sends the client to BackURL(r, fallback).
func RedirectBack(fallback string) Response {
	return redirect(func(r *http.Request) string { return BackURL(r, fallback) })
}

// BackURL is the Referer when IsSafeRedirect accepts it, otherwise fallback.
func BackURL(r *http.Request, fallback string) string {
	if ref := r.Header.Get("Referer"); ref != "" && IsSafeRedirect(ref, r) {
		return ref
	}
	return fallback
}

// IsSafeRedirect accepts a path on this site ("/settings") or an http(s) URL
// on the request's own host. Protocol-relative targets, backslashes, control
// characters, opaque URLs ("https:evil.test") and other schemes are rejected
// because browsers may resolve them to another host.
func IsSafeRedirect(target string, r *http.Request) bool {
	if target == "" || strings.ContainsFunc(target, func(c rune) bool {
		return c == '\\' || c < 0x20 || c == 0x7f
	}) {
		return false
	}
	u, err := url.Parse(target)
	if err != nil || u.Opaque != "" {
		return false
	}
	switch u.Scheme {
	case "":
		return u.Host == "" && target[0] == '/' && !strings.HasPrefix(target, "//")
	case "http", "https":
		return u.Host != "" && u.Host == r.Host
	}
	return false
}
