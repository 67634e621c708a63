// Package locale holds the pure parts of locale negotiation: the registry of
// supported locales, the detector that picks a locale for a request, the
// Accept-Language parser and the request-scoped "current locale" value.
//
// Nothing in this package touches sessions or writes responses, which keeps
// detection deterministic and easy to test. The switcher package wires these
// pieces into HTTP middleware.
//
// # Registry
//
//	reg := locale.NewRegistry(map[string]string{
//		"en": "English",
//		"ja": "日本語",
//		"vi": "Tiếng Việt",
//	}, "en", "en")
//
//	reg.IsSupported("ja")   // true
//	reg.DisplayName("fr")   // "fr"
//
// Codes are compared case-sensitively; "EN" is not "en".
//
// # Detection
//
// A Detector consults the session value, the URL parameter and the
// Accept-Language header according to a Strategy:
//
//	det := locale.NewDetector(reg, "en")
//	code := det.Detect(locale.Candidates{
//		Session: "ja",
//		Query:   "vi",
//		Header:  "en-US,en;q=0.9",
//	}, locale.StrategyAll)
//	// code == "ja": the session wins under StrategyAll
//
// Detect never fails. When nothing matches it returns the application default,
// which may itself be unsupported; Resolve additionally replaces unsupported
// results with the registry fallback.
//
// # Accept-Language
//
// ParseAcceptLanguage orders entries by q-value, keeping header order for ties.
// Region subtags are dropped before the support check, so "en-GB" selects "en".
//
// # Request-scoped locale
//
//	ctx = locale.WithLocale(ctx, "vi")
//	locale.GetLocale(ctx) // "vi"
//	locale.Override(ctx, "ja")
//	locale.GetLocale(ctx) // "ja"
package locale
