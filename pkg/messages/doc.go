// Package messages holds the user-facing strings of the language switcher
// (flash messages, API errors, widget labels) as go-i18n catalogs embedded
// from locales/*.yaml.
//
//	cat := messages.MustNew()
//	cat.Localize("ja", messages.LanguageSwitched, map[string]any{"Name": "日本語"})
package messages
