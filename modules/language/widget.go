package language

// WidgetData is everything the switcher fragment renders.
type WidgetData struct {
	Current     string
	CurrentName string // empty when the current locale has no configured name
	Label       string // button text used when CurrentName is empty
	Languages   []WidgetLanguage
	Flash       *Flash
}

type WidgetLanguage struct {
	Code   string
	Name   string
	Active bool
	Action string
}
