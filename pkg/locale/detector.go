package locale

// Strategy selects which request sources the detector consults.
type Strategy string

const (
	StrategySession Strategy = "session"
	StrategyURL     Strategy = "url"
	StrategyHeader  Strategy = "header"
	StrategyAll     Strategy = "all"
)

// Valid reports whether s is one of the known strategies.
func (s Strategy) Valid() bool {
	switch s {
	case StrategySession, StrategyURL, StrategyHeader, StrategyAll:
		return true
	}
	return false
}

// Source names where a detected locale came from.
type Source string

const (
	SourceSession Source = "session"
	SourceURL     Source = "url"
	SourceHeader  Source = "header"
	SourceDefault Source = "default"
)

// Candidates holds the raw per-request values the detector chooses from.
// Empty fields are treated as absent.
type Candidates struct {
	Session string
	Query   string
	Header  string
}

// Detection is the detector's answer together with the source that produced it.
type Detection struct {
	Locale string
	Source Source
}

// Detector resolves the locale for one request. It never fails: when no source
// yields a usable value it returns the application default, which callers are
// expected to validate against the registry.
type Detector struct {
	registry   *Registry
	appDefault string
}

// NewDetector creates a detector. appDefault is the application-level locale and
// need not be the registry default; empty means DefaultLocale.
func NewDetector(reg *Registry, appDefault string) *Detector {
	if appDefault == "" {
		appDefault = DefaultLocale
	}
	return &Detector{registry: reg, appDefault: appDefault}
}

func (d *Detector) Detect(c Candidates, s Strategy) string {
	return d.DetectWithSource(c, s).Locale
}

// DetectWithSource applies the strategy and reports which source won.
// Unknown strategies behave as StrategyAll.
func (d *Detector) DetectWithSource(c Candidates, s Strategy) Detection {
	switch s {
	case StrategySession:
		if c.Session != "" {
			return Detection{Locale: c.Session, Source: SourceSession}
		}
	case StrategyURL:
		if c.Query != "" {
			return Detection{Locale: c.Query, Source: SourceURL}
		}
	case StrategyHeader:
		if code, ok := NegotiateHeader(c.Header, d.registry); ok {
			return Detection{Locale: code, Source: SourceHeader}
		}
	default:
		if d.registry.IsSupported(c.Session) {
			return Detection{Locale: c.Session, Source: SourceSession}
		}
		if d.registry.IsSupported(c.Query) {
			return Detection{Locale: c.Query, Source: SourceURL}
		}
		if code, ok := NegotiateHeader(c.Header, d.registry); ok {
			return Detection{Locale: code, Source: SourceHeader}
		}
	}

	return Detection{Locale: d.appDefault, Source: SourceDefault}
}

// Resolve detects and validates in one step: unsupported results are replaced by
// the registry fallback.
func (d *Detector) Resolve(c Candidates, s Strategy) Detection {
	det := d.DetectWithSource(c, s)
	if !d.registry.IsSupported(det.Locale) {
		det.Locale = d.registry.Fallback()
	}
	return det
}
