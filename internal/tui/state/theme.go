package state

import "strings"

// Theme is one of the closed set of display themes.
type Theme int

const (
	SolarizedDark Theme = iota
	Base16Mocha
	Base16Ocean
	Base16Eighties
	InspiredGitHub
)

// AllThemes lists every theme in selector order.
var AllThemes = []Theme{SolarizedDark, Base16Mocha, Base16Ocean, Base16Eighties, InspiredGitHub}

var themeNames = map[Theme]string{
	SolarizedDark:  "SolarizedDark",
	Base16Mocha:    "Base16Mocha",
	Base16Ocean:    "Base16Ocean",
	Base16Eighties: "Base16Eighties",
	InspiredGitHub: "InspiredGitHub",
}

var themeLabels = map[Theme]string{
	SolarizedDark:  "Solarized Dark",
	Base16Mocha:    "Mocha",
	Base16Ocean:    "Ocean",
	Base16Eighties: "Eighties",
	InspiredGitHub: "Inspired GitHub",
}

// String is the config/CLI name.
func (t Theme) String() string {
	if n, ok := themeNames[t]; ok {
		return n
	}
	return "Theme(?)"
}

// Label is the name shown in the theme selector.
func (t Theme) Label() string { return themeLabels[t] }

func (t Theme) IsDark() bool { return t != InspiredGitHub }

// Next cycles through AllThemes.
func (t Theme) Next() Theme {
	for i, th := range AllThemes {
		if th == t {
			return AllThemes[(i+1)%len(AllThemes)]
		}
	}
	return SolarizedDark
}

// ParseTheme accepts the config name or the label, ignoring case, spaces,
// dashes and underscores.
func ParseTheme(name string) (Theme, bool) {
	key := normalize(name)
	for _, t := range AllThemes {
		if normalize(t.String()) == key || normalize(t.Label()) == key {
			return t, true
		}
	}
	return SolarizedDark, false
}

func ThemeNames() []string {
	out := make([]string, len(AllThemes))
	for i, t := range AllThemes {
		out[i] = t.String()
	}
	return out
}

func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}
