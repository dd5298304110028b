package dish

import "strings"

// Common filler words that never distinguish one dish from another.
var stopWords = map[string]bool{
	"the":  true,
	"and":  true,
	"or":   true,
	"with": true,
}

// synonyms folds known spelling and naming variants onto one canonical key.
// Keys are fully cleaned names (lowercase, no punctuation, no stop words).
var synonyms = map[string]string{
	"buttermilk":  "buttermilk",
	"butter milk": "buttermilk",

	"chappathi": "chapathi",
	"chappati":  "chapathi",
	"chapati":   "chapathi",

	"sambhar":  "sambar",
	"sambhaar": "sambar",

	"tea coffee": "tea",
	"coffee tea": "tea",

	"steamed rice": "rice",
	"plain rice":   "rice",
	"white rice":   "rice",
	"basmati rice": "rice",
	"jeera rice":   "rice",

	"fried rice": "friedrice",

	"veg biryani":     "biryani",
	"chicken biryani": "biryani",
	"mutton biryani":  "biryani",

	"paneer butter masala": "paneer",
	"paneer masala":        "paneer",
	"kadai paneer":         "paneer",

	"dal fry":    "dal",
	"dal tadka":  "dal",
	"dal makhni": "dal",
	"toor dal":   "dal",
	"moong dal":  "dal",
	"masala dal": "dal",

	"mix veg":          "mixveg",
	"mixed vegetables": "mixveg",
	"vegetable curry":  "mixveg",
	"veg curry":        "mixveg",

	"coconut chutney":   "chutney",
	"mint chutney":      "chutney",
	"groundnut chutney": "chutney",
	"tomato chutney":    "chutney",

	"bread butter jam": "bread",
	"bread jam":        "bread",
	"bread butter":     "bread",
}

// clean lowercases a raw dish name, strips the **special** markers and all
// punctuation, collapses whitespace and drops stop words.
func clean(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "**", "")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		}
	}

	words := strings.Fields(b.String())
	kept := words[:0]
	for _, w := range words {
		if !stopWords[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// Normalize reduces a raw dish name to its matching key. Known variants map
// through the synonym table; everything else keys on its first two
// significant words. Empty or punctuation-only input yields an empty key,
// which callers must treat as "no match".
func Normalize(raw string) string {
	cleaned := clean(raw)
	if cleaned == "" {
		return ""
	}

	if canonical, ok := synonyms[cleaned]; ok {
		return canonical
	}

	words := strings.Fields(cleaned)
	significant := make([]string, 0, 2)
	for _, w := range words {
		if len(w) > 2 {
			significant = append(significant, w)
			if len(significant) == 2 {
				break
			}
		}
	}

	if len(significant) == 0 {
		return cleaned
	}
	return strings.Join(significant, " ")
}
