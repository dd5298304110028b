package dish

import "strings"

// AreSimilar reports whether two dish names denote the same dish. Keys must
// match exactly, or contain each other when both are long enough for
// substring containment to be meaningful (compound names like
// "chicken curry" vs "chicken").
func AreSimilar(a, b string) bool {
	k1 := Normalize(a)
	k2 := Normalize(b)

	if k1 == "" || k2 == "" {
		return false
	}
	if k1 == k2 {
		return true
	}

	// Guard against short generic keys matching everything.
	if len(k1) > 3 && len(k2) > 3 {
		return strings.Contains(k1, k2) || strings.Contains(k2, k1)
	}
	return false
}

// HasSimilarFavorite reports whether any favorite matches the item.
func HasSimilarFavorite(item string, favorites []string) bool {
	for _, fav := range favorites {
		if AreSimilar(item, fav) {
			return true
		}
	}
	return false
}

// MatchingFavorite returns the first favorite that matches the item.
func MatchingFavorite(item string, favorites []string) (string, bool) {
	for _, fav := range favorites {
		if AreSimilar(item, fav) {
			return fav, true
		}
	}
	return "", false
}
