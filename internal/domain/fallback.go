package domain

// fallbackWords stands in for the word API when a fetch fails.
// Never hand this slice out directly.
var fallbackWords = [...]string{
	"apple", "bridge", "candle", "desert", "engine",
	"forest", "garden", "harbor", "island", "jacket",
	"kettle", "ladder", "marble", "needle", "orange",
	"pencil", "quartz", "rocket", "saddle", "throne",
	"umbrella", "valley", "window", "yellow", "zipper",
	"anchor", "basket", "canyon", "dragon", "falcon",
	"glacier", "helmet", "lantern", "meadow", "nectar",
	"oyster", "planet", "ribbon", "silver", "tunnel",
}

// FallbackSize is the number of words in the fallback pool
const FallbackSize = len(fallbackWords)

// FallbackWords returns a copy of the fallback pool
func FallbackWords() []string {
	words := make([]string, FallbackSize)
	copy(words, fallbackWords[:])
	return words
}

// FallbackWord returns the pool entry at i; i must be in [0, FallbackSize)
func FallbackWord(i int) string {
	return fallbackWords[i]
}

// IsFallbackWord reports whether w is in the fallback pool
func IsFallbackWord(w string) bool {
	for _, f := range fallbackWords {
		if f == w {
			return true
		}
	}
	return false
}
