package content

import (
	"regexp"
	"strings"
)

// decorationKeywords are the parenthesised names LINE substitutes for its own
// emoji when a transcript is exported, e.g. "(heart)".
var decorationKeywords = []string{
	"heart", "star", "moon", "sun", "flower", "clover", "cherry", "smile", "cry", "angry",
	"love", "kiss", "wink", "laugh", "sad", "happy", "sleepy", "surprised", "confused", "cool",
	"sick", "devil", "angel", "ghost", "skull", "fire", "sparkle", "music", "note", "diamond",
	"crown", "ribbon", "gift", "cake", "coffee", "beer", "wine", "cocktail", "pizza", "ramen",
	"sushi", "rice", "bread", "apple", "strawberry", "peach", "cat", "dog", "rabbit", "bear",
	"panda", "pig", "monkey", "chicken", "penguin", "fish", "butterfly", "frog", "mouse", "tiger",
	"dragon", "unicorn", "rainbow", "cloud", "rain", "snow", "thunder", "rocket", "airplane", "car",
	"train", "house", "tree", "leaf", "rose", "tulip", "sunflower", "blossom", "eye", "eyes",
	"lips", "hand", "thumbsup", "thumbsdown", "clap", "wave", "ok", "peace", "fist", "punch",
	"point", "pray", "glasses", "sunglasses", "bag", "ring", "gem", "watch", "phone", "camera",
	"headphone", "microphone", "clock", "alarm", "calendar", "money", "yen", "mail", "envelope", "present",
	"pencil", "pen", "lock", "key", "bomb", "pill", "bed", "candle", "bulb", "balloon",
	"confetti", "party", "crystal", "magnet", "battery", "gear", "link", "lamp", "lantern", "torch",
}

var decorationPattern = regexp.MustCompile(`(?i)\((?:` + strings.Join(decorationKeywords, "|") + `)\)`)

// StripDecorations replaces every "(keyword)" decoration with a space.
// Applying it to its own output changes nothing.
func StripDecorations(text string) string {
	return decorationPattern.ReplaceAllString(text, " ")
}

// IsDecoration reports whether text contains a decoration.
func IsDecoration(text string) bool {
	return decorationPattern.MatchString(text)
}
