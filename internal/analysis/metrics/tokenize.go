package metrics

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zhouzirui/talklens/backend/internal/analysis/content"
)

const maxWordRunes = 10

var (
	shortcodePattern  = regexp.MustCompile(`:[a-zA-Z_]+:`)
	bracketPattern    = regexp.MustCompile(`\[.*?\]`)
	urlPattern        = regexp.MustCompile(`(?i)https?://\S+`)
	wwwPattern        = regexp.MustCompile(`(?i)www\.\S+`)
	domainPathPattern = regexp.MustCompile(`(?i)[a-z0-9-]+\.[a-z]{2,}/\S*`)
	emailPattern      = regexp.MustCompile(`[^\s@]+@[^\s@]+\.[^\s@]+`)
	nonWordPattern    = regexp.MustCompile(`[^\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FAF}\w]+`)

	linkSchemePattern = regexp.MustCompile(`(?i)^https?://`)
	linkWWWPattern    = regexp.MustCompile(`(?i)^www\.`)
	linkTLDPattern    = regexp.MustCompile(`(?i)\.(com|net|org|jp|co\.jp|io|app|dev|me|tv|cc|info|biz|xyz)$`)
	linkEmailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	linkShortPattern  = regexp.MustCompile(`(?i)^[a-z0-9]{2,10}\.[a-z]{2,4}$`)
	linkDottedPattern = regexp.MustCompile(`(?i)^[a-z0-9]+\.[a-z0-9]+$`)

	digitsOnlyPattern  = regexp.MustCompile(`^\d+$`)
	symbolsOnlyPattern = regexp.MustCompile(`^[!-/:-@\[-` + "`" + `{-~、。！？・…]+$`)
	bracketedPattern   = regexp.MustCompile(`^\[.*\]$`)
	clockPattern       = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)
)

var stopWords = toSet(
	"の", "に", "は", "を", "た", "が", "で", "て", "と", "し", "れ", "さ", "ある", "いる", "も", "する",
	"から", "な", "こと", "として", "い", "や", "れる", "など", "なっ", "ない", "この", "ため", "その",
	"あの", "あれ", "それ", "これ", "どれ", "いつ", "どこ", "だれ", "なに", "なん", "です", "ます",
	"でした", "ました", "よ", "ね", "わ", "か", "けど", "けども", "ので", "のに", "だけ", "ばかり",
	"くらい", "ぐらい", "ほど", "まで", "よる", "より", "へ",
	"null", "undefined", "emoji", "suparkle", "00",
	"アルバム", "応答", "なし", "通話", "不在", "着信", "ビデオ", "音声", "キャンセル",
	"スタンプ", "写真", "動画", "ファイル", "連絡", "位置", "情報", "ボイス", "メッセージ", "ショップ",
	"カード", "投票", "日程", "調整", "イベント", "リンク",
	"グループ", "退会", "参加", "招待", "削除", "変更", "ノート", "投稿", "修正", "作成", "追加",
	"sticker", "photo", "image", "video", "file", "contact", "location", "voice", "message",
	"album", "note", "event", "call", "duration", "missed", "canceled", "answer", "reaction",
	"unsent", "encrypted", "letter", "sealing", "group", "joined", "left", "invited", "removed",
)

var urlFragments = toSet(
	"https", "http", "www", "com", "net", "org", "jp", "io", "app", "dev", "me", "tv", "cc",
	"info", "biz", "xyz", "bit", "ly", "t", "co", "goo", "gl", "amzn", "to",
)

// emojiNames are English words LINE writes in place of emoji on export.
var emojiNames = toSet(
	"heart", "hearts", "sparkle", "sparkles", "smile", "smiling", "laugh", "laughing", "cry", "crying",
	"tears", "joy", "face", "grin", "grinning", "wink", "winking", "kiss", "kissing", "thumbs", "up",
	"down", "ok", "hand", "wave", "clap", "pray", "fire", "star", "sun", "moon", "cloud", "rain",
	"snow", "lightning", "rainbow", "flower", "rose", "tulip", "cherry", "blossom", "eyes", "eye",
	"nose", "mouth", "tongue", "ear", "muscle", "lips", "sweat", "cold", "hot", "sick", "mask",
	"sleeping", "sleepy", "zzz", "boom", "dizzy", "dash", "bomb", "speech", "thought", "anger",
	"exclamation", "question", "white", "black", "red", "orange", "yellow", "green", "blue",
	"purple", "brown", "circle", "square", "diamond", "musical", "notes", "cat", "dog", "mouse",
	"rabbit", "bear", "panda", "tiger", "pig", "frog", "monkey", "chicken", "penguin", "bird",
	"baby", "chick", "scream", "flushed", "worried", "confused", "relieved", "pensive", "tired",
	"weary", "angry", "rage", "sob", "thinking", "hugging", "beaming", "rofl", "blush", "halo",
	"smirk", "unamused", "neutral", "pleading", "pout", "party", "with", "over", "hello", "hi",
	"hey", "bye", "yay", "yeah", "yup", "nope", "wow", "omg", "lol", "lmao", "kitty", "puppy", "bunny",
)

var systemFragments = []string{
	"利用していた", "端末から", "このメッセージは", "友だちに", "再送信", "暗号化",
	"letter", "sealing", "encrypted", "end-to-end", "reacted", "unsent", "duration", "missed", "canceled",
}

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Tokenize extracts countable words from a message body.
func Tokenize(body string) []string {
	cleaned := shortcodePattern.ReplaceAllString(body, " ")
	cleaned = bracketPattern.ReplaceAllString(cleaned, " ")
	cleaned = urlPattern.ReplaceAllString(cleaned, " ")
	cleaned = wwwPattern.ReplaceAllString(cleaned, " ")
	cleaned = emailPattern.ReplaceAllString(cleaned, " ")
	cleaned = domainPathPattern.ReplaceAllString(cleaned, " ")
	cleaned = content.StripDecorations(cleaned)
	cleaned = strings.Map(func(r rune) rune {
		if content.IsExtendedEmojiRune(r) {
			return ' '
		}
		return r
	}, cleaned)
	cleaned = nonWordPattern.ReplaceAllString(cleaned, " ")

	var words []string
	for _, field := range strings.Fields(cleaned) {
		for _, word := range splitScripts(field) {
			if keepWord(word) {
				words = append(words, word)
			}
		}
	}
	return words
}

// splitScripts cuts a field where Latin/digit text meets Japanese text,
// e.g. "OKです" -> "OK", "です". Kana and kanji stay together.
func splitScripts(field string) []string {
	var parts []string
	start := 0
	prevLatin := false
	for i, r := range field {
		latin := r < utf8.RuneSelf
		if i > 0 && latin != prevLatin {
			parts = append(parts, field[start:i])
			start = i
		}
		prevLatin = latin
	}
	return append(parts, field[start:])
}

func keepWord(word string) bool {
	if utf8.RuneCountInString(word) <= 1 {
		return false
	}
	lower := strings.ToLower(word)
	if _, stop := stopWords[lower]; stop {
		return false
	}
	return !isLink(word) && !isGarbage(word)
}

func isLink(word string) bool {
	if linkSchemePattern.MatchString(word) || linkWWWPattern.MatchString(word) ||
		linkTLDPattern.MatchString(word) || linkEmailPattern.MatchString(word) ||
		linkShortPattern.MatchString(word) || linkDottedPattern.MatchString(word) {
		return true
	}
	_, ok := urlFragments[strings.ToLower(word)]
	return ok
}

func isGarbage(word string) bool {
	if utf8.RuneCountInString(word) > maxWordRunes {
		return true
	}
	if digitsOnlyPattern.MatchString(word) || symbolsOnlyPattern.MatchString(word) ||
		bracketedPattern.MatchString(word) || clockPattern.MatchString(word) ||
		content.IsDecoration(word) {
		return true
	}
	lower := strings.ToLower(word)
	if _, ok := emojiNames[lower]; ok {
		return true
	}
	for _, frag := range systemFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return strings.IndexFunc(word, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) < 0
}
