package metrics

import (
	"strings"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"

	"github.com/zhouzirui/talklens/backend/internal/model/talk"
)

const languageSampleRunes = 4000

var languageCodes = map[whatlanggo.Lang]string{
	whatlanggo.Jpn: "ja",
	whatlanggo.Eng: "en",
	whatlanggo.Cmn: "zh",
	whatlanggo.Kor: "ko",
	whatlanggo.Spa: "es",
	whatlanggo.Fra: "fr",
	whatlanggo.Deu: "de",
	whatlanggo.Por: "pt",
}

func (e *Engine) language(c *conversation) talk.Language {
	var b strings.Builder
	sampled := 0
	c.valid(func(m talk.Message, _ int) {
		if sampled >= languageSampleRunes || !e.countsTowardWords(m) {
			return
		}
		b.WriteString(m.Body)
		b.WriteByte('\n')
		sampled += utf8.RuneCountInString(m.Body)
	})
	return DetectLanguage(b.String())
}

// DetectLanguage identifies the dominant language of text.
func DetectLanguage(text string) talk.Language {
	if strings.TrimSpace(text) == "" {
		return talk.Language{}
	}
	info := whatlanggo.Detect(text)
	lang := talk.Language{
		Code:       languageCodes[info.Lang],
		Name:       info.Lang.String(),
		Confidence: info.Confidence,
	}
	if info.Script != nil {
		lang.Script = whatlanggo.Scripts[info.Script]
	}
	return lang
}
