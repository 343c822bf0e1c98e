package content

import "regexp"

// PatternSet holds the keywords and patterns of one export language.
// Every predicate in this package walks all configured sets, so adding a
// locale means adding a PatternSet, not another predicate.
type PatternSet struct {
	Name string

	// CallKeywords mark call lifecycle lines; they are both system and call events.
	CallKeywords []string
	// UnsentPhrases are system lines that are not calls.
	UnsentPhrases     []string
	ReactionPhrases   []string
	MembershipPhrases []string
	// CollectionKeywords cover album / note / event notices.
	CollectionKeywords []string
	SecurityPrefixes   []string
	SecurityPhrases    []string
	MissedCallPhrases  []string

	Durations []durationPattern
	Media     []mediaToken

	MorningGreeting *regexp.Regexp
	NightGreeting   *regexp.Regexp
}

// Japanese is the primary export locale.
var Japanese = PatternSet{
	Name: "ja",
	CallKeywords: []string{
		"通話時間", "通話を終了", "通話を開始", "通話に応答", "応答がありません",
		"不在着信", "キャンセル", "応答なし", "ビデオ通話", "音声通話",
	},
	UnsentPhrases:   []string{"メッセージの送信を取り消しました", "友だちに再送信"},
	ReactionPhrases: []string{"がリアクションしました"},
	MembershipPhrases: []string{
		"が退会しました", "がグループを退会しました", "が参加しました", "がグループに参加しました",
		"が招待しました", "がグループから削除しました", "がグループ名を", "がグループのアイコンを変更しました",
	},
	CollectionKeywords: []string{"アルバム", "ノート", "イベント"},
	SecurityPrefixes:   []string{"このメッセージは"},
	SecurityPhrases:    []string{"利用していた端末", "友だちに再送信", "暗号化されています"},
	MissedCallPhrases:  []string{"不在着信"},
	Durations: []durationPattern{
		{re: regexp.MustCompile(`(?:☎\s*)?通話時間\s*(\d+):(\d{1,2}):(\d{1,2})`), shape: shapeHMS},
		{re: regexp.MustCompile(`(?:☎\s*)?通話時間\s*(\d+):(\d{1,2})`), shape: shapeMS},
		{re: regexp.MustCompile(`(?:☎\s*)?通話時間\s*(\d+)\s*(秒|分)`), shape: shapeUnit},
	},
	Media: []mediaToken{
		{"[スタンプ]", Sticker},
		{"[写真]", Photo},
		{"[動画]", Video},
		{"[ファイル]", File},
		{"[連絡先]", Contact},
		{"[位置情報]", Location},
		{"[ボイスメッセージ]", Voice},
		{"[ショップカード]", ShopCard},
		{"[投票]", Poll},
		{"[日程調整]", Schedule},
		{"[イベント]", Event},
		{"[リンク]", Link},
		{"[アルバム]", Album},
	},
	MorningGreeting: regexp.MustCompile(`^(おはようございます|おはよう|おはよ|おはー|おっはー|おっは|おは)`),
	NightGreeting:   regexp.MustCompile(`^(おやすみなさい|おやすみー|おやすみ|おやすー|おやっす|おやす)`),
}

// English covers exports made with the English UI.
var English = PatternSet{
	Name: "en",
	CallKeywords: []string{
		"call duration", "call ended", "call started", "missed call", "canceled",
		"no answer", "video call", "voice call",
	},
	UnsentPhrases:   []string{"unsent a message"},
	ReactionPhrases: []string{"reacted to a message"},
	MembershipPhrases: []string{
		"left the group", "joined the group", "was invited", "was removed",
		"changed the group name", "changed the group icon",
	},
	CollectionKeywords: []string{"album", "note", "event"},
	SecurityPhrases:    []string{"messages and calls are encrypted", "letter sealing", "end-to-end encryption"},
	MissedCallPhrases:  []string{"missed call"},
	Durations: []durationPattern{
		{re: regexp.MustCompile(`(?i)(?:☎\s*)?call duration\s*(\d+):(\d{1,2}):(\d{1,2})`), shape: shapeHMS},
		{re: regexp.MustCompile(`(?i)(?:☎\s*)?call duration\s*(\d+):(\d{1,2})`), shape: shapeMS},
		{re: regexp.MustCompile(`(?i)(?:☎\s*)?call duration\s*(\d+)\s*(seconds?|secs?|minutes?|mins?)`), shape: shapeUnit},
	},
	Media: []mediaToken{
		{"[sticker]", Sticker},
		{"[photo]", Photo},
		{"[image]", Photo},
		{"[video]", Video},
		{"[file]", File},
		{"[contact]", Contact},
		{"[location]", Location},
		{"[voice message]", Voice},
	},
	MorningGreeting: regexp.MustCompile(`(?i)^(good\s*morning|morning|gm)\b`),
	NightGreeting:   regexp.MustCompile(`(?i)^(good\s*night|nighty\s*night|night\s*night|gn)\b`),
}

// DefaultLocales is the order predicates consult pattern sets in.
var DefaultLocales = []PatternSet{Japanese, English}
