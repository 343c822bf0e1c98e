package relationship

// Balance is the message-volume axis.
type Balance string

// Tempo is the reply-speed axis.
type Tempo string

// Expression is the message-style axis.
type Expression string

const (
	Equal Balance = "equal"
	Bias  Balance = "bias"

	HighSpeed Tempo = "highSpeed"
	Leisurely Tempo = "leisurely"

	Story     Expression = "story"
	Resonance Expression = "resonance"
	Peace     Expression = "peace"
)

// EggKey is the category for transcripts with too few messages to judge.
const EggKey = "egg"

// Key builds the category key for a judgment triple.
func Key(b Balance, t Tempo, e Expression) string {
	return string(b) + "_" + string(t) + "_" + string(e)
}

// Type describes one relationship category shown to users.
// DetailedDescription contains {user1} and {user2} placeholders.
type Type struct {
	Key                 string `json:"key"`
	Name                string `json:"name"`
	Emoji               string `json:"emoji"`
	Description         string `json:"description"`
	DetailedDescription string `json:"detailedDescription"`
	Image               string `json:"image"`
}

// Judgments are the three axis outcomes.
type Judgments struct {
	Balance    Balance    `json:"balance,omitempty"`
	Tempo      Tempo      `json:"tempo,omitempty"`
	Expression Expression `json:"expression,omitempty"`
}

// VerdictMetrics are the rounded values the judgments were made from.
type VerdictMetrics struct {
	BalanceRate        float64 `json:"balanceRate"`
	HighSpeedReplyRate float64 `json:"highSpeedReplyRate"`
	AvgReplyMinutes    int     `json:"avgReplyMinutes"`
	AvgCharCount       float64 `json:"avgCharCount"`
	MediaRate          float64 `json:"mediaRate"`
}

// RawStats are the unrounded counters behind VerdictMetrics.
type RawStats struct {
	TotalMessages   int `json:"totalMessages"`
	UserAChars      int `json:"userAChars"`
	UserBChars      int `json:"userBChars"`
	TotalMediaCount int `json:"totalMediaCount"`
	ValidReplyCount int `json:"validReplyCount"`
	CallCount       int `json:"callCount"`
	StickerCount    int `json:"stickerCount"`
}

// Verdict is the classifier output with participant names already substituted.
type Verdict struct {
	Type
	Judgments Judgments      `json:"judgments"`
	Metrics   VerdictMetrics `json:"metrics"`
	RawStats  RawStats       `json:"rawStats"`
	Reason    string         `json:"reason"`
}
