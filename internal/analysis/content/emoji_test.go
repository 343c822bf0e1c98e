package content

import "testing"

func TestIsEmojiOnly(t *testing.T) {
	cases := []struct {
		body string
		want bool
	}{
		{"😂", true},
		{"😂😂 ", true},
		{"❤️", true},
		{"👨‍👩‍👧", true},
		{"😂w", false},
		{"", false},
		{"\uFE0F", false},
	}

	for _, tc := range cases {
		if got := IsEmojiOnly(tc.body); got != tc.want {
			t.Fatalf("IsEmojiOnly(%q): expected %v, got %v", tc.body, tc.want, got)
		}
	}
}

func TestForceEmojiStyle(t *testing.T) {
	if got := ForceEmojiStyle("\u2764"); got != "\u2764\uFE0F" {
		t.Fatalf("expected selector appended, got %q", got)
	}
	if got := ForceEmojiStyle("\u2764\uFE0F"); got != "\u2764\uFE0F" {
		t.Fatalf("expected existing selector kept once, got %q", got)
	}
	if got := ForceEmojiStyle("😀"); got != "😀" {
		t.Fatalf("expected pictograph untouched, got %q", got)
	}
}

func TestStripDecorationsIdempotent(t *testing.T) {
	inputs := []string{
		"(heart)大好き(star)",
		"((heart)heart)",
		"(Moon)(moon) night",
		"no decoration here",
	}
	for _, in := range inputs {
		once := StripDecorations(in)
		twice := StripDecorations(once)
		if once != twice {
			t.Fatalf("expected idempotent strip for %q, got %q then %q", in, once, twice)
		}
		if IsDecoration(once) {
			t.Fatalf("expected no decoration left in %q", once)
		}
	}
	if !IsDecoration("(lantern)") {
		t.Fatalf("expected lantern decoration to be recognized")
	}
}
