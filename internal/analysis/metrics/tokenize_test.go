package metrics

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		body string
		want []string
	}{
		{"ラーメン 食べたい", []string{"ラーメン", "食べたい"}},
		{"Niceです", []string{"Nice"}},
		{"見て https://example.com/path ここ", []string{"見て", "ここ"}},
		{"(heart)大好き(heart)", []string{"大好き"}},
		{"[写真] 旅行", []string{"旅行"}},
		{":smile: 楽しい😂", []string{"楽しい"}},
		{"12345 12:30 heart lol", nil},
		{"これはとても長い単語になってしまった", nil},
		{"mail me at foo@example.com", []string{"mail", "at"}},
	}

	for _, tc := range cases {
		got := Tokenize(tc.body)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Tokenize(%q): expected %v, got %v", tc.body, tc.want, got)
		}
	}
}

func TestIsLink(t *testing.T) {
	for _, w := range []string{"https", "www", "com", "example.com", "bit.ly", "foo@bar.jp"} {
		if !isLink(w) {
			t.Fatalf("expected %q to look like a link", w)
		}
	}
	if isLink("ラーメン") {
		t.Fatalf("ラーメン is not a link")
	}
}
