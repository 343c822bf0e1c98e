package relationship

const imageBase = "/talklens/"

// Catalog returns the twelve matrix categories followed by egg.
func Catalog() []Type {
	return []Type{
		{
			Key:                 Key(Equal, HighSpeed, Story),
			Name:                "エモ共有タイプ",
			Emoji:               "💞",
			Description:         "言葉の熱量がバグってる。お互い全力で\"伝えたい\"が溢れてる二人",
			DetailedDescription: "{user1}と{user2}は、長文を送り合いながら返信も速い。思ったことをその場で言葉にして、相手も同じ熱量で返してくる。感情の共有そのものが会話の目的になっている関係。",
			Image:               imageBase + "emo.png",
		},
		{
			Key:                 Key(Equal, HighSpeed, Resonance),
			Name:                "リアクション祭りタイプ",
			Emoji:               "🎉",
			Description:         "スタンプと写真が止まらない。ノリだけで会話が成立する奇跡の二人",
			DetailedDescription: "{user1}と{user2}のトークはスタンプと写真で埋まっている。文字が少なくても伝わるのは、同じテンポで反応し合えるから。ノリの一致が二人の共通言語。",
			Image:               imageBase + "reaction.png",
		},
		{
			Key:                 Key(Equal, HighSpeed, Peace),
			Name:                "チルピタイプ",
			Emoji:               "☕",
			Description:         "短い言葉をポンポン投げ合う。一緒にいるみたいに自然なテンポの二人",
			DetailedDescription: "{user1}と{user2}は短いメッセージをすぐに返し合う。内容より間合いが心地いいタイプで、隣に座って話しているような距離感が続いている。",
			Image:               imageBase + "chirupi.png",
		},
		{
			Key:                 Key(Equal, Leisurely, Story),
			Name:                "じっくり文豪タイプ",
			Emoji:               "📖",
			Description:         "返信に時間をかけるのは、ちゃんと考えてるから。言葉の重みが違う二人",
			DetailedDescription: "{user1}と{user2}は返信までに時間をかけ、そのぶん一通が長い。急がないのは相手の言葉を受け止めてから返したいから。手紙のやり取りに近い関係。",
			Image:               imageBase + "bungo.png",
		},
		{
			Key:                 Key(Equal, Leisurely, Resonance),
			Name:                "推し×推されタイプ",
			Emoji:               "⭐",
			Description:         "お互いの\"好き\"を全力で肯定し合う。推し活みたいな関係の二人",
			DetailedDescription: "{user1}と{user2}は自分のペースで写真やスタンプを送り合う。返信が遅くても、届いたものには全力で反応する。お互いがお互いの推しになっている。",
			Image:               imageBase + "oshi.png",
		},
		{
			Key:                 Key(Equal, Leisurely, Peace),
			Name:                "ゆる繋がりタイプ",
			Emoji:               "🌿",
			Description:         "連絡頻度が低くても不安にならない。それだけで最強の二人",
			DetailedDescription: "{user1}と{user2}は短いメッセージをのんびり送り合う。毎日話さなくても関係が揺らがないのは、信頼が先にあるから。",
			Image:               imageBase + "yurutsunagari.png",
		},
		{
			Key:                 Key(Bias, HighSpeed, Story),
			Name:                "ガチ恋タイプ",
			Emoji:               "💘",
			Description:         "想いが溢れて止まらない。情熱がトーク画面を埋め尽くす二人",
			DetailedDescription: "{user1}の長文が画面を埋め、{user2}もすぐに返す。送る量には差があっても、会話が途切れないのは{user2}が受け止め続けているから。",
			Image:               imageBase + "gachikoi.png",
		},
		{
			Key:                 Key(Bias, HighSpeed, Resonance),
			Name:                "リア充全開タイプ",
			Emoji:               "📸",
			Description:         "カメラロールが共有フォルダ状態。日常ダダ漏れな二人",
			DetailedDescription: "{user1}が写真やスタンプで日常を次々に届け、{user2}がテンポよく反応する。見せたい人と見たい人が揃っている。",
			Image:               imageBase + "riaju.png",
		},
		{
			Key:                 Key(Bias, HighSpeed, Peace),
			Name:                "構ってちゃん×塩対応タイプ",
			Emoji:               "🧊",
			Description:         "連投に「うん」で返す。この温度差、逆に愛おしい二人",
			DetailedDescription: "{user1}が連投し、{user2}は短く即レスする。温度差はあっても返信は速い。素っ気なく見えて、{user2}はちゃんと見ている。",
			Image:               imageBase + "kamattechan_shio.png",
		},
		{
			Key:                 Key(Bias, Leisurely, Story),
			Name:                "のんびりメンヘラケアタイプ",
			Emoji:               "🤲",
			Description:         "本音を静かに受け止める。言葉で繋がる安全地帯な二人",
			DetailedDescription: "{user1}が長い本音を送り、{user2}は時間をかけて受け止める。急かさない返信が{user1}にとっての安全地帯になっている。",
			Image:               imageBase + "menhera.png",
		},
		{
			Key:                 Key(Bias, Leisurely, Resonance),
			Name:                "めちゃぱちゃマイペースタイプ",
			Emoji:               "📣",
			Description:         "独自のテンポとノリで繋がる。他の人には理解できない二人だけの世界",
			DetailedDescription: "{user1}がスタンプや写真を思いついた時に投げ、{user2}は自分のタイミングで拾う。噛み合っていないようで、二人の間では成立している。",
			Image:               imageBase + "mypase.png",
		},
		{
			Key:                 Key(Bias, Leisurely, Peace),
			Name:                "聞き役×語り手タイプ",
			Emoji:               "👂",
			Description:         "話す人と聞く人。シンプルだけど心地いい、役割のハッキリした二人",
			DetailedDescription: "{user1}が話し、{user2}が聞く。短いメッセージをゆっくり重ねる関係で、役割が決まっているからこそ気を遣わずにいられる。",
			Image:               imageBase + "kikifekatarite.png",
		},
		{
			Key:                 EggKey,
			Name:                "卵タイプ",
			Emoji:               "🥚",
			Description:         "まだ関係のカタチは見えない。でも、ここから何にでもなれる",
			DetailedDescription: "{user1}と{user2}のトークはまだ始まったばかり。メッセージが増えれば、二人のタイプが見えてくる。",
			Image:               imageBase + "baby.png",
		},
	}
}
