package romaji

// mora is one entry of the mapping table: a kana unit and its romanized form.
type mora struct {
	kana  []rune
	roman string
}

// Geminate markers. They double the initial consonant of the following mora
// instead of being romanized themselves.
const (
	sokuonHiragana = 'っ'
	sokuonKatakana = 'ッ'
)

// danglingGeminate is emitted for a geminate marker that precedes nothing
// mappable.
const danglingGeminate = "tt"

// table lists the kana units in match priority order. A unit that extends
// another unit (きょ extends き, ヴェ extends ヴ) must be listed before it:
// the scanner takes the first entry that matches and never sorts by length.
var table = buildTable([][2]string{
	// hiragana combinations
	{"きゃ", "kya"},
	{"きゅ", "kyu"},
	{"きょ", "kyo"},
	{"しゃ", "sha"},
	{"しゅ", "shu"},
	{"しょ", "sho"},
	{"ちゃ", "cha"},
	{"ちゅ", "chu"},
	{"ちょ", "cho"},
	{"にゃ", "nya"},
	{"にゅ", "nyu"},
	{"にょ", "nyo"},
	{"ひゃ", "hya"},
	{"ひゅ", "hyu"},
	{"ひょ", "hyo"},
	{"みゃ", "mya"},
	{"みゅ", "myu"},
	{"みょ", "myo"},
	{"りゃ", "rya"},
	{"りゅ", "ryu"},
	{"りょ", "ryo"},
	{"ぎゃ", "gya"},
	{"ぎゅ", "gyu"},
	{"ぎょ", "gyo"},
	{"じゃ", "ja"},
	{"じゅ", "ju"},
	{"じょ", "jo"},
	{"びゃ", "bya"},
	{"びゅ", "byu"},
	{"びょ", "byo"},
	{"ぴゃ", "pya"},
	{"ぴゅ", "pyu"},
	{"ぴょ", "pyo"},
	{"でゃ", "dya"},
	{"でゅ", "dyu"},
	{"でょ", "dyo"},
	{"てゃ", "tha"},
	{"てゅ", "thu"},
	{"てょ", "tho"},
	{"ふぁ", "fa"},
	{"ふぃ", "fi"},
	{"ふぇ", "fe"},
	{"ふぉ", "fo"},
	{"うぁ", "wa"},

	// katakana combinations
	{"キャ", "kya"},
	{"キュ", "kyu"},
	{"キョ", "kyo"},
	{"シャ", "sha"},
	{"シュ", "shu"},
	{"ショ", "sho"},
	{"チャ", "cha"},
	{"チュ", "chu"},
	{"チョ", "cho"},
	{"ニャ", "nya"},
	{"ニュ", "nyu"},
	{"ニョ", "nyo"},
	{"ヒャ", "hya"},
	{"ヒュ", "hyu"},
	{"ヒョ", "hyo"},
	{"ミャ", "mya"},
	{"ミュ", "myu"},
	{"ミョ", "myo"},
	{"リャ", "rya"},
	{"リュ", "ryu"},
	{"リョ", "ryo"},
	{"ギャ", "gya"},
	{"ギュ", "gyu"},
	{"ギョ", "gyo"},
	{"ジャ", "ja"},
	{"ジュ", "ju"},
	{"ジョ", "jo"},
	{"ビャ", "bya"},
	{"ビュ", "byu"},
	{"ビョ", "byo"},
	{"ピャ", "pya"},
	{"ピュ", "pyu"},
	{"ピョ", "pyo"},
	{"ファ", "fa"},
	{"フィ", "fi"},
	{"フェ", "fe"},
	{"フォ", "fo"},
	{"ウァ", "wa"},
	{"ティ", "ti"},
	{"ディ", "di"},
	{"デュ", "du"},
	{"ツァ", "tsa"},
	{"ツィ", "tsi"},
	{"ツェ", "tse"},
	{"ツォ", "tso"},
	{"ヴァ", "va"},
	{"ヴィ", "vi"},
	{"ヴェ", "ve"},
	{"ヴォ", "vo"},
	{"ヴ", "vu"},

	// hiragana
	{"あ", "a"},
	{"い", "i"},
	{"う", "u"},
	{"え", "e"},
	{"お", "o"},
	{"か", "ka"},
	{"き", "ki"},
	{"く", "ku"},
	{"け", "ke"},
	{"こ", "ko"},
	{"さ", "sa"},
	{"し", "shi"},
	{"す", "su"},
	{"せ", "se"},
	{"そ", "so"},
	{"た", "ta"},
	{"ち", "chi"},
	{"つ", "tsu"},
	{"て", "te"},
	{"と", "to"},
	{"な", "na"},
	{"に", "ni"},
	{"ぬ", "nu"},
	{"ね", "ne"},
	{"の", "no"},
	{"は", "ha"},
	{"ひ", "hi"},
	{"ふ", "fu"},
	{"へ", "he"},
	{"ほ", "ho"},
	{"ま", "ma"},
	{"み", "mi"},
	{"む", "mu"},
	{"め", "me"},
	{"も", "mo"},
	{"や", "ya"},
	{"ゆ", "yu"},
	{"よ", "yo"},
	{"ら", "ra"},
	{"り", "ri"},
	{"る", "ru"},
	{"れ", "re"},
	{"ろ", "ro"},
	{"わ", "wa"},
	{"を", "wo"},
	{"ん", "n"},
	{"が", "ga"},
	{"ぎ", "gi"},
	{"ぐ", "gu"},
	{"げ", "ge"},
	{"ご", "go"},
	{"ざ", "za"},
	{"じ", "ji"},
	{"ず", "zu"},
	{"ぜ", "ze"},
	{"ぞ", "zo"},
	{"だ", "da"},
	{"ぢ", "ji"},
	{"づ", "zu"},
	{"で", "de"},
	{"ど", "do"},
	{"ば", "ba"},
	{"び", "bi"},
	{"ぶ", "bu"},
	{"べ", "be"},
	{"ぼ", "bo"},
	{"ぱ", "pa"},
	{"ぴ", "pi"},
	{"ぷ", "pu"},
	{"ぺ", "pe"},
	{"ぽ", "po"},
	{"ぁ", "a"},
	{"ぃ", "i"},
	{"ぅ", "u"},
	{"ぇ", "e"},
	{"ぉ", "o"},
	{"ゃ", "ya"},
	{"ゅ", "yu"},
	{"ょ", "yo"},

	// katakana
	{"ア", "a"},
	{"イ", "i"},
	{"ウ", "u"},
	{"エ", "e"},
	{"オ", "o"},
	{"カ", "ka"},
	{"キ", "ki"},
	{"ク", "ku"},
	{"ケ", "ke"},
	{"コ", "ko"},
	{"サ", "sa"},
	{"シ", "shi"},
	{"ス", "su"},
	{"セ", "se"},
	{"ソ", "so"},
	{"タ", "ta"},
	{"チ", "chi"},
	{"ツ", "tsu"},
	{"テ", "te"},
	{"ト", "to"},
	{"ナ", "na"},
	{"ニ", "ni"},
	{"ヌ", "nu"},
	{"ネ", "ne"},
	{"ノ", "no"},
	{"ハ", "ha"},
	{"ヒ", "hi"},
	{"フ", "fu"},
	{"ヘ", "he"},
	{"ホ", "ho"},
	{"マ", "ma"},
	{"ミ", "mi"},
	{"ム", "mu"},
	{"メ", "me"},
	{"モ", "mo"},
	{"ヤ", "ya"},
	{"ユ", "yu"},
	{"ヨ", "yo"},
	{"ラ", "ra"},
	{"リ", "ri"},
	{"ル", "ru"},
	{"レ", "re"},
	{"ロ", "ro"},
	{"ワ", "wa"},
	{"ヲ", "wo"},
	{"ン", "n"},
	{"ガ", "ga"},
	{"ギ", "gi"},
	{"グ", "gu"},
	{"ゲ", "ge"},
	{"ゴ", "go"},
	{"ザ", "za"},
	{"ジ", "ji"},
	{"ズ", "zu"},
	{"ゼ", "ze"},
	{"ゾ", "zo"},
	{"ダ", "da"},
	{"ヂ", "ji"},
	{"ヅ", "zu"},
	{"デ", "de"},
	{"ド", "do"},
	{"バ", "ba"},
	{"ビ", "bi"},
	{"ブ", "bu"},
	{"ベ", "be"},
	{"ボ", "bo"},
	{"パ", "pa"},
	{"ピ", "pi"},
	{"プ", "pu"},
	{"ペ", "pe"},
	{"ポ", "po"},
	{"ァ", "a"},
	{"ィ", "i"},
	{"ゥ", "u"},
	{"ェ", "e"},
	{"ォ", "o"},
	{"ャ", "ya"},
	{"ュ", "yu"},
	{"ョ", "yo"},

	// marks
	{"ー", "-"},
	{"・", " "},
	{"　", " "},
})

func buildTable(pairs [][2]string) []mora {
	out := make([]mora, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, mora{kana: []rune(p[0]), roman: p[1]})
	}
	return out
}

// Pair is an exported view of one mapping table entry.
type Pair struct {
	Kana  string
	Roman string
}

// Table returns a copy of the mapping table in match priority order.
func Table() []Pair {
	out := make([]Pair, len(table))
	for i, m := range table {
		out[i] = Pair{Kana: string(m.kana), Roman: m.roman}
	}
	return out
}
