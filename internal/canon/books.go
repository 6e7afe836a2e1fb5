// Package canon holds the fixed 66-book catalog the indexer walks. Chapter
// and verse counts follow the standard Protestant versification and are used
// for progress display and pacing, not for parsing.
package canon

import (
	"fmt"
	"strings"

	"github.com/lumen-scripture-index/internal/models"
)

// Book is one catalog entry.
type Book struct {
	Code      string
	Name      string
	Testament models.Testament
	Genre     models.Genre
	Chapters  int
	Verses    int
	Description string
	Themes      []string
}

// ChapterTheme returns the chapter-level theme line stored with every verse
// of the chapter and fed to the contextual builder. Deterministic.
func (b Book) ChapterTheme(chapter int) string {
	return fmt.Sprintf("%s chapter %d — %s", b.Name, chapter, strings.Join(b.Themes, ", "))
}

// ChapterID returns the provider identifier for a chapter, e.g. "GEN.3".
func (b Book) ChapterID(chapter int) string {
	return fmt.Sprintf("%s.%d", b.Code, chapter)
}

// VerseReference returns the canonical verse id, e.g. "GEN.1.1".
func (b Book) VerseReference(chapter, verse int) string {
	return fmt.Sprintf("%s.%d.%d", b.Code, chapter, verse)
}

// ByCode looks a book up by its catalog code.
func ByCode(code string) (Book, bool) {
	for _, b := range Books {
		if b.Code == code {
			return b, true
		}
	}
	return Book{}, false
}

// Books lists the catalog in canonical order.
var Books = []Book{
	{Code: "GEN", Name: "Genesis", Testament: models.TestamentOld, Genre: models.GenreLaw, Chapters: 50, Verses: 1533,
		Description: "the book of beginnings, recounting creation, the fall, the flood, and the patriarchs",
		Themes:      []string{"creation", "covenant", "promise"}},
	{Code: "EXO", Name: "Exodus", Testament: models.TestamentOld, Genre: models.GenreLaw, Chapters: 40, Verses: 1213,
		Description: "the deliverance of Israel from Egypt and the giving of the law at Sinai",
		Themes:      []string{"deliverance", "law", "presence of God"}},
	{Code: "LEV", Name: "Leviticus", Testament: models.TestamentOld, Genre: models.GenreLaw, Chapters: 27, Verses: 859,
		Description: "the priestly code of sacrifice, purity, and holiness",
		Themes:      []string{"holiness", "sacrifice", "atonement"}},
	{Code: "NUM", Name: "Numbers", Testament: models.TestamentOld, Genre: models.GenreLaw, Chapters: 36, Verses: 1288,
		Description: "Israel's wilderness wanderings between Sinai and the promised land",
		Themes:      []string{"wilderness", "faithfulness", "judgment"}},
	{Code: "DEU", Name: "Deuteronomy", Testament: models.TestamentOld, Genre: models.GenreLaw, Chapters: 34, Verses: 959,
		Description: "Moses' farewell sermons restating the covenant before entry into Canaan",
		Themes:      []string{"covenant renewal", "obedience", "love of God"}},
	{Code: "JOS", Name: "Joshua", Testament: models.TestamentOld, Genre: models.GenreHistory, Chapters: 24, Verses: 658,
		Description: "the conquest and division of the promised land",
		Themes:      []string{"promise fulfilled", "courage", "inheritance"}},
	{Code: "JDG", Name: "Judges", Testament: models.TestamentOld, Genre: models.GenreHistory, Chapters: 21, Verses: 618,
		Description: "cycles of apostasy, oppression, and deliverance under Israel's judges",
		Themes:      []string{"apostasy", "deliverance", "kingship anticipated"}},
	{Code: "RUT", Name: "Ruth", Testament: models.TestamentOld, Genre: models.GenreHistory, Chapters: 4, Verses: 85,
		Description: "a Moabite widow's loyalty and her redemption into the line of David",
		Themes:      []string{"loyalty", "redemption", "providence"}},
	{Code: "1SA", Name: "1 Samuel", Testament: models.TestamentOld, Genre: models.GenreHistory, Chapters: 31, Verses: 810,
		Description: "the rise of the monarchy from Samuel to Saul to David",
		Themes:      []string{"kingship", "obedience", "anointing"}},
	{Code: "2SA", Name: "2 Samuel", Testament: models.TestamentOld, Genre: models.GenreHistory, Chapters: 24, Verses: 695,
		Description: "David's reign, triumphs, and failures",
		Themes:      []string{"davidic covenant", "sin and consequence", "mercy"}},
	{Code: "1KI", Name: "1 Kings", Testament: models.TestamentOld, Genre: models.GenreHistory, Chapters: 22, Verses: 816,
		Description: "Solomon's glory, the divided kingdom, and the prophet Elijah",
		Themes:      []string{"wisdom", "idolatry", "prophetic word"}},
	{Code: "2KI", Name: "2 Kings", Testament: models.TestamentOld, Genre: models.GenreHistory, Chapters: 25, Verses: 719,
		Description: "the decline of Israel and Judah ending in exile",
		Themes:      []string{"judgment", "exile", "remnant"}},
	{Code: "1CH", Name: "1 Chronicles", Testament: models.TestamentOld, Genre: models.GenreHistory, Chapters: 29, Verses: 942,
		Description: "Israel's history retold with a focus on David and temple worship",
		Themes:      []string{"worship", "davidic line", "heritage"}},
	{Code: "2CH", Name: "2 Chronicles", Testament: models.TestamentOld, Genre: models.GenreHistory, Chapters: 36, Verses: 822,
		Description: "the kings of Judah from Solomon to the exile and the hope of return",
		Themes:      []string{"temple", "revival", "restoration"}},
	{Code: "EZR", Name: "Ezra", Testament: models.TestamentOld, Genre: models.GenreHistory, Chapters: 10, Verses: 280,
		Description: "the return from exile and the rebuilding of the temple",
		Themes:      []string{"return", "rebuilding", "covenant renewal"}},
	{Code: "NEH", Name: "Nehemiah", Testament: models.TestamentOld, Genre: models.GenreHistory, Chapters: 13, Verses: 406,
		Description: "the rebuilding of Jerusalem's walls and the renewal of the people",
		Themes:      []string{"leadership", "prayer", "perseverance"}},
	{Code: "EST", Name: "Esther", Testament: models.TestamentOld, Genre: models.GenreHistory, Chapters: 10, Verses: 167,
		Description: "a Jewish queen's courage preserving her people in Persia",
		Themes:      []string{"providence", "courage", "deliverance"}},
	{Code: "JOB", Name: "Job", Testament: models.TestamentOld, Genre: models.GenreWisdom, Chapters: 42, Verses: 1070,
		Description: "a righteous sufferer wrestling with the justice of God",
		Themes:      []string{"suffering", "sovereignty of God", "faith tested"}},
	{Code: "PSA", Name: "Psalms", Testament: models.TestamentOld, Genre: models.GenreWisdom, Chapters: 150, Verses: 2461,
		Description: "Israel's hymnbook of praise, lament, and trust",
		Themes:      []string{"praise", "lament", "trust"}},
	{Code: "PRO", Name: "Proverbs", Testament: models.TestamentOld, Genre: models.GenreWisdom, Chapters: 31, Verses: 915,
		Description: "practical wisdom for living in the fear of the Lord",
		Themes:      []string{"wisdom", "discipline", "fear of the Lord"}},
	{Code: "ECC", Name: "Ecclesiastes", Testament: models.TestamentOld, Genre: models.GenreWisdom, Chapters: 12, Verses: 222,
		Description: "a searching reflection on meaning under the sun",
		Themes:      []string{"vanity", "meaning", "reverence"}},
	{Code: "SNG", Name: "Song of Solomon", Testament: models.TestamentOld, Genre: models.GenreWisdom, Chapters: 8, Verses: 117,
		Description: "a celebration of love between bride and bridegroom",
		Themes:      []string{"love", "devotion", "delight"}},
	{Code: "ISA", Name: "Isaiah", Testament: models.TestamentOld, Genre: models.GenreProphecy, Chapters: 66, Verses: 1292,
		Description: "judgment and comfort, with the promise of the suffering servant",
		Themes:      []string{"holiness", "messianic hope", "comfort"}},
	{Code: "JER", Name: "Jeremiah", Testament: models.TestamentOld, Genre: models.GenreProphecy, Chapters: 52, Verses: 1364,
		Description: "the weeping prophet's warnings before Jerusalem's fall and the promise of a new covenant",
		Themes:      []string{"judgment", "new covenant", "faithfulness of God"}},
	{Code: "LAM", Name: "Lamentations", Testament: models.TestamentOld, Genre: models.GenreProphecy, Chapters: 5, Verses: 154,
		Description: "funeral songs over the ruins of Jerusalem",
		Themes:      []string{"grief", "steadfast love", "hope"}},
	{Code: "EZK", Name: "Ezekiel", Testament: models.TestamentOld, Genre: models.GenreProphecy, Chapters: 48, Verses: 1273,
		Description: "visions of glory, judgment, and restoration among the exiles",
		Themes:      []string{"glory of God", "restoration", "new heart"}},
	{Code: "DAN", Name: "Daniel", Testament: models.TestamentOld, Genre: models.GenreProphecy, Chapters: 12, Verses: 357,
		Description: "faithfulness in exile and visions of God's everlasting kingdom",
		Themes:      []string{"sovereignty", "faithfulness", "kingdom of God"}},
	{Code: "HOS", Name: "Hosea", Testament: models.TestamentOld, Genre: models.GenreProphecy, Chapters: 14, Verses: 197,
		Description: "God's covenant love pictured through a prophet's broken marriage",
		Themes:      []string{"covenant love", "unfaithfulness", "restoration"}},
	{Code: "JOL", Name: "Joel", Testament: models.TestamentOld, Genre: models.GenreProphecy, Chapters: 3, Verses: 73,
		Description: "a locust plague heralding the day of the Lord and the outpouring of the Spirit",
		Themes:      []string{"day of the Lord", "repentance", "the Spirit"}},
	{Code: "AMO", Name: "Amos", Testament: models.TestamentOld, Genre: models.GenreProphecy, Chapters: 9, Verses: 146,
		Description: "a shepherd's call for justice to roll down like waters",
		Themes:      []string{"justice", "judgment", "restoration"}},
	{Code: "OBA", Name: "Obadiah", Testament: models.TestamentOld, Genre: models.GenreProphecy, Chapters: 1, Verses: 21,
		Description: "judgment on Edom for violence against a brother nation",
		Themes:      []string{"pride", "judgment", "the Lord's kingdom"}},
	{Code: "JON", Name: "Jonah", Testament: models.TestamentOld, Genre: models.GenreProphecy, Chapters: 4, Verses: 48,
		Description: "a reluctant prophet and God's compassion on Nineveh",
		Themes:      []string{"mercy", "repentance", "mission"}},
	{Code: "MIC", Name: "Micah", Testament: models.TestamentOld, Genre: models.GenreProphecy, Chapters: 7, Verses: 105,
		Description: "doing justice, loving mercy, and walking humbly with God",
		Themes:      []string{"justice", "humility", "messianic hope"}},
	{Code: "NAM", Name: "Nahum", Testament: models.TestamentOld, Genre: models.GenreProphecy, Chapters: 3, Verses: 47,
		Description: "the fall of Nineveh and the goodness of God as refuge",
		Themes:      []string{"judgment", "refuge", "justice of God"}},
	{Code: "HAB", Name: "Habakkuk", Testament: models.TestamentOld, Genre: models.GenreProphecy, Chapters: 3, Verses: 56,
		Description: "a prophet's questions answered: the righteous shall live by faith",
		Themes:      []string{"faith", "questioning", "trust"}},
	{Code: "ZEP", Name: "Zephaniah", Testament: models.TestamentOld, Genre: models.GenreProphecy, Chapters: 3, Verses: 53,
		Description: "the great day of the Lord and rejoicing over a restored remnant",
		Themes:      []string{"day of the Lord", "remnant", "rejoicing"}},
	{Code: "HAG", Name: "Haggai", Testament: models.TestamentOld, Genre: models.GenreProphecy, Chapters: 2, Verses: 38,
		Description: "a call to rebuild the temple and consider your ways",
		Themes:      []string{"priorities", "rebuilding", "presence of God"}},
	{Code: "ZEC", Name: "Zechariah", Testament: models.TestamentOld, Genre: models.GenreProphecy, Chapters: 14, Verses: 211,
		Description: "night visions and promises of the coming king",
		Themes:      []string{"restoration", "messianic hope", "the Spirit"}},
	{Code: "MAL", Name: "Malachi", Testament: models.TestamentOld, Genre: models.GenreProphecy, Chapters: 4, Verses: 55,
		Description: "a final dispute over half-hearted worship before the forerunner comes",
		Themes:      []string{"honor of God", "covenant", "the coming messenger"}},
	{Code: "MAT", Name: "Matthew", Testament: models.TestamentNew, Genre: models.GenreGospel, Chapters: 28, Verses: 1071,
		Description: "Jesus the promised Messiah and king, fulfilling the scriptures",
		Themes:      []string{"kingdom of heaven", "fulfillment", "discipleship"}},
	{Code: "MRK", Name: "Mark", Testament: models.TestamentNew, Genre: models.GenreGospel, Chapters: 16, Verses: 678,
		Description: "the servant Son of God, presented in swift and vivid scenes",
		Themes:      []string{"servanthood", "the cross", "faith"}},
	{Code: "LUK", Name: "Luke", Testament: models.TestamentNew, Genre: models.GenreGospel, Chapters: 24, Verses: 1151,
		Description: "an ordered account of the Savior who seeks the lost",
		Themes:      []string{"salvation", "compassion", "prayer"}},
	{Code: "JHN", Name: "John", Testament: models.TestamentNew, Genre: models.GenreGospel, Chapters: 21, Verses: 879,
		Description: "the Word made flesh, written that you may believe",
		Themes:      []string{"belief", "eternal life", "love"}},
	{Code: "ACT", Name: "Acts", Testament: models.TestamentNew, Genre: models.GenreHistory, Chapters: 28, Verses: 1007,
		Description: "the Spirit-empowered spread of the gospel from Jerusalem to Rome",
		Themes:      []string{"the Spirit", "witness", "the church"}},
	{Code: "ROM", Name: "Romans", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 16, Verses: 433,
		Description: "Paul's fullest account of the gospel of righteousness by faith",
		Themes:      []string{"justification", "grace", "life in the Spirit"}},
	{Code: "1CO", Name: "1 Corinthians", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 16, Verses: 437,
		Description: "correction and counsel for a divided church, crowned by the way of love",
		Themes:      []string{"unity", "love", "resurrection"}},
	{Code: "2CO", Name: "2 Corinthians", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 13, Verses: 257,
		Description: "Paul's defense of his ministry: treasure in jars of clay",
		Themes:      []string{"weakness", "comfort", "reconciliation"}},
	{Code: "GAL", Name: "Galatians", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 6, Verses: 149,
		Description: "freedom in Christ against a gospel of works",
		Themes:      []string{"freedom", "faith", "fruit of the Spirit"}},
	{Code: "EPH", Name: "Ephesians", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 6, Verses: 155,
		Description: "the church as Christ's body, seated with him in the heavenly places",
		Themes:      []string{"grace", "unity", "spiritual armor"}},
	{Code: "PHP", Name: "Philippians", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 4, Verses: 104,
		Description: "joy in Christ from a Roman prison",
		Themes:      []string{"joy", "humility", "contentment"}},
	{Code: "COL", Name: "Colossians", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 4, Verses: 95,
		Description: "the supremacy of Christ over every power and philosophy",
		Themes:      []string{"preeminence of Christ", "fullness", "new life"}},
	{Code: "1TH", Name: "1 Thessalonians", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 5, Verses: 89,
		Description: "encouragement for a young church awaiting the Lord's return",
		Themes:      []string{"hope", "holiness", "the Lord's return"}},
	{Code: "2TH", Name: "2 Thessalonians", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 3, Verses: 47,
		Description: "steadiness amid persecution and confusion about the day of the Lord",
		Themes:      []string{"perseverance", "judgment", "steadfastness"}},
	{Code: "1TI", Name: "1 Timothy", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 6, Verses: 113,
		Description: "instructions for ordering the household of God",
		Themes:      []string{"sound doctrine", "godliness", "leadership"}},
	{Code: "2TI", Name: "2 Timothy", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 4, Verses: 83,
		Description: "Paul's final charge: guard the gospel, finish the race",
		Themes:      []string{"endurance", "scripture", "faithfulness"}},
	{Code: "TIT", Name: "Titus", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 3, Verses: 46,
		Description: "sound doctrine adorned by good works in Crete",
		Themes:      []string{"good works", "grace that trains", "order"}},
	{Code: "PHM", Name: "Philemon", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 1, Verses: 25,
		Description: "a personal appeal to receive a runaway slave as a brother",
		Themes:      []string{"forgiveness", "brotherhood", "appeal of love"}},
	{Code: "HEB", Name: "Hebrews", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 13, Verses: 303,
		Description: "Christ the better priest, sacrifice, and covenant",
		Themes:      []string{"supremacy of Christ", "faith", "perseverance"}},
	{Code: "JAS", Name: "James", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 5, Verses: 108,
		Description: "wisdom for a living faith that works",
		Themes:      []string{"faith and works", "the tongue", "patience"}},
	{Code: "1PE", Name: "1 Peter", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 5, Verses: 105,
		Description: "hope for exiles suffering for doing good",
		Themes:      []string{"living hope", "suffering", "holiness"}},
	{Code: "2PE", Name: "2 Peter", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 3, Verses: 61,
		Description: "growth in knowledge against false teachers, awaiting a new creation",
		Themes:      []string{"knowledge", "false teaching", "the day of the Lord"}},
	{Code: "1JN", Name: "1 John", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 5, Verses: 105,
		Description: "tests of life: walking in light, love, and truth",
		Themes:      []string{"love", "light", "assurance"}},
	{Code: "2JN", Name: "2 John", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 1, Verses: 13,
		Description: "walking in truth and love, and refusing false teachers",
		Themes:      []string{"truth", "love", "discernment"}},
	{Code: "3JN", Name: "3 John", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 1, Verses: 14,
		Description: "hospitality toward faithful workers in the truth",
		Themes:      []string{"hospitality", "truth", "imitation of good"}},
	{Code: "JUD", Name: "Jude", Testament: models.TestamentNew, Genre: models.GenreEpistle, Chapters: 1, Verses: 25,
		Description: "contend for the faith once for all delivered to the saints",
		Themes:      []string{"contending", "mercy", "kept by God"}},
	{Code: "REV", Name: "Revelation", Testament: models.TestamentNew, Genre: models.GenreApocalyptic, Chapters: 22, Verses: 404,
		Description: "the unveiling of Jesus Christ and the final triumph of God",
		Themes:      []string{"victory", "worship", "new creation"}},
}
