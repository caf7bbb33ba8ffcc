package scan

import "regexp"

const (
	monthsEN = `(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`
	monthsRU = `(января|февраля|марта|апреля|мая|июня|июля|августа|сентября|октября|ноября|декабря)`
	// RE2 word boundaries are ASCII only.
	endRU = `(?:\P{L}|$)`
)

// Rules is the default table. Within a kind, earlier rows win.
var Rules = []Rule{
	{"cycle_day_tag", KindCycleDay, LocaleAny,
		regexp.MustCompile(`(?i)\[(?:CYCLE_DAY|ДЕНЬ_ЦИКЛА):\s*(\d{1,2})\s*\]`), number(1)},

	{"conception_tag", KindConception, LocaleAny,
		regexp.MustCompile(`(?i)\[\s*(?:CONCEPTION_CHECK|ПРОВЕРКА_ЗАЧАТИЯ)\s*\]`), flag},
	{"conception_comment", KindConception, LocaleAny,
		regexp.MustCompile(`(?i)<!--\s*\[?\s*(?:CONCEPTION_CHECK|ПРОВЕРКА_ЗАЧАТИЯ)\s*\]?\s*-->`), flag},

	{"sti_tag", KindSTI, LocaleAny,
		regexp.MustCompile(`(?i)\[(?:STI_CHECK|ПРОВЕРКА_ИППП):\s*([^\]:]+?)\s*(?::\s*(condom|презерватив)\s*)?\]`), partner},

	{"date_iso", KindDate, LocaleAny,
		regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`), date(3, 2, 1)},
	{"date_en_dmy", KindDate, LocaleEN,
		regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?` + monthsEN + `\.?,?\s+(\d{4})\b`), date(1, 2, 3)},
	{"date_en_mdy", KindDate, LocaleEN,
		regexp.MustCompile(`(?i)\b` + monthsEN + `\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`), date(2, 1, 3)},
	{"date_ru_dmy", KindDate, LocaleRU,
		regexp.MustCompile(`(?i)(\d{1,2})\s+` + monthsRU + `\s+(\d{4})`), date(1, 2, 3)},
	{"date_ru_numeric", KindDate, LocaleRU,
		regexp.MustCompile(`\b(\d{1,2})\.(\d{1,2})\.(\d{4}|\d{2})\b`), date(1, 2, 3)},
	{"date_en_numeric", KindDate, LocaleEN,
		regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4}|\d{2})\b`), date(2, 1, 3)},

	{"week_en", KindWeek, LocaleEN,
		regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?[\s-]+weeks?[\s-]+(?:pregnant|along|of\s+(?:her\s+|my\s+|the\s+)?(?:pregnancy|gestation))`), number(1)},
	{"week_en_of", KindWeek, LocaleEN,
		regexp.MustCompile(`(?i)\bweek\s+(\d{1,2})\s+of\s+(?:her\s+|my\s+|the\s+)?pregnancy`), number(1)},
	{"week_ru", KindWeek, LocaleRU,
		regexp.MustCompile(`(?i)(\d{1,2})[\s-]*(?:я|й|ая|ой|ей)?\s+недел\p{L}*\s+беременности`), number(1)},
	{"week_ru_term", KindWeek, LocaleRU,
		regexp.MustCompile(`(?i)срок\p{L}*\s+(?:беременности\s+)?(?:[-—]\s*)?(\d{1,2})\s+недел`), number(1)},

	{"triplets_en", KindMultiples, LocaleEN,
		regexp.MustCompile(`(?i)\btriplets\b`), constant(3)},
	{"triplets_ru", KindMultiples, LocaleRU,
		regexp.MustCompile(`(?i)тройн(?:я|ю|ей|ею|и)` + endRU), constant(3)},
	{"twins_en", KindMultiples, LocaleEN,
		regexp.MustCompile(`(?i)\btwins\b`), constant(2)},
	{"twins_ru", KindMultiples, LocaleRU,
		regexp.MustCompile(`(?i)(?:двойн(?:я|ю|ей|ею|и)` + endRU + `|близнец|близняш)`), constant(2)},

	{"birth_en", KindBirth, LocaleEN,
		regexp.MustCompile(`(?i)\b(?:gave birth|giving birth|has given birth|delivered (?:the |a |her )?bab(?:y|ies)|(?:baby|babies|twins|triplets) (?:was|were|is|are) born)\b`), flag},
	{"birth_ru", KindBirth, LocaleRU,
		regexp.MustCompile(`(?i)(?:родила|роды\s+(?:прошли|закончились|завершились)|родил(?:ся|ась|ись)\s+(?:малыш|ребён|ребен|сын|доч|близнец|двойня|тройня))`), flag},

	{"not_pregnant_en", KindNotPregnant, LocaleEN,
		regexp.MustCompile(`(?i)\b(?:(?:not|isn't|is not|no longer|wasn't) pregnant|negative pregnancy test|pregnancy test (?:was|is|came back) negative)\b`), flag},
	{"not_pregnant_ru", KindNotPregnant, LocaleRU,
		regexp.MustCompile(`(?i)(?:не\s+беременна|тест\s+(?:на\s+беременность\s+)?(?:оказался\s+)?отрицательн)`), flag},
}
