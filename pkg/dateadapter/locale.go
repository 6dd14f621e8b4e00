package dateadapter

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// ErrInvalidLocale indicates a locale tag that is malformed or has no
// name table.
var ErrInvalidLocale = errors.New("invalid locale")

// Locale carries the language tag, the first day of the week and the
// name table used for month and weekday names.
type Locale struct {
	tag       language.Tag
	names     monday.Locale
	weekStart time.Weekday
}

// name tables available for matching; the first entry is the fallback
var supported = []struct {
	tag   language.Tag
	names monday.Locale
}{
	{language.AmericanEnglish, monday.Locale("en_US")},
	{language.BritishEnglish, monday.Locale("en_GB")},
	{language.MustParse("es-ES"), monday.Locale("es_ES")},
	{language.MustParse("ca-ES"), monday.Locale("ca_ES")},
	{language.MustParse("fr-FR"), monday.Locale("fr_FR")},
	{language.MustParse("fr-CA"), monday.Locale("fr_CA")},
	{language.MustParse("de-DE"), monday.Locale("de_DE")},
	{language.MustParse("it-IT"), monday.Locale("it_IT")},
	{language.MustParse("pt-PT"), monday.Locale("pt_PT")},
	{language.MustParse("pt-BR"), monday.Locale("pt_BR")},
	{language.MustParse("nl-NL"), monday.Locale("nl_NL")},
	{language.MustParse("da-DK"), monday.Locale("da_DK")},
	{language.MustParse("sv-SE"), monday.Locale("sv_SE")},
	{language.MustParse("nb-NO"), monday.Locale("nb_NO")},
	{language.MustParse("fi-FI"), monday.Locale("fi_FI")},
	{language.MustParse("pl-PL"), monday.Locale("pl_PL")},
	{language.MustParse("cs-CZ"), monday.Locale("cs_CZ")},
	{language.MustParse("hu-HU"), monday.Locale("hu_HU")},
	{language.MustParse("ro-RO"), monday.Locale("ro_RO")},
	{language.MustParse("bg-BG"), monday.Locale("bg_BG")},
	{language.MustParse("ru-RU"), monday.Locale("ru_RU")},
	{language.MustParse("uk-UA"), monday.Locale("uk_UA")},
	{language.MustParse("tr-TR"), monday.Locale("tr_TR")},
	{language.MustParse("ja-JP"), monday.Locale("ja_JP")},
	{language.MustParse("ko-KR"), monday.Locale("ko_KR")},
	{language.MustParse("zh-CN"), monday.Locale("zh_CN")},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	return language.NewMatcher(tags)
}()

// Regions whose weeks start on Sunday or Saturday (CLDR weekData);
// everything else starts on Monday.
var (
	sundayRegions = map[string]bool{
		"AG": true, "AS": true, "AU": true, "BD": true, "BR": true, "BS": true, "BT": true,
		"BW": true, "BZ": true, "CA": true, "CN": true, "CO": true, "DM": true, "DO": true,
		"ET": true, "GT": true, "GU": true, "HK": true, "HN": true, "ID": true, "IL": true,
		"IN": true, "JM": true, "JP": true, "KE": true, "KH": true, "KR": true, "LA": true,
		"MH": true, "MM": true, "MO": true, "MT": true, "MX": true, "MZ": true, "NI": true,
		"NP": true, "PA": true, "PE": true, "PH": true, "PK": true, "PR": true, "PT": true,
		"PY": true, "SA": true, "SG": true, "SV": true, "TH": true, "TT": true, "TW": true,
		"UM": true, "US": true, "VE": true, "VI": true, "WS": true, "YE": true, "ZA": true,
		"ZW": true,
	}
	saturdayRegions = map[string]bool{
		"AE": true, "AF": true, "BH": true, "DJ": true, "DZ": true, "EG": true, "IQ": true,
		"IR": true, "JO": true, "KW": true, "LY": true, "OM": true, "QA": true, "SD": true,
		"SY": true,
	}
)

// EnUS is the default locale: English names, weeks starting on Sunday.
var EnUS = MustParseLocale("en-US")

// ParseLocale resolves a BCP 47 tag such as "es" or "pt-BR". The first
// day of the week follows the tag's region, inferred when absent.
func ParseLocale(s string) (*Locale, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, s, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return nil, fmt.Errorf("%w: no names for %q", ErrInvalidLocale, s)
	}

	region, _ := tag.Region()
	return &Locale{
		tag:       tag,
		names:     supported[idx].names,
		weekStart: weekStartFor(region.String()),
	}, nil
}

// MustParseLocale is like ParseLocale but panics on error.
func MustParseLocale(s string) *Locale {
	l, err := ParseLocale(s)
	if err != nil {
		panic(err)
	}
	return l
}

func weekStartFor(region string) time.Weekday {
	switch {
	case sundayRegions[region]:
		return time.Sunday
	case saturdayRegions[region]:
		return time.Saturday
	default:
		return time.Monday
	}
}

// WithWeekStart returns a copy of l whose weeks begin on day.
func (l *Locale) WithWeekStart(day time.Weekday) *Locale {
	c := *l
	c.weekStart = day
	return &c
}

// Tag returns the language tag the locale was parsed from.
func (l *Locale) Tag() language.Tag { return l.tag }

// WeekStart returns the first day of the week.
func (l *Locale) WeekStart() time.Weekday { return l.weekStart }

func (l *Locale) String() string { return l.tag.String() }
