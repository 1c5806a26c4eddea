package crawler

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang-broker-scryper/pkg/utils"

	"github.com/PuerkitoBio/goquery"
)

// glyphDataDate labels the as-of date on ranking pages.
const glyphDataDate = "資料日期："

var summaryDatePattern = regexp.MustCompile(`\d{4}/\d{1,2}/\d{1,2}`)

// ResolvedDate is the as-of date of a scraped page. Fallback marks dates
// substituted with "now" because the on-page label was missing, so callers
// can tell a trusted date from a best-effort one.
type ResolvedDate struct {
	Value    string
	Fallback bool
}

// resolveRankingDate extracts the as-of date from the ranking page's marker
// element. A missing marker or label falls back to the current date.
func resolveRankingDate(table *goquery.Selection) ResolvedDate {
	text := table.Find("tr").First().Find("div.t11").Text()
	if idx := strings.Index(text, glyphDataDate); idx >= 0 {
		return ResolvedDate{Value: strings.TrimSpace(text[idx+len(glyphDataDate):])}
	}
	return ResolvedDate{Value: utils.TimeNowTaipei().Format("2006-01-02"), Fallback: true}
}

// resolveSummaryDate extracts a YYYY/M/D-shaped date from the summary page's
// marker element and normalizes the separators. Digits keep the widths the
// source provides.
func resolveSummaryDate(doc *goquery.Document) ResolvedDate {
	text := doc.Find("div.t11").Text()
	if m := summaryDatePattern.FindString(text); m != "" {
		return ResolvedDate{Value: strings.ReplaceAll(m, "/", "-")}
	}
	return ResolvedDate{Value: utils.TimeNowTaipei().Format("2006-01-02"), Fallback: true}
}

// ParseRecordDate parses the date shapes the source emits: YYYY-MM-DD,
// YYYY/MM/DD and compact YYYYMMDD. Anything else is an error, never a
// default.
func ParseRecordDate(s string) (time.Time, error) {
	clean := strings.TrimSpace(strings.ReplaceAll(s, "/", "-"))
	layout := "20060102"
	if strings.Contains(clean, "-") {
		layout = "2006-01-02"
	}
	t, err := time.Parse(layout, clean)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable record date %q: %w", s, err)
	}
	return t, nil
}

// PreviousWorkdaysRange steps backward from the given date one calendar day
// at a time, counting only Monday through Friday, until numWorkdays are
// consumed, and returns "<start>~<dateStr>" in the input's format. Invalid
// input yields an explicit sentinel instead of an error.
func PreviousWorkdaysRange(dateStr string, numWorkdays int) string {
	if dateStr == "" {
		return "Unknown Range"
	}

	layout := "20060102"
	if strings.Contains(dateStr, "-") {
		layout = "2006-01-02"
	}

	date, err := time.Parse(layout, dateStr)
	if err != nil {
		return fmt.Sprintf("Invalid Date~%s", dateStr)
	}

	workdaysFound := 0
	current := date
	for workdaysFound < numWorkdays {
		current = current.AddDate(0, 0, -1)
		if wd := current.Weekday(); wd != time.Saturday && wd != time.Sunday {
			workdaysFound++
		}
	}

	return fmt.Sprintf("%s~%s", current.Format(layout), dateStr)
}
