package crawler

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Glyphs the source uses for headers and footers; rows carrying them are
// layout chrome, not data.
const (
	glyphBrokerHeader = "券商"
	glyphBuyHeader    = "買進"
	glyphSellHeader   = "賣出"
	glyphNetHeader    = "買賣超"
	glyphTotal        = "合計"
	glyphAverage      = "平均"
)

// The two script calls the source embeds. Compiled up front: the map is
// read-only afterwards, so handlers and the cron goroutine can share it.
var callArgsPatterns = map[string]*regexp.Regexp{
	"GenLink2stk": compileCallPattern("GenLink2stk"),
	"GenLink2bkr": compileCallPattern("GenLink2bkr"),
}

func compileCallPattern(callee string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(callee) + `\('([^']+)','([^']+)'\)`)
}

// ExtractCallArgs matches a two-argument script call of the form
// callee('ID','DisplayName') and returns both arguments. The rendered cell
// text can be truncated or stylized, so the script payload is the
// authoritative source for names and codes.
func ExtractCallArgs(text, callee string) (id, name string, ok bool) {
	pattern, found := callArgsPatterns[callee]
	if !found {
		pattern = compileCallPattern(callee)
	}
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// normalizeStockCode strips the market prefix the source prepends to stock
// codes (e.g. AS2330 -> 2330); non-prefixed tokens pass through unchanged.
func normalizeStockCode(raw string) string {
	if strings.HasPrefix(raw, "AS") && len(raw) >= 6 {
		return raw[2:6]
	}
	return raw
}

// parseVolume parses a numeric table cell, tolerating thousands separators
// and surrounding whitespace.
func parseVolume(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("empty numeric cell")
	}
	return strconv.Atoi(s)
}

// parseStockRow extracts a StockRow from one ranking-table row. The row must
// carry a GenLink2stk script payload in its first cell and at least four
// cells; anything else is a spacer or header and is skipped.
func parseStockRow(row *goquery.Selection) (StockRow, bool) {
	script := row.Find("td").First().Find("script")
	if script.Length() == 0 {
		return StockRow{}, false
	}

	rawCode, displayName, ok := ExtractCallArgs(script.Text(), "GenLink2stk")
	if !ok {
		return StockRow{}, false
	}
	code := normalizeStockCode(rawCode)

	tds := row.Find("td")
	if tds.Length() < 4 {
		return StockRow{}, false
	}

	buy, err := parseVolume(tds.Eq(1).Text())
	if err != nil {
		return StockRow{}, false
	}
	sell, err := parseVolume(tds.Eq(2).Text())
	if err != nil {
		return StockRow{}, false
	}
	net, err := parseVolume(tds.Eq(3).Text())
	if err != nil {
		return StockRow{}, false
	}

	if buy == 0 && sell == 0 && net == 0 {
		return StockRow{}, false
	}

	return StockRow{
		Name: code + displayName,
		Code: code,
		Buy:  buy,
		Sell: sell,
		Net:  net,
	}, true
}

// parseBrokerRow extracts a BrokerRow from one main-force ranking row of five
// cells (broker, buy, sell, net, percent). The broker name prefers the
// GenLink2bkr script payload over the rendered text.
func parseBrokerRow(row *goquery.Selection) (BrokerRow, bool) {
	tds := row.Find("td")
	if tds.Length() < 5 {
		return BrokerRow{}, false
	}

	if strings.Contains(tds.Eq(0).Text(), glyphBrokerHeader) || strings.Contains(tds.Eq(1).Text(), glyphBuyHeader) {
		return BrokerRow{}, false
	}

	nameCell := tds.Eq(0)
	name := strings.TrimSpace(nameCell.Text())
	if script := nameCell.Find("script"); script.Length() > 0 {
		if _, displayName, ok := ExtractCallArgs(script.Text(), "GenLink2bkr"); ok {
			name = displayName
		}
	}

	buy, err := parseVolume(tds.Eq(1).Text())
	if err != nil {
		return BrokerRow{}, false
	}
	sell, err := parseVolume(tds.Eq(2).Text())
	if err != nil {
		return BrokerRow{}, false
	}
	net, err := parseVolume(tds.Eq(3).Text())
	if err != nil {
		return BrokerRow{}, false
	}

	if buy == 0 && sell == 0 && net == 0 {
		return BrokerRow{}, false
	}

	return BrokerRow{
		Name:    name,
		Buy:     buy,
		Sell:    sell,
		Net:     net,
		Percent: strings.TrimSpace(tds.Eq(4).Text()),
	}, true
}

// parseFlatRow splits one ten-cell row into its buyer-side and seller-side
// five-cell groups.
func parseFlatRow(row *goquery.Selection) (buyer, seller BrokerRow, buyerOK, sellerOK bool) {
	tds := row.Find("td")
	if tds.Length() != flatRowCells {
		return BrokerRow{}, BrokerRow{}, false, false
	}

	buyer, buyerOK = parseBrokerCells(tds, 0)
	seller, sellerOK = parseBrokerCells(tds, 5)
	return buyer, seller, buyerOK, sellerOK
}

// parseBrokerCells parses one five-cell group starting at offset.
func parseBrokerCells(tds *goquery.Selection, offset int) (BrokerRow, bool) {
	name := strings.TrimSpace(tds.Eq(offset).Text())
	if scr := tds.Eq(offset).Find("script"); scr.Length() > 0 {
		if _, displayName, ok := ExtractCallArgs(scr.Text(), "GenLink2bkr"); ok {
			name = displayName
		}
	}
	if name == "" {
		return BrokerRow{}, false
	}

	buy, err := parseVolume(tds.Eq(offset + 1).Text())
	if err != nil {
		return BrokerRow{}, false
	}
	sell, err := parseVolume(tds.Eq(offset + 2).Text())
	if err != nil {
		return BrokerRow{}, false
	}
	net, err := parseVolume(tds.Eq(offset + 3).Text())
	if err != nil {
		return BrokerRow{}, false
	}

	if buy == 0 && sell == 0 && net == 0 {
		return BrokerRow{}, false
	}

	return BrokerRow{
		Name:    name,
		Buy:     buy,
		Sell:    sell,
		Net:     net,
		Percent: strings.TrimSpace(tds.Eq(offset + 4).Text()),
	}, true
}
