package crawler

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// flatRowCells is the cell count of one data row in the flat layout: two
// adjacent (name, buy, sell, net, percent) groups.
const flatRowCells = 10

// PageShape tags the layout variants a ranking page can take. Detection is a
// classification step run before extraction.
type PageShape int

const (
	// ShapeEmpty means no qualifying table was found; the page carries no
	// ranking data for that day.
	ShapeEmpty PageShape = iota
	// ShapeFlatTenColumn is the layout where each row holds the buyer-side
	// and seller-side groups side by side.
	ShapeFlatTenColumn
	// ShapeNestedSubTables is the layout with fully nested buy-side and
	// sell-side sub-tables.
	ShapeNestedSubTables
)

// findMainTable locates the primary data table. The main-force page sometimes
// omits the id, in which case the first table with enough rows is used.
func findMainTable(doc *goquery.Document) *goquery.Selection {
	table := doc.Find("table#oMainTable").First()
	if table.Length() > 0 {
		return table
	}

	var fallback *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, t *goquery.Selection) bool {
		if t.Find("tr").Length() > 10 {
			fallback = t
			return false
		}
		return true
	})
	return fallback
}

// classifyTable decides which layout variant the table uses. The flat
// ten-column shape is tried first; the nested shape only when no flat data
// row exists.
func classifyTable(table *goquery.Selection) PageShape {
	if table == nil || table.Length() == 0 {
		return ShapeEmpty
	}

	flat := false
	table.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if isFooterRow(row) {
			return true
		}
		if row.Find("td").Length() == flatRowCells {
			flat = true
			return false
		}
		return true
	})
	if flat {
		return ShapeFlatTenColumn
	}

	if len(findNestedSubTables(table)) > 0 {
		return ShapeNestedSubTables
	}
	return ShapeEmpty
}

// findNestedSubTables returns the nested tables that carry all three ranking
// header glyphs; the first match is the buy side, the second the sell side.
func findNestedSubTables(table *goquery.Selection) []*goquery.Selection {
	var found []*goquery.Selection
	table.Find("table").Each(func(_ int, sub *goquery.Selection) {
		text := sub.Text()
		if strings.Contains(text, glyphBuyHeader) &&
			strings.Contains(text, glyphSellHeader) &&
			strings.Contains(text, glyphNetHeader) {
			found = append(found, sub)
		}
	})
	return found
}

// isFooterRow reports whether the row is summary chrome (totals, averages)
// rather than data; such rows are excluded regardless of cell values.
func isFooterRow(row *goquery.Selection) bool {
	text := row.Text()
	return strings.Contains(text, glyphTotal) || strings.Contains(text, glyphAverage)
}

// extractFlat walks the flat ten-column layout and splits each data row into
// its buyer-side and seller-side entries.
func extractFlat(table *goquery.Selection) (buyList, sellList []BrokerRow) {
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if isFooterRow(row) {
			return
		}
		buyer, seller, buyerOK, sellerOK := parseFlatRow(row)
		if buyerOK {
			buyList = append(buyList, buyer)
		}
		if sellerOK {
			sellList = append(sellList, seller)
		}
	})
	return buyList, sellList
}

// extractNested parses every data row of one nested sub-table.
func extractNested(sub *goquery.Selection) []BrokerRow {
	var rows []BrokerRow
	sub.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if isFooterRow(row) {
			return
		}
		if parsed, ok := parseBrokerRow(row); ok {
			rows = append(rows, parsed)
		}
	})
	return rows
}

// locateRankingSides finds the buy-side and sell-side sub-tables of the
// broker ranking page (zgb0). Layout puts both inside the third row of the
// main table; when that assumption fails, the glyph-based search is used.
func locateRankingSides(table *goquery.Selection) (buySide, sellSide *goquery.Selection) {
	rows := table.Find("tr")
	if rows.Length() > 2 {
		nested := rows.Eq(2).Find("table")
		if nested.Length() >= 2 {
			return nested.Eq(0), nested.Eq(1)
		}
	}

	found := findNestedSubTables(table)
	if len(found) >= 2 {
		return found[0], found[1]
	}
	if len(found) == 1 {
		return found[0], nil
	}
	return nil, nil
}

// extractStockRows parses the data rows of one ranking-side sub-table. The
// first two rows are the column headers.
func extractStockRows(side *goquery.Selection) []StockRow {
	if side == nil {
		return nil
	}
	var rows []StockRow
	side.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i < 2 {
			return
		}
		if parsed, ok := parseStockRow(row); ok {
			rows = append(rows, parsed)
		}
	})
	return rows
}
