package crawler

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flatTableHTML = `
<table id="oMainTable">
	<tr><td>買超券商</td><td>買進</td><td>賣出</td><td>買賣超</td><td>%</td>
		<td>賣超券商</td><td>買進</td><td>賣出</td><td>買賣超</td><td>%</td></tr>
	<tr><td>BrokerA</td><td>100</td><td>10</td><td>90</td><td>0.5%</td>
		<td>BrokerB</td><td>10</td><td>100</td><td>-90</td><td>0.5%</td></tr>
	<tr><td>合計</td><td>100</td><td>10</td><td>90</td><td>0.5%</td>
		<td>合計</td><td>10</td><td>100</td><td>-90</td><td>0.5%</td></tr>
</table>`

const nestedTableHTML = `
<table id="oMainTable">
	<tr><td><div class="t11">資料日期：2024-01-10</div></td></tr>
	<tr><td>header</td></tr>
	<tr><td>
		<table>
			<tr><td>買超券商</td><td>買進</td><td>賣出</td><td>買賣超</td><td>%</td></tr>
			<tr><td>BuySideBroker</td><td>200</td><td>20</td><td>180</td><td>1.0%</td></tr>
		</table>
		<table>
			<tr><td>賣超券商</td><td>買進</td><td>賣出</td><td>買賣超</td><td>%</td></tr>
			<tr><td>SellSideBroker</td><td>30</td><td>250</td><td>-220</td><td>1.1%</td></tr>
		</table>
	</td></tr>
</table>`

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestClassifyTableFlat(t *testing.T) {
	doc := docFromHTML(t, flatTableHTML)
	table := findMainTable(doc)
	require.NotNil(t, table)
	assert.Equal(t, ShapeFlatTenColumn, classifyTable(table))
}

func TestClassifyTableNested(t *testing.T) {
	doc := docFromHTML(t, nestedTableHTML)
	table := findMainTable(doc)
	require.NotNil(t, table)
	assert.Equal(t, ShapeNestedSubTables, classifyTable(table))
}

func TestClassifyTableEmpty(t *testing.T) {
	doc := docFromHTML(t, `<table id="oMainTable"><tr><td>nothing here</td></tr></table>`)
	table := doc.Find("table#oMainTable").First()
	assert.Equal(t, ShapeEmpty, classifyTable(table))
}

func TestExtractFlat(t *testing.T) {
	doc := docFromHTML(t, flatTableHTML)
	table := findMainTable(doc)
	require.NotNil(t, table)

	buyList, sellList := extractFlat(table)
	require.Len(t, buyList, 1)
	require.Len(t, sellList, 1)
	assert.Equal(t, "BrokerA", buyList[0].Name)
	assert.Equal(t, 90, buyList[0].Net)
	assert.Equal(t, "BrokerB", sellList[0].Name)
	assert.Equal(t, -90, sellList[0].Net)
}

func TestExtractFlatExcludesTotalsRow(t *testing.T) {
	doc := docFromHTML(t, flatTableHTML)
	table := findMainTable(doc)
	require.NotNil(t, table)

	buyList, _ := extractFlat(table)
	for _, row := range buyList {
		assert.NotContains(t, row.Name, glyphTotal)
	}
}

func TestFindNestedSubTables(t *testing.T) {
	doc := docFromHTML(t, nestedTableHTML)
	table := findMainTable(doc)
	require.NotNil(t, table)

	subs := findNestedSubTables(table)
	require.Len(t, subs, 2)

	buyRows := extractNested(subs[0])
	require.Len(t, buyRows, 1)
	assert.Equal(t, "BuySideBroker", buyRows[0].Name)
	assert.Equal(t, 180, buyRows[0].Net)

	sellRows := extractNested(subs[1])
	require.Len(t, sellRows, 1)
	assert.Equal(t, "SellSideBroker", sellRows[0].Name)
	assert.Equal(t, -220, sellRows[0].Net)
}

func TestFindMainTableFallback(t *testing.T) {
	var b strings.Builder
	b.WriteString("<table>")
	for i := 0; i < 12; i++ {
		b.WriteString("<tr><td>row</td></tr>")
	}
	b.WriteString("</table>")

	doc := docFromHTML(t, b.String())
	table := findMainTable(doc)
	require.NotNil(t, table)
	assert.Greater(t, table.Find("tr").Length(), 10)
}

func TestFindMainTableMissing(t *testing.T) {
	doc := docFromHTML(t, `<div>no tables</div>`)
	assert.Nil(t, findMainTable(doc))
}
