package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankingLink(t *testing.T) {
	link := RankingLink("2330", "1020", "0038002200")
	assert.Equal(t, "https://fubon-ebrokerdj.fbs.com.tw/z/zc/zco/zco0/zco0.djhtm?a=2330&b=0038002200&BHID=1020", link)
}

func TestRankingDetailLink(t *testing.T) {
	link := RankingDetailLink("1020", "0038002200", 5)
	assert.Equal(t, "https://fubon-ebrokerdj.fbs.com.tw/z/zg/zgb/zgb0.djhtm?a=1020&b=0038002200&c=E&d=5", link)
}

func TestStockMainForceLink(t *testing.T) {
	link := StockMainForceLink("2330", "2024-01-10")
	assert.Equal(t, "https://fubon-ebrokerdj.fbs.com.tw/z/zc/zco/zco.djhtm?a=2330&e=2024-01-10&f=2024-01-10", link)
}

func TestHiStockLink(t *testing.T) {
	link := HiStockLink("2330", "1020")
	assert.Equal(t, "https://histock.tw/stock/brokertrace.aspx?bno=1020&no=2330", link)
}

func TestLinkBuildersPassTokensThrough(t *testing.T) {
	// Malformed tokens produce malformed but well-typed URLs; the fetch is
	// left to fail on them naturally.
	link := RankingDetailLink("", "with space", 1)
	assert.Contains(t, link, "a=&b=with space")
}
