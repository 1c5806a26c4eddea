package crawler

import "fmt"

// Link builders for the three known endpoint shapes. Tokens are passed through
// untouched; a malformed token just yields a URL the fetch will fail on.

// RankingLink builds the per-stock broker summary page URL (zco0).
func RankingLink(stockNo, a, b string) string {
	return fmt.Sprintf("https://fubon-ebrokerdj.fbs.com.tw/z/zc/zco/zco0/zco0.djhtm?a=%s&b=%s&BHID=%s", stockNo, b, a)
}

// RankingDetailLink builds the broker top buyer/seller ranking page URL
// (zgb0). days=1 is the daily view; 5, 10 and 20 select historical windows.
func RankingDetailLink(a, b string, days int) string {
	return fmt.Sprintf("https://fubon-ebrokerdj.fbs.com.tw/z/zg/zgb/zgb0.djhtm?a=%s&b=%s&c=E&d=%d", a, b, days)
}

// StockMainForceLink builds the single-stock main force day summary URL (zco)
// bounded to one date.
func StockMainForceLink(stockNo, date string) string {
	return fmt.Sprintf("https://fubon-ebrokerdj.fbs.com.tw/z/zc/zco/zco.djhtm?a=%s&e=%s&f=%s", stockNo, date, date)
}

// HiStockLink builds the third-party cross-reference URL for a stock at a
// broker branch.
func HiStockLink(stockNo, bno string) string {
	return fmt.Sprintf("https://histock.tw/stock/brokertrace.aspx?bno=%s&no=%s", bno, stockNo)
}
