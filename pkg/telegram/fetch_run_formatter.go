package telegram

import (
	"fmt"
	"strings"
)

// BrokerRunResult summarizes one broker's outcome within a fetch run.
type BrokerRunResult struct {
	BrokerName string
	Date       string
	Created    int
	Updated    int
	Err        string
}

// FormatFetchRunSummary formats the end-of-run report sent after each
// fetch-and-store pass.
func FormatFetchRunSummary(results []BrokerRunResult, totalCreated, totalUpdated int) string {
	var b strings.Builder
	b.WriteString("📊 *Broker Ranking Fetch Summary*\n\n")

	for _, r := range results {
		if r.Err != "" {
			b.WriteString(fmt.Sprintf("❌ %s: %s\n", r.BrokerName, r.Err))
			continue
		}
		b.WriteString(fmt.Sprintf("✅ %s (%s): %d created, %d updated\n", r.BrokerName, r.Date, r.Created, r.Updated))
	}

	b.WriteString(fmt.Sprintf("\n*Total:* %d created, %d updated", totalCreated, totalUpdated))
	return b.String()
}
