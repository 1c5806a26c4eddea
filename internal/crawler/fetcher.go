package crawler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"golang-broker-scryper/pkg/logger"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
	"golang.org/x/time/rate"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// maxBodyBytes caps how much of a response we read.
const maxBodyBytes = 4 << 20

// Fetcher downloads source pages with a browser identity, a bounded timeout
// and an outbound rate limit.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewFetcher creates a Fetcher. maxRequestPerMinute bounds the request rate to
// the source site; zero or negative disables limiting.
func NewFetcher(log *logger.Logger, maxRequestPerMinute int) *Fetcher {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if maxRequestPerMinute > 0 {
		secondsPerRequest := time.Minute / time.Duration(maxRequestPerMinute)
		limiter = rate.NewLimiter(rate.Every(secondsPerRequest), 1)
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: limiter,
		log:     log,
	}
}

// Fetch performs a GET and returns the parsed document. Transport errors,
// timeouts and non-2xx statuses are logged and returned as errors; callers
// treat any error as an empty scrape result.
func (f *Fetcher) Fetch(ctx context.Context, link string) (*goquery.Document, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Error("Failed to fetch page", logger.ErrorField(err), logger.StringField("url", link))
		return nil, fmt.Errorf("failed to fetch %s: %w", link, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		f.log.Error("Fetch returned non-success status",
			logger.IntField("status", resp.StatusCode), logger.StringField("url", link))
		return nil, fmt.Errorf("fetch %s: status code %d", link, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		f.log.Error("Failed to read response body", logger.ErrorField(err), logger.StringField("url", link))
		return nil, fmt.Errorf("read body of %s: %w", link, err)
	}

	body = reinterpretLegacyEncoding(body, resp.Header.Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		f.log.Error("Failed to parse page markup", logger.ErrorField(err), logger.StringField("url", link))
		return nil, fmt.Errorf("parse markup of %s: %w", link, err)
	}
	return doc, nil
}

// reinterpretLegacyEncoding decodes the payload as Big5 when the source either
// omits the charset or mislabels it as Latin-1; the pages are actually Big5
// and would otherwise render as mojibake.
func reinterpretLegacyEncoding(body []byte, contentType string) []byte {
	cs := ""
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		cs = strings.ToLower(params["charset"])
	}
	switch cs {
	case "", "iso-8859-1", "latin-1", "big5":
	default:
		return body
	}
	if cs != "big5" && utf8.Valid(body) {
		return body
	}

	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(body), traditionalchinese.Big5.NewDecoder()))
	if err != nil {
		return body
	}
	return decoded
}
