package testutil

import (
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTML parses the recorder body, failing the test on error.
func ParseHTML(t *testing.T, rr *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	if err != nil {
		t.Fatalf("failed to parse html: %v", err)
	}
	return doc
}
