// Package sheets ingests the product catalog from a published Google Sheet via
// the gviz tabular-query endpoint. Ingestion is the only external, I/O-bound
// operation in the core: it runs once at startup (and on explicit refresh) and
// its failure is non-fatal, the composition root collapses any error here to an
// empty catalog.
package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopease/storefront/internal/domain"
)

// ErrInvalidSheetURL is returned when the configured sheet URL is missing the
// document-id segment or the numeric gid segment.
var ErrInvalidSheetURL = errors.New("invalid sheet URL: expected a document id (/d/...) and a gid (gid=...)")

var (
	sheetIDPattern = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)
	gidPattern     = regexp.MustCompile(`gid=(\d+)`)
)

// selectQuery requests the five fixed catalog columns with stable labels.
const selectQuery = "select A, B, C, D, E label A 'name', B 'price', C 'description', D 'image', E 'category'"

// The gviz endpoint wraps its JSON payload in a JS callback that has to be
// stripped before decoding.
const (
	responsePreamble = "/*O_o*/\ngoogle.visualization.Query.setResponse("
	responseSuffix   = ");"
)

// Config identifies one tab of one spreadsheet document.
type Config struct {
	SheetID string
	GID     string
}

// ParseSheetURL extracts the document id and tab id from a full sheet URL.
func ParseSheetURL(rawURL string) (Config, error) {
	idMatch := sheetIDPattern.FindStringSubmatch(rawURL)
	gidMatch := gidPattern.FindStringSubmatch(rawURL)
	if idMatch == nil || gidMatch == nil {
		return Config{}, ErrInvalidSheetURL
	}
	return Config{SheetID: idMatch[1], GID: gidMatch[1]}, nil
}

// Client fetches and maps the catalog feed.
type Client struct {
	httpClient *http.Client
	baseURL    string
	config     Config
}

// NewClient builds a client for the given sheet URL. Fails fast with
// ErrInvalidSheetURL so a misconfiguration is caught before any request.
func NewClient(sheetURL string) (*Client, error) {
	cfg, err := ParseSheetURL(sheetURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    "https://docs.google.com",
		config:     cfg,
	}, nil
}

// queryURL builds the tabular-query endpoint URL for the configured tab.
func (c *Client) queryURL() string {
	return fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:json&tq=%s&gid=%s",
		c.baseURL, c.config.SheetID, url.QueryEscape(selectQuery), c.config.GID)
}

// gviz response shapes. Cells carry a raw value "v" and an optional formatted
// string "f"; either may be absent.
type gvizResponse struct {
	Table *gvizTable `json:"table"`
}

type gvizTable struct {
	Rows []gvizRow `json:"rows"`
}

type gvizRow struct {
	C []*gvizCell `json:"c"`
}

type gvizCell struct {
	V interface{} `json:"v"`
	F string      `json:"f"`
}

// Fetch performs a single request against the feed and maps each row to a
// product candidate. Candidates with a missing name or a non-positive,
// non-finite price are discarded, not errors. Any transport or payload failure
// is returned to the caller; there is no retry.
func (c *Client) Fetch(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed request failed: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed response: %w", err)
	}

	return parsePayload(body)
}

// parsePayload strips the JS callback envelope, decodes the table and applies
// the row mapping and discard rules.
func parsePayload(body []byte) ([]domain.Product, error) {
	text := string(body)
	if strings.HasPrefix(text, responsePreamble) {
		text = strings.TrimPrefix(text, responsePreamble)
		text = strings.TrimSuffix(strings.TrimSpace(text), responseSuffix)
	}

	var payload gvizResponse
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode feed payload: %w", err)
	}
	if payload.Table == nil || payload.Table.Rows == nil {
		return nil, errors.New("feed payload has no table rows")
	}

	products := make([]domain.Product, 0, len(payload.Table.Rows))
	for _, r := range payload.Table.Rows {
		p := mapRow(r.C)
		if p.Name == domain.MissingName || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) || p.Price <= 0 {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// mapRow applies the column contract of the published sheet
// (A: name, B: price, C: description, D: image, E: category).
func mapRow(cells []*gvizCell) domain.Product {
	return domain.Product{
		Name:        cellString(cellAt(cells, 0), domain.MissingName),
		Price:       cellFloat(cellAt(cells, 1)),
		Description: cellString(cellAt(cells, 2), domain.DefaultDescription),
		Image:       cellString(cellAt(cells, 3), domain.DefaultImage),
		Category:    cellString(cellAt(cells, 4), domain.DefaultCategory),
	}
}

func cellAt(cells []*gvizCell, i int) *gvizCell {
	if i < len(cells) {
		return cells[i]
	}
	return nil
}

// cellString prefers the raw value, falls back to the formatted string, then
// to the provided default.
func cellString(cell *gvizCell, fallback string) string {
	if cell == nil {
		return fallback
	}
	if s, ok := cell.V.(string); ok && s != "" {
		return s
	}
	if cell.F != "" {
		return cell.F
	}
	return fallback
}

// cellFloat extracts a numeric price. Numbers arrive as JSON numbers; string
// cells are parsed leniently. Anything else yields NaN so the caller discards
// the row.
func cellFloat(cell *gvizCell) float64 {
	if cell == nil || cell.V == nil {
		return math.NaN()
	}
	switch v := cell.V.(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
