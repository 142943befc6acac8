package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rogersnm/almanac/internal/model"
)

// DefaultPageSize is the limit applied when a filter leaves Limit unset.
const DefaultPageSize = 20

type Sort string

const (
	SortRecency Sort = "recency"
	SortName    Sort = "name"
)

// Filter is a query over the catalog. Structured restrictions (category,
// tags, author) hit index buckets; text and date bounds scan only the
// reduced candidate set.
type Filter struct {
	Category string
	Tags     []string // a document must carry ALL of these
	Author   string
	// Text is whitespace-separated tokens matched as case-insensitive
	// substrings of name and description.
	Text     string
	DateFrom model.Date // inclusive; zero means unbounded
	DateTo   model.Date
	Sort     Sort // empty means SortRecency
	Limit    int  // 0 means DefaultPageSize
	Offset   int
}

// Result is an ordered page of summaries plus the total match count before
// pagination.
type Result struct {
	Items []model.Summary
	Total int
}

func (f Filter) validate() error {
	switch f.Sort {
	case "", SortRecency, SortName:
	default:
		return &InvalidFilterError{Reason: fmt.Sprintf("unknown sort %q", f.Sort)}
	}
	if f.Limit < 0 {
		return &InvalidFilterError{Reason: "limit must not be negative"}
	}
	if f.Offset < 0 {
		return &InvalidFilterError{Reason: "offset must not be negative"}
	}
	if !f.DateFrom.IsZero() && !f.DateFrom.Valid() {
		return &InvalidFilterError{Reason: "dateFrom is not a valid date"}
	}
	if !f.DateTo.IsZero() && !f.DateTo.Valid() {
		return &InvalidFilterError{Reason: "dateTo is not a valid date"}
	}
	if f.DateFrom.Valid() && f.DateTo.Valid() && f.DateFrom.After(f.DateTo) {
		return &InvalidFilterError{Reason: "dateFrom is after dateTo"}
	}
	return nil
}

// runQuery executes a filter against the store and indexes. Caller holds at
// least the read lock. Identical filter and catalog state always yield the
// identical result set and order.
func (c *Catalog) runQuery(f Filter) (Result, error) {
	if err := f.validate(); err != nil {
		return Result{}, err
	}

	var buckets [][]entryRef
	if f.Category != "" {
		buckets = append(buckets, c.index.categoryBucket(f.Category))
	}
	if f.Author != "" {
		buckets = append(buckets, c.index.authorBucket(f.Author))
	}
	for _, tag := range f.Tags {
		buckets = append(buckets, c.index.tagBucket(tag))
	}

	var candidates []entryRef
	if len(buckets) > 0 {
		candidates = intersect(buckets)
	} else {
		candidates = c.index.recency
	}

	tokens := textTokens(f.Text)
	var matched []*model.Document
	for _, ref := range candidates {
		doc, ok := c.store.lookup(ref.id)
		if !ok {
			// A dangling index entry means reindexing went wrong.
			return Result{}, &IndexConsistencyError{ID: ref.id, Bucket: "candidates"}
		}
		if !matchesText(doc, tokens) || !withinDates(doc, f.DateFrom, f.DateTo) {
			continue
		}
		matched = append(matched, doc)
	}

	if f.Sort == SortName {
		sort.SliceStable(matched, func(i, j int) bool {
			ni, nj := strings.ToLower(matched[i].Meta.Name), strings.ToLower(matched[j].Meta.Name)
			if ni != nj {
				return ni < nj
			}
			return matched[i].ID < matched[j].ID
		})
	}

	total := len(matched)
	limit := f.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}
	start := f.Offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	items := make([]model.Summary, 0, end-start)
	for _, doc := range matched[start:end] {
		items = append(items, doc.Summary())
	}
	return Result{Items: items, Total: total}, nil
}

// intersect keeps entries present in every bucket, walking the smallest
// bucket so the result preserves its recency order.
func intersect(buckets [][]entryRef) []entryRef {
	sort.Slice(buckets, func(i, j int) bool { return len(buckets[i]) < len(buckets[j]) })

	base := buckets[0]
	others := make([]map[string]bool, 0, len(buckets)-1)
	for _, b := range buckets[1:] {
		set := make(map[string]bool, len(b))
		for _, r := range b {
			set[r.id] = true
		}
		others = append(others, set)
	}

	var out []entryRef
	for _, r := range base {
		inAll := true
		for _, set := range others {
			if !set[r.id] {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, r)
		}
	}
	return out
}

func textTokens(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	return fields
}

// matchesText reports whether any token appears in the document's name or
// description, case-insensitively. No tokens means no text restriction.
func matchesText(doc *model.Document, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	name := strings.ToLower(doc.Meta.Name)
	desc := strings.ToLower(doc.Meta.Description)
	for _, tok := range tokens {
		if strings.Contains(name, tok) || strings.Contains(desc, tok) {
			return true
		}
	}
	return false
}

func withinDates(doc *model.Document, from, to model.Date) bool {
	d := doc.Meta.LastUpdated
	if from.Valid() && d.Before(from) {
		return false
	}
	if to.Valid() && d.After(to) {
		return false
	}
	return true
}
