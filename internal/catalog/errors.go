package catalog

import "fmt"

// ParseError reports a document whose frontmatter block could not be
// extracted from the source text.
type ParseError struct {
	SourceRef string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.SourceRef, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NotFoundError reports an operation that referenced an unknown document id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document %q not found", e.ID)
}

// InvalidFilterError reports a malformed query filter. Invalid input is
// rejected, never clamped.
type InvalidFilterError struct {
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return "invalid filter: " + e.Reason
}

// IndexConsistencyError flags a reindex that could not find a membership it
// expected to remove. It indicates a programming error, not bad user input;
// callers should treat it as fatal rather than swallow it.
type IndexConsistencyError struct {
	ID     string
	Bucket string
}

func (e *IndexConsistencyError) Error() string {
	return fmt.Sprintf("index inconsistency: document %q missing from bucket %s", e.ID, e.Bucket)
}
