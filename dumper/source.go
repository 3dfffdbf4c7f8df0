package dumper

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/erraggy/mongotype/mterrors"
)

// Source yields raw BSON documents one at a time. Next returns io.EOF
// when the source is exhausted; any other error is terminal.
type Source interface {
	// Next returns the next document, or io.EOF when none remain.
	Next(ctx context.Context) (bson.Raw, error)

	// Close releases resources held by the source.
	Close(ctx context.Context) error
}

// Counter is implemented by sources that know how many documents they
// will yield before iteration starts. The Dumper uses it to print the
// count banner for the dotted and tree styles.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// SliceSource yields documents from an in-memory slice. It is primarily
// useful in tests and when documents were already decoded elsewhere.
type SliceSource struct {
	docs []bson.Raw
	pos  int
}

// NewSliceSource returns a source over the given documents, in order.
func NewSliceSource(docs ...bson.Raw) *SliceSource {
	return &SliceSource{docs: docs}
}

// Next returns the next document or io.EOF.
func (s *SliceSource) Next(_ context.Context) (bson.Raw, error) {
	if s.pos >= len(s.docs) {
		return nil, io.EOF
	}
	doc := s.docs[s.pos]
	s.pos++
	return doc, nil
}

// Count returns the total number of documents in the slice.
func (s *SliceSource) Count(_ context.Context) (int64, error) {
	return int64(len(s.docs)), nil
}

// Close is a no-op for slice sources.
func (s *SliceSource) Close(_ context.Context) error {
	return nil
}

// ExtJSONSource yields documents from newline-delimited extended JSON,
// one document per line. Blank lines are skipped. This is the offline
// counterpart to reading from a live collection.
type ExtJSONSource struct {
	name    string
	reader  io.Reader
	scanner *bufio.Scanner
	line    int
}

// maxExtJSONLine bounds a single extended JSON document line.
const maxExtJSONLine = 16 * 1024 * 1024

// NewExtJSONSource returns a source reading newline-delimited extended
// JSON from r. The name identifies the input in error messages, e.g. a
// file path or "<stdin>".
func NewExtJSONSource(name string, r io.Reader) *ExtJSONSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxExtJSONLine)
	return &ExtJSONSource{name: name, reader: r, scanner: scanner}
}

// Next decodes the next non-blank line as an extended JSON document.
func (s *ExtJSONSource) Next(ctx context.Context) (bson.Raw, error) {
	for s.scanner.Scan() {
		s.line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text := strings.TrimSpace(s.scanner.Text())
		if text == "" {
			continue
		}

		var doc bson.D
		if err := bson.UnmarshalExtJSON([]byte(text), false, &doc); err != nil {
			return nil, &mterrors.DecodeError{
				Source:  fmt.Sprintf("%s:%d", s.name, s.line),
				Message: "invalid extended JSON",
				Cause:   err,
			}
		}
		raw, err := bson.Marshal(doc)
		if err != nil {
			return nil, &mterrors.DecodeError{
				Source:  fmt.Sprintf("%s:%d", s.name, s.line),
				Message: "re-encoding document",
				Cause:   err,
			}
		}
		return bson.Raw(raw), nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, &mterrors.DecodeError{Source: s.name, Message: "reading input", Cause: err}
	}
	return nil, io.EOF
}

// Close closes the underlying reader when it supports closing.
func (s *ExtJSONSource) Close(_ context.Context) error {
	if c, ok := s.reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
