package here_test

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
)

func AssertEqual[X comparable](t *testing.T, want, have X) {
	t.Helper()
	if want != have {
		t.Fatalf("want %v, have %v", want, have)
	}
}

func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("error %v", err)
	}
}

func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want error %v, have %v", target, err)
	}
}

func ExpectEqual[X comparable](t *testing.T, want, have X) {
	t.Helper()
	if want != have {
		t.Errorf("want %v, have %v", want, have)
	}
}

// syncBuffer is a bytes.Buffer that's safe for concurrent use.
type syncBuffer struct {
	mtx sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Lines() []string {
	s := strings.TrimSuffix(b.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// recorder captures console writes and sink messages in a single ordered
// list, so tests can assert on interleaving.
type recorder struct {
	mtx     sync.Mutex
	entries []string
}

func (r *recorder) add(format string, args ...any) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.entries = append(r.entries, fmt.Sprintf(format, args...))
}

func (r *recorder) Entries() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]string(nil), r.entries...)
}

func (r *recorder) Write(p []byte) (int, error) {
	r.add("console %s", strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

func (r *recorder) Debug(msg fmt.Stringer) {
	r.add("sink %s", msg.String())
}
