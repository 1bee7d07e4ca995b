package here_test

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/peterbourgon/here"
	"github.com/pkg/errors"
)

func newTestTracer(host here.HostEnvironment) (*here.Tracer, *syncBuffer) {
	console := &syncBuffer{}
	tr := here.NewTracer(here.Config{
		Host:    host,
		Console: console,
		Styler:  here.PlainStyler{},
	})
	return tr, console
}

var timestampRegexp = regexp.MustCompile(`^\[TIMESTAMP\] #=(\d{4}), diff=(\d+\.\d{6}), at=(\d+\.\d{6})    \t\(in (.+):(\d+):in '(\w+)'\)$`)

func TestTimestamp(t *testing.T) {
	t.Parallel()

	tr, console := newTestTracer(nil)

	AssertNoError(t, tr.Timestamp())
	time.Sleep(25 * time.Millisecond)
	AssertNoError(t, tr.TS())

	lines := console.Lines()
	AssertEqual(t, 2, len(lines))

	var prevAt float64
	for i, line := range lines {
		m := timestampRegexp.FindStringSubmatch(line)
		if m == nil {
			t.Fatalf("line %d: unexpected format %q", i+1, line)
		}

		AssertEqual(t, strconv.Itoa(i+1), strings.TrimLeft(m[1], "0"))
		AssertEqual(t, true, strings.HasSuffix(m[4], "here_test.go"))
		AssertEqual(t, "TestTimestamp", m[6])

		diff, err := strconv.ParseFloat(m[2], 64)
		AssertNoError(t, err)
		at, err := strconv.ParseFloat(m[3], 64)
		AssertNoError(t, err)

		switch i {
		case 0:
			if diff < 0 || diff > 1.0 {
				t.Errorf("first diff: %f", diff)
			}
		case 1:
			if diff < 0.025 || diff > 1.0 {
				t.Errorf("second diff: %f", diff)
			}
			if at < prevAt {
				t.Errorf("at went backwards: %f < %f", at, prevAt)
			}
		}
		prevAt = at
	}
}

func TestTimestampConcurrent(t *testing.T) {
	t.Parallel()

	var (
		tr, console = newTestTracer(nil)
		workers     = 8
		each        = 50
		wg          sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < each; j++ {
				if err := tr.TS(); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()

	lines := console.Lines()
	AssertEqual(t, workers*each, len(lines))

	numbers := make([]int, 0, len(lines))
	for _, line := range lines {
		m := timestampRegexp.FindStringSubmatch(line)
		if m == nil {
			t.Fatalf("unexpected format %q", line)
		}
		n, err := strconv.Atoi(m[1])
		AssertNoError(t, err)
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	for i, n := range numbers {
		AssertEqual(t, i+1, n)
	}
	AssertEqual(t, uint64(workers*each), tr.Pulses().Count())
}

var valueRegexp = regexp.MustCompile(`^(\[[^\]]+\]) (.*:) (.*)    \t\(in (.+):(\d+):in '(\w+)'\)$`)

func parseValueNotice(t *testing.T, line string) here.ValueNotice {
	t.Helper()
	m := valueRegexp.FindStringSubmatch(line)
	if m == nil {
		t.Fatalf("unexpected value notice format %q", line)
	}
	return here.ValueNotice{
		Tag:     m[1],
		Label:   m[2],
		Display: m[3],
		Source:  m[4] + ":" + m[5] + ":in '" + m[6] + "'",
	}
}

func TestValue(t *testing.T) {
	t.Parallel()

	tr, console := newTestTracer(nil)

	AssertNoError(t, tr.Value(42, here.Label("Answer")))
	AssertNoError(t, tr.Val("abc"))
	AssertNoError(t, tr.Val(nil))
	AssertNoError(t, tr.Val(point{1, 2}, here.Inspect(false)))

	lines := console.Lines()
	AssertEqual(t, 4, len(lines))

	for i, want := range []struct{ label, display string }{
		{"Answer:", "42"},
		{"[unknown value]:", "abc"},
		{"nil:", "-nil-"},
		{"[unknown value]:", "point"},
	} {
		n := parseValueNotice(t, lines[i])
		ExpectEqual(t, "[here_test.TestValue]", n.Tag)
		ExpectEqual(t, want.label, n.Label)
		ExpectEqual(t, want.display, n.Display)
		ExpectEqual(t, true, strings.HasSuffix(n.Source, ":in 'TestValue'"))
	}
}

type greeter struct {
	name string
}

func (g *greeter) hello(tr *here.Tracer) error {
	return tr.Value(here.Ref("name", func() any { return g.name }))
}

func TestValueReference(t *testing.T) {
	t.Parallel()

	tr, console := newTestTracer(nil)
	g := &greeter{name: "Charlie"}
	AssertNoError(t, g.hello(tr))

	n := parseValueNotice(t, console.Lines()[0])
	AssertEqual(t, "[greeter#hello]", n.Tag)
	AssertEqual(t, "name:", n.Label)
	AssertEqual(t, "Charlie", n.Display)
	AssertEqual(t, true, strings.HasSuffix(n.Source, ":in 'hello'"))
}

func TestValueResolutionError(t *testing.T) {
	t.Parallel()

	tr, console := newTestTracer(nil)

	err := tr.Value(here.Scope{"a": 1}.Ref("b"))
	AssertErrorIs(t, err, here.ErrUnresolvedReference)

	var rerr *here.ResolutionError
	AssertEqual(t, true, errors.As(err, &rerr))
	AssertEqual(t, "b", rerr.Name)
	AssertEqual(t, "", console.String())
}

func TestConfigurationError(t *testing.T) {
	t.Parallel()

	tr, console := newTestTracer(nil)

	AssertErrorIs(t, tr.Timestamp(here.Logger("stderr")), here.ErrInvalidLoggerOption)
	AssertErrorIs(t, tr.Value(1, here.Logdev(3.14)), here.ErrInvalidLogdevOption)
	AssertErrorIs(t, tr.Value(1, here.Out(struct{}{})), here.ErrInvalidOutOption)
	AssertEqual(t, "", console.String())
	AssertEqual(t, uint64(0), tr.Pulses().Count())
}

func TestProduction(t *testing.T) {
	t.Parallel()

	t.Run("suppressed", func(t *testing.T) {
		var (
			rec         = &recorder{}
			tr, console = newTestTracer(here.StaticHost{Production: true, Sink: rec})
			ref         = here.Ref("never", func() any { t.Fatal("reference evaluated in production"); return nil })
		)
		AssertNoError(t, tr.Timestamp(here.Log(true)))
		AssertNoError(t, tr.Value(ref, here.Log(true)))
		AssertEqual(t, "", console.String())
		AssertEqual(t, 0, len(rec.Entries()))
		AssertEqual(t, uint64(0), tr.Pulses().Count())
	})

	t.Run("forced", func(t *testing.T) {
		tr, console := newTestTracer(here.StaticHost{Production: true})
		AssertNoError(t, tr.Value("visible", here.Production(true)))
		n := parseValueNotice(t, console.Lines()[0])
		AssertEqual(t, "visible", n.Display)
	})
}

func TestLogging(t *testing.T) {
	t.Parallel()

	t.Run("explicit logger", func(t *testing.T) {
		var (
			rec         = &recorder{}
			tr, console = newTestTracer(nil)
		)
		AssertNoError(t, tr.Value(1, here.Label("one"), here.Logger(rec), here.Out(false)))
		AssertEqual(t, "", console.String())

		entries := rec.Entries()
		AssertEqual(t, 1, len(entries))
		AssertEqual(t, true, strings.HasPrefix(entries[0], "sink [here_test.TestLogging] one: 1"))
	})

	t.Run("host sink", func(t *testing.T) {
		var (
			rec         = &recorder{}
			tr, console = newTestTracer(here.StaticHost{Sink: rec})
		)
		AssertNoError(t, tr.TS(here.Log(true)))
		AssertEqual(t, 1, len(console.Lines()))
		AssertEqual(t, 1, len(rec.Entries()))
		AssertEqual(t, "sink "+console.Lines()[0], rec.Entries()[0])
	})
}

func TestPackageLevel(t *testing.T) {
	tr, console := newTestTracer(nil)
	prev := here.SetDefault(tr)
	defer here.SetDefault(prev)

	AssertEqual(t, tr, here.Default())
	AssertEqual(t, tr, here.SetDefault(nil))

	AssertNoError(t, here.TS())
	AssertNoError(t, here.Timestamp())
	AssertNoError(t, here.Val(1))
	AssertNoError(t, here.Value(2))

	lines := console.Lines()
	AssertEqual(t, 4, len(lines))
	for _, line := range lines {
		if !strings.HasSuffix(line, ":in 'TestPackageLevel')") {
			t.Errorf("wrong source: %q", line)
		}
	}
	for _, line := range lines[2:] {
		ExpectEqual(t, "[here_test.TestPackageLevel]", parseValueNotice(t, line).Tag)
	}
}
