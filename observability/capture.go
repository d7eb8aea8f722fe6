package observability

import "sync"

// Entry is one captured log record.
type Entry struct {
	Level  string
	Msg    string
	Fields []Field
}

// Capture records every log call. Tests assert on the diagnostics a fill
// pass emitted; the CLI prints them after a dry run.
type Capture struct {
	mu      sync.Mutex
	with    []Field
	entries *[]Entry
}

// NewCapture returns an empty capturing logger.
func NewCapture() *Capture {
	return &Capture{entries: new([]Entry)}
}

// Entries returns a copy of the records captured so far.
func (c *Capture) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(*c.entries))
	copy(out, *c.entries)
	return out
}

// Messages returns the captured messages at the given level.
func (c *Capture) Messages(level string) []string {
	var msgs []string
	for _, e := range c.Entries() {
		if e.Level == level {
			msgs = append(msgs, e.Msg)
		}
	}
	return msgs
}

func (c *Capture) record(level, msg string, fields []Field) {
	c.mu.Lock()
	defer c.mu.Unlock()
	all := make([]Field, 0, len(c.with)+len(fields))
	all = append(all, c.with...)
	all = append(all, fields...)
	*c.entries = append(*c.entries, Entry{Level: level, Msg: msg, Fields: all})
}

func (c *Capture) Debug(msg string, fields ...Field) { c.record("debug", msg, fields) }
func (c *Capture) Info(msg string, fields ...Field)  { c.record("info", msg, fields) }
func (c *Capture) Warn(msg string, fields ...Field)  { c.record("warn", msg, fields) }
func (c *Capture) Error(msg string, fields ...Field) { c.record("error", msg, fields) }

func (c *Capture) With(fields ...Field) Logger {
	c.mu.Lock()
	defer c.mu.Unlock()
	child := &Capture{entries: c.entries}
	child.with = append(append([]Field{}, c.with...), fields...)
	return child
}
