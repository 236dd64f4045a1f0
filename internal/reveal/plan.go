// Package reveal turns a completed structured answer into the staged reveal
// the widget plays: intro text character by character, then one
// sections-revealed cue with staggered fade-in offsets. The timing logic is
// pure data over already-final content — it never touches the message log.
package reveal

import (
	"time"

	"github.com/binarysemantics/ichatrobo/internal/model/convo"
)

// Production cadence, matching the widget animation.
const (
	DefaultCharEvery    = 10 * time.Millisecond
	DefaultSectionPause = 200 * time.Millisecond
)

// Kind discriminates reveal events.
type Kind string

const (
	// KindChar reveals the next intro character.
	KindChar Kind = "char"
	// KindSections marks the sections, cards and suggestions visible.
	KindSections Kind = "sections"
)

// Event is one timestamped reveal instruction for the view layer. At is the
// offset from the start of the reveal, in nanoseconds on the wire.
type Event struct {
	Kind Kind          `json:"kind"`
	At   time.Duration `json:"at"`

	// KindChar fields: the character and its zero-based intro position.
	Char  string `json:"char,omitempty"`
	Index int    `json:"index,omitempty"`

	// KindSections field: per-group fade-in offsets.
	Stagger *Stagger `json:"stagger,omitempty"`
}

// Stagger carries the fade-in offsets applied to each answer group once
// sections are revealed, relative to the sections event itself. Values follow
// the widget's transition delays.
type Stagger struct {
	Sections    time.Duration `json:"sections"`
	Callouts    time.Duration `json:"callouts"`
	Related     time.Duration `json:"related"`
	Suggestions time.Duration `json:"suggestions"`
	Actions     time.Duration `json:"actions"`
}

var defaultStagger = Stagger{
	Sections:    0,
	Callouts:    200 * time.Millisecond,
	Related:     300 * time.Millisecond,
	Suggestions: 500 * time.Millisecond,
	Actions:     700 * time.Millisecond,
}

// Options tune the reveal cadence. Zero values fall back to the production
// timings.
type Options struct {
	CharEvery    time.Duration
	SectionPause time.Duration
}

func (o Options) withDefaults() Options {
	if o.CharEvery <= 0 {
		o.CharEvery = DefaultCharEvery
	}
	if o.SectionPause <= 0 {
		o.SectionPause = DefaultSectionPause
	}
	return o
}

// Plan derives the deterministic reveal sequence for a response: one event
// per intro character at a fixed cadence, then a single sections event after
// a short pause. The same response always yields the identical sequence, so a
// reveal can be restarted from the top at any time.
func Plan(resp *convo.StructuredResponse, opts Options) []Event {
	opts = opts.withDefaults()

	runes := []rune(resp.Intro)
	events := make([]Event, 0, len(runes)+1)
	for i, r := range runes {
		events = append(events, Event{
			Kind:  KindChar,
			At:    time.Duration(i+1) * opts.CharEvery,
			Char:  string(r),
			Index: i,
		})
	}

	stagger := defaultStagger
	events = append(events, Event{
		Kind:    KindSections,
		At:      time.Duration(len(runes))*opts.CharEvery + opts.SectionPause,
		Stagger: &stagger,
	})

	return events
}
