package reveal

import (
	"reflect"
	"testing"
	"time"

	"github.com/binarysemantics/ichatrobo/internal/model/convo"
)

func sampleResponse(intro string) *convo.StructuredResponse {
	return &convo.StructuredResponse{
		Intro:       intro,
		Sections:    []convo.Section{{Content: "point"}},
		Related:     []convo.RelatedItem{{Title: "card", Kind: convo.KindLearnMore}},
		Suggestions: []string{"next?"},
	}
}

func TestPlanEmitsEveryIntroCharacterInOrder(t *testing.T) {
	intro := "Héllo!"
	plan := Plan(sampleResponse(intro), Options{})

	runes := []rune(intro)
	if len(plan) != len(runes)+1 {
		t.Fatalf("expected %d events, got %d", len(runes)+1, len(plan))
	}

	var rebuilt string
	for i, event := range plan[:len(runes)] {
		if event.Kind != KindChar {
			t.Fatalf("event %d has kind %s", i, event.Kind)
		}
		if event.Index != i {
			t.Fatalf("event %d has index %d", i, event.Index)
		}
		rebuilt += event.Char
	}
	if rebuilt != intro {
		t.Fatalf("emitted text %q != intro %q", rebuilt, intro)
	}

	last := plan[len(plan)-1]
	if last.Kind != KindSections {
		t.Fatalf("final event kind %s, want sections", last.Kind)
	}
	if last.Stagger == nil {
		t.Fatal("sections event missing stagger offsets")
	}
}

func TestPlanTimingsAreFixedCadence(t *testing.T) {
	opts := Options{CharEvery: 10 * time.Millisecond, SectionPause: 200 * time.Millisecond}
	plan := Plan(sampleResponse("abc"), opts)

	for i := 0; i < 3; i++ {
		want := time.Duration(i+1) * opts.CharEvery
		if plan[i].At != want {
			t.Fatalf("char %d at %v, want %v", i, plan[i].At, want)
		}
	}

	wantSections := 3*opts.CharEvery + opts.SectionPause
	if plan[3].At != wantSections {
		t.Fatalf("sections at %v, want %v", plan[3].At, wantSections)
	}
}

func TestPlanIsDeterministic(t *testing.T) {
	resp := sampleResponse("Binary Semantics")

	first := Plan(resp, Options{})
	second := Plan(resp, Options{})
	if !reflect.DeepEqual(first, second) {
		t.Fatal("re-planning the same response diverged")
	}
}

func TestPlanEmptyIntroStillRevealsSections(t *testing.T) {
	plan := Plan(sampleResponse(""), Options{})

	if len(plan) != 1 {
		t.Fatalf("expected only the sections event, got %d events", len(plan))
	}
	if plan[0].Kind != KindSections {
		t.Fatalf("unexpected kind: %s", plan[0].Kind)
	}
}
