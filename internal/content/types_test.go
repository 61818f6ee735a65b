package content

import (
	"reflect"
	"testing"
)

func TestParagraphs(t *testing.T) {
	tests := []struct {
		name    string
		passage string
		want    []string
	}{
		{
			name:    "blank line separated",
			passage: "First paragraph.\n\nSecond paragraph.",
			want:    []string{"First paragraph.", "Second paragraph."},
		},
		{
			name:    "literal backslash-n sequences",
			passage: `First paragraph.\n\nSecond paragraph.`,
			want:    []string{"First paragraph.", "Second paragraph."},
		},
		{
			name:    "surrounding whitespace trimmed",
			passage: "  First. \n\n\n Second.  \n",
			want:    []string{"First.", "Second."},
		},
		{
			name:    "single paragraph",
			passage: "Only one.",
			want:    []string{"Only one."},
		},
		{
			name:    "hard-wrapped lines stay in one paragraph",
			passage: "First line,\nstill the first paragraph.\n\nSecond paragraph.",
			want:    []string{"First line,\nstill the first paragraph.", "Second paragraph."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{Passage: tt.passage}
			if got := s.Paragraphs(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Paragraphs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopicAndDifficultyValidity(t *testing.T) {
	for _, topic := range AllTopics() {
		if !topic.Valid() {
			t.Errorf("topic %q should be valid", topic)
		}
		if topic.Display() == string(topic) {
			t.Errorf("topic %q has no display name", topic)
		}
	}
	if Topic("poetry").Valid() {
		t.Error("unknown topic should be invalid")
	}

	for _, d := range AllDifficulties() {
		if !d.Valid() {
			t.Errorf("difficulty %q should be valid", d)
		}
	}
	if Difficulty("expert").Valid() {
		t.Error("unknown difficulty should be invalid")
	}
}

func TestEveryTopicHasProfile(t *testing.T) {
	for _, topic := range AllTopics() {
		p, err := ProfileFor(topic)
		if err != nil {
			t.Fatalf("topic %q: %v", topic, err)
		}
		if (p.QuestionCount == 0) != (topic == TopicQuickRead) {
			t.Errorf("topic %q question count %d inconsistent with quick-read role",
				topic, p.QuestionCount)
		}
	}
	if _, err := ProfileFor(Topic("poetry")); err == nil {
		t.Error("expected error for unknown topic")
	}
}
