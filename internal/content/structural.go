package content

import "fmt"

// StructuralValidator checks that required fields are present and that
// questions are internally consistent: option counts, answer indices,
// unique ids, and the profile's question-count target.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(s *Session, p Profile) *ValidationError {
	if s.Title == "" {
		return v.fail("title is empty")
	}
	if s.Passage == "" {
		return v.fail("passage is empty")
	}
	if s.Summary == "" {
		return v.fail("summary is empty")
	}
	if len(s.Questions) != p.QuestionCount {
		return v.fail(fmt.Sprintf("expected %d questions, got %d", p.QuestionCount, len(s.Questions)))
	}

	seen := make(map[int]bool, len(s.Questions))
	for _, q := range s.Questions {
		if q.Text == "" {
			return v.fail(fmt.Sprintf("question %d has empty text", q.ID))
		}
		if q.Explanation == "" {
			return v.fail(fmt.Sprintf("question %d has empty explanation", q.ID))
		}
		if len(q.Options) < 2 || len(q.Options) > 5 {
			return v.fail(fmt.Sprintf("question %d has %d options, want 2-5", q.ID, len(q.Options)))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return v.fail(fmt.Sprintf("question %d has correct index %d out of range", q.ID, q.CorrectIndex))
		}
		if seen[q.ID] {
			return v.fail(fmt.Sprintf("duplicate question id %d", q.ID))
		}
		seen[q.ID] = true
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
