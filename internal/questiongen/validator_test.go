package questiongen

import (
	"strings"
	"testing"

	"github.com/abhisek/quizzy/internal/questions"
)

func mkSet(qs ...questions.Question) *questions.Set {
	return &questions.Set{Questions: qs}
}

func stmt(text string, answer bool) questions.Question {
	return questions.Question{Text: text, Answer: answer}
}

func TestStructuralValidator(t *testing.T) {
	tests := []struct {
		name    string
		set     *questions.Set
		count   int
		wantMsg string
	}{
		{"ok", mkSet(stmt("a", true), stmt("b", false)), 2, ""},
		{"count mismatch", mkSet(stmt("a", true)), 2, "expected 2 questions, got 1"},
		{"empty statement", mkSet(stmt("a", true), stmt(" ", false)), 2, "question 2: statement is empty"},
		{"too long", mkSet(stmt(strings.Repeat("x", maxStatementLen+1), true)), 1, "exceeds"},
		{"all true", mkSet(stmt("a", true), stmt("b", true), stmt("c", true), stmt("d", true)), 4, "all 4 answers are true"},
		{"all false", mkSet(stmt("a", false), stmt("b", false), stmt("c", false), stmt("d", false)), 4, "all 4 answers are false"},
		{"small sets may be uniform", mkSet(stmt("a", true), stmt("b", true), stmt("c", true)), 3, ""},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.set, Input{Topic: "t", Count: tt.count})
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Message, tt.wantMsg) {
				t.Errorf("message = %q, want it to contain %q", err.Message, tt.wantMsg)
			}
			if !err.Retryable {
				t.Error("structural failures should be retryable")
			}
		})
	}
}

func TestDedupValidator(t *testing.T) {
	v := &DedupValidator{}

	if err := v.Validate(mkSet(stmt("Cats purr.", true), stmt("Dogs bark.", true)), Input{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := v.Validate(mkSet(stmt("Cats purr.", true), stmt("  cats  PURR ", false)), Input{})
	if err == nil {
		t.Fatal("expected duplicate to be rejected")
	}
	if err.Message != "question 2 duplicates question 1" {
		t.Errorf("message = %q", err.Message)
	}

	err = v.Validate(mkSet(stmt("Dogs bark.", true)), Input{Avoid: []string{"dogs bark"}})
	if err == nil || !strings.Contains(err.Message, "avoided") {
		t.Fatalf("expected avoided statement to be rejected, got %v", err)
	}
}

func TestBuildAvoid(t *testing.T) {
	if got := buildAvoid(nil, 5); got != "None" {
		t.Errorf("empty = %q, want None", got)
	}
	got := buildAvoid([]string{"a", "b", "c"}, 2)
	if got != "1. b\n2. c" {
		t.Errorf("limited = %q", got)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Validator: "dedup", Message: "dup"}
	if err.Error() != `validator "dedup": dup` {
		t.Errorf("Error() = %q", err.Error())
	}
}
