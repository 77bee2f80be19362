package service

import (
	"context"
	"testing"

	"redpen/internal/core/rulepack"
)

func newTestSvc(t *testing.T) *Svc {
	t.Helper()
	p, err := rulepack.Load()
	if err != nil {
		t.Fatalf("rulepack.Load(): %v", err)
	}
	return New(p)
}

func TestInfo(t *testing.T) {
	s := newTestSvc(t)

	info, err := s.Info(context.Background())
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Version != 1 {
		t.Fatalf("version = %d", info.Version)
	}
	if info.SpellingCount == 0 || info.SpacingCount == 0 || info.PunctuationCount == 0 {
		t.Fatalf("empty counts: %+v", info)
	}
}

func TestSpelling(t *testing.T) {
	s := newTestSvc(t)

	rules, err := s.Spelling(context.Background())
	if err != nil {
		t.Fatalf("Spelling: %v", err)
	}
	found := false
	for _, r := range rules {
		if r.Wrong == "됬" && r.Right == "됐" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 됬 -> 됐 pair in %d rules", len(rules))
	}
}

func TestSpacingAndPunctuation(t *testing.T) {
	s := newTestSvc(t)

	sp, err := s.Spacing(context.Background())
	if err != nil || len(sp) == 0 {
		t.Fatalf("Spacing: %v (%d rules)", err, len(sp))
	}
	for _, r := range sp {
		if r.ID == "" || r.Pattern == "" {
			t.Fatalf("incomplete spacing rule: %+v", r)
		}
	}

	pu, err := s.Punctuation(context.Background())
	if err != nil || len(pu) == 0 {
		t.Fatalf("Punctuation: %v (%d rules)", err, len(pu))
	}
}
