package vary

import "testing"

var allClassifications = []Classification{Unspecified, Compact, Regular}

func TestMatches_Unconstrained(t *testing.T) {
	for _, h := range allClassifications {
		for _, v := range allClassifications {
			traits := Traits{Horizontal: h, Vertical: v}
			if !Matches(Any(), traits) {
				t.Errorf("expected unconstrained condition to match %s", traits)
			}
		}
	}
}

func TestMatches_AllConditions(t *testing.T) {
	optional := []*Classification{nil}
	for i := range allClassifications {
		optional = append(optional, &allClassifications[i])
	}

	for _, ch := range optional {
		for _, cv := range optional {
			cond := Condition{Horizontal: ch, Vertical: cv}
			for _, h := range allClassifications {
				for _, v := range allClassifications {
					traits := Traits{Horizontal: h, Vertical: v}
					want := (ch == nil || *ch == h) && (cv == nil || *cv == v)
					if got := Matches(cond, traits); got != want {
						t.Errorf("Matches(%s, %s) = %v, want %v", cond, traits, got, want)
					}
				}
			}
		}
	}
}

func TestMatches_HorizontalCompact(t *testing.T) {
	cond := When(AxisHorizontal, Compact)

	if !cond.Matches(Traits{Horizontal: Compact, Vertical: Regular}) {
		t.Error("expected match for compact/regular")
	}
	if !cond.Matches(Traits{Horizontal: Compact, Vertical: Unspecified}) {
		t.Error("expected match for compact/unspecified")
	}
	for _, v := range allClassifications {
		if cond.Matches(Traits{Horizontal: Regular, Vertical: v}) {
			t.Errorf("expected no match for regular/%s", v)
		}
	}
}

func TestWhen(t *testing.T) {
	h := When(AxisHorizontal, Regular)
	if c, ok := h.Requires(AxisHorizontal); !ok || c != Regular {
		t.Errorf("expected horizontal regular, got %s %v", c, ok)
	}
	if _, ok := h.Requires(AxisVertical); ok {
		t.Error("expected vertical unconstrained")
	}

	v := When(AxisVertical, Compact)
	if c, ok := v.Requires(AxisVertical); !ok || c != Compact {
		t.Errorf("expected vertical compact, got %s %v", c, ok)
	}
	if _, ok := v.Requires(AxisHorizontal); ok {
		t.Error("expected horizontal unconstrained")
	}
}

func TestBoth(t *testing.T) {
	cond := Both(Compact, Regular)
	if !cond.Matches(Traits{Horizontal: Compact, Vertical: Regular}) {
		t.Error("expected match")
	}
	if cond.Matches(Traits{Horizontal: Compact, Vertical: Compact}) {
		t.Error("expected no match on vertical mismatch")
	}
}

func TestCondition_String(t *testing.T) {
	if s := When(AxisHorizontal, Compact).String(); s != "h=compact v=any" {
		t.Errorf("unexpected string %q", s)
	}
	if s := Any().String(); s != "h=any v=any" {
		t.Errorf("unexpected string %q", s)
	}
}
