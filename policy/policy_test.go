package policy

import (
	stderrors "errors"
	"testing"

	"github.com/kbukum/passgen/alphabet"
	"github.com/kbukum/passgen/errors"
)

func TestSet_Validate(t *testing.T) {
	accept := Func(func(string) bool { return true })
	reject := Func(func(string) bool { return false })

	tests := []struct {
		name string
		set  Set
		want bool
	}{
		{"empty passes", Set{}, true},
		{"nil passes", nil, true},
		{"all accept", Set{accept, accept}, true},
		{"one rejects", Set{accept, reject}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.set.Validate("x"); got != tc.want {
				t.Errorf("Validate() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSet_ShortCircuits(t *testing.T) {
	calls := 0
	counting := Func(func(string) bool { calls++; return true })
	reject := Func(func(string) bool { return false })

	Set{reject, counting}.Validate("x")
	if calls != 0 {
		t.Errorf("expected evaluation to stop at first rejection, got %d calls", calls)
	}
}

func TestCharacterClass_Validate(t *testing.T) {
	def := DefaultCharacterClass()
	tests := []struct {
		name      string
		policy    CharacterClass
		candidate string
		want      bool
	}{
		{"all classes", def, "aB3!", true},
		{"missing lower", def, "AB3!", false},
		{"missing upper", def, "ab3!", false},
		{"missing digit", def, "aBc!", false},
		{"missing special", def, "aB3c", false},
		{"special outside policy set", def, "aB3~", false},
		{"empty", def, "", false},
		{"nothing required", CharacterClass{}, "", true},
		{"only digits required", CharacterClass{RequireDigit: true}, "12", true},
		{"custom specials", CharacterClass{RequireSpecial: true, Specials: "~"}, "a~", true},
		{"custom specials reject default", CharacterClass{RequireSpecial: true, Specials: "~"}, "a!", false},
		{"non-ascii letter is not lower", CharacterClass{RequireLower: true}, "é", false},
		{"non-ascii letter is not upper", CharacterClass{RequireUpper: true}, "É", false},
		{"non-ascii digit is not digit", CharacterClass{RequireDigit: true}, "٣", false},
		{"non-ascii letter as special", CharacterClass{RequireLower: true, RequireSpecial: true, Specials: "é"}, "aé", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.policy.Validate(tc.candidate); got != tc.want {
				t.Errorf("Validate(%q) = %v, want %v", tc.candidate, got, tc.want)
			}
		})
	}
}

func TestDefaultCharacterClass_MatchesAlphabet(t *testing.T) {
	if got := DefaultCharacterClass().Specials; got != alphabet.DefaultSpecials {
		t.Errorf("expected default policy specials %q, got %q", alphabet.DefaultSpecials, got)
	}
}

func TestCharacterClass_MinClasses(t *testing.T) {
	if n := DefaultCharacterClass().MinClasses(); n != 4 {
		t.Errorf("expected 4, got %d", n)
	}
	if n := (CharacterClass{RequireUpper: true}).MinClasses(); n != 1 {
		t.Errorf("expected 1, got %d", n)
	}
}

func TestMinLength_Validate(t *testing.T) {
	p := MinLength{Min: 10}
	if p.Validate("123456789") {
		t.Error("expected 9 characters to fail")
	}
	if !p.Validate("1234567890") {
		t.Error("expected 10 characters to pass")
	}
	if !(MinLength{Min: 3}).Validate("é€!") {
		t.Error("expected length to count characters, not bytes")
	}
}

func TestNoSequential_Validate(t *testing.T) {
	p := MustNoSequential(3)
	tests := []struct {
		candidate string
		want      bool
	}{
		{"xx123xx", false},
		{"xxabcxx", false},
		{"XYZ", false},
		{"yzA", false},
		{"789", false},
		{"x132x", true},
		{"xacbx", true},
		{"321", true},
		{"cba", true},
		{"890", true},
		{"12", true},
		{"", true},
		{"aBc", true},
	}
	for _, tc := range tests {
		t.Run(tc.candidate, func(t *testing.T) {
			if got := p.Validate(tc.candidate); got != tc.want {
				t.Errorf("Validate(%q) = %v, want %v", tc.candidate, got, tc.want)
			}
		})
	}
}

func TestNoSequential_Descending(t *testing.T) {
	p := MustNoSequential(3, WithDescending())
	for _, c := range []string{"321", "cba", "ZYX", "123"} {
		if p.Validate(c) {
			t.Errorf("expected %q to be rejected", c)
		}
	}
	if !p.Validate("132") {
		t.Error("expected 132 to pass")
	}
}

func TestNoSequential_RunLengths(t *testing.T) {
	p4 := MustNoSequential(4)
	if !p4.Validate("123x") {
		t.Error("expected run of 3 to pass a run-length 4 policy")
	}
	if p4.Validate("x1234") {
		t.Error("expected run of 4 to fail")
	}

	p1 := MustNoSequential(1)
	if p1.Validate("a") || !p1.Validate("!?") {
		t.Error("run length 1 forbids every letter and digit")
	}

	long := MustNoSequential(11)
	if !long.Validate("0123456789") {
		t.Error("expected digit run shorter than run length to pass")
	}
}

func TestNoSequential_ZeroValueUsesDefault(t *testing.T) {
	var p NoSequential
	if p.RunLength() != DefaultRunLength {
		t.Errorf("expected default run length, got %d", p.RunLength())
	}
	if p.Validate("abc") {
		t.Error("expected zero value to forbid runs of 3")
	}
}

func TestNewNoSequential_Invalid(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := NewNoSequential(n); !stderrors.Is(err, errors.ErrInvalidArgument) {
			t.Errorf("NewNoSequential(%d): expected INVALID_ARGUMENT, got %v", n, err)
		}
	}
}
