package instruction_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lanevec/vasm/instruction"
	"github.com/lanevec/vasm/token"
)

func TestConstRegIndexSpace(t *testing.T) {
	t.Parallel()
	for logical := uint8(0); logical <= instruction.MaxRegIndex; logical++ {
		r := instruction.NewConstReg(logical, token.Span{})
		if r.Idx() != logical {
			t.Errorf("c%d: want idx %d, got %d", logical, logical, r.Idx())
		}
		if !r.IsConst() || r.IsGPR() {
			t.Errorf("c%d: want const, got IsConst=%v IsGPR=%v", logical, r.IsConst(), r.IsGPR())
		}
		if want := fmt.Sprintf("c%d", logical); r.String() != want {
			t.Errorf("want %q, got %q", want, r.String())
		}
	}
}

func TestGPRIndexSpace(t *testing.T) {
	t.Parallel()
	for logical := uint8(0); logical <= instruction.MaxRegIndex; logical++ {
		r := instruction.NewGPR(logical, token.Span{})
		if r.Idx() != logical+8 {
			t.Errorf("gpr %d: want idx %d, got %d", logical, logical+8, r.Idx())
		}
		if !r.IsGPR() || r.IsConst() {
			t.Errorf("gpr %d: want gpr, got IsConst=%v IsGPR=%v", logical, r.IsConst(), r.IsGPR())
		}
		want := fmt.Sprintf("r%d", logical)
		if logical == 7 {
			want = "ri"
		}
		if r.String() != want {
			t.Errorf("want %q, got %q", want, r.String())
		}
	}
}

func TestRegConstructorsRejectOutOfRange(t *testing.T) {
	t.Parallel()
	assertPanics(t, "NewConstReg(8)", func() { instruction.NewConstReg(8, token.Span{}) })
	assertPanics(t, "NewGPR(8)", func() { instruction.NewGPR(8, token.Span{}) })
}

func TestSetSelectorRoundTrip(t *testing.T) {
	t.Parallel()
	for bits := uint8(0); bits <= 0b1111; bits++ {
		s := instruction.SetSelectorFromBits(bits, token.Span{})
		if s.Bits() != bits {
			t.Errorf("bits %#b: round-trip gave %#b", bits, s.Bits())
		}
		if s.X() != (bits&0b0001 != 0) ||
			s.Y() != (bits&0b0010 != 0) ||
			s.Z() != (bits&0b0100 != 0) ||
			s.W() != (bits&0b1000 != 0) {
			t.Errorf("bits %#b: lane predicates disagree with mask", bits)
		}
	}
	assertPanics(t, "SetSelectorFromBits(0b10000)", func() {
		instruction.SetSelectorFromBits(0b10000, token.Span{})
	})
}

func TestSetSelectorDuplicateDetection(t *testing.T) {
	t.Parallel()
	s := instruction.EmptySetSelector(token.Span{})
	if s.Set(2) {
		t.Error("first Set(2): want false")
	}
	if !s.Set(2) {
		t.Error("second Set(2): want true")
	}
	if !s.Get(2) || s.Get(0) {
		t.Errorf("want only lane 2 set, got bits %#b", s.Bits())
	}
	assertPanics(t, "Set(4)", func() { s.Set(4) })
}

func TestSetSelectorSetMatchesFromBits(t *testing.T) {
	t.Parallel()
	built := instruction.EmptySetSelector(token.Span{})
	built.Set(0)
	built.Set(3)
	want := instruction.SetSelectorFromBits(0b1001, token.Span{})
	if diff := cmp.Diff(want, built); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSetSelectorString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		bits uint8
		want string
	}{
		{0b0000, "<none>"},
		{0b0001, "x"},
		{0b1010, "yw"},
		{0b0110, "yz"},
		{0b1111, "xyzw"},
	}
	for _, tt := range tests {
		s := instruction.SetSelectorFromBits(tt.bits, token.Span{})
		if s.String() != tt.want {
			t.Errorf("bits %#b: want %q, got %q", tt.bits, tt.want, s.String())
		}
	}
}

func TestSwizzleSelectorRoundTrip(t *testing.T) {
	t.Parallel()
	lanes := "xyzw"
	for slot := uint8(0); slot < 4; slot++ {
		for sel := uint8(0); sel < 4; sel++ {
			s := instruction.EmptySwizzleSelector(token.Span{})
			s.Set(slot, sel)
			if got := s.String()[slot]; got != lanes[sel] {
				t.Errorf("slot %d sel %d: want %c at position %d, got %c",
					slot, sel, lanes[sel], slot, got)
			}
		}
	}
}

func TestSwizzleSelectorBroadcast(t *testing.T) {
	t.Parallel()
	s := instruction.EmptySwizzleSelector(token.Span{})
	s.Set(0, 0)
	s.Set(1, 0)
	s.Set(2, 1)
	s.Set(3, 1)
	if s.String() != "xxyy" {
		t.Errorf("want xxyy, got %s", s.String())
	}
	if s.Bits() != 0b01010000 {
		t.Errorf("want bits %#b, got %#b", 0b01010000, s.Bits())
	}
}

// Set truncates both arguments modulo 4: writing slot 4 overwrites
// slot 0, and lane 5 aliases lane 1. Callers that want a range check
// must do it themselves.
func TestSwizzleSelectorSlotAliasing(t *testing.T) {
	t.Parallel()
	s := instruction.EmptySwizzleSelector(token.Span{})
	s.Set(0, 3)
	s.Set(4, 2) // aliases slot 0
	if s.String() != "zxxx" {
		t.Errorf("want zxxx, got %s", s.String())
	}

	s.Set(1, 5) // lane 5 aliases lane 1
	if s.String() != "zyxx" {
		t.Errorf("want zyxx, got %s", s.String())
	}
}

func TestSwizzleSelectorOverwrite(t *testing.T) {
	t.Parallel()
	s := instruction.EmptySwizzleSelector(token.Span{})
	s.Set(2, 3)
	s.Set(2, 1)
	if got := s.String()[2]; got != 'y' {
		t.Errorf("slot 2: want y after overwrite, got %c", got)
	}
}

func TestShiftAmountConst(t *testing.T) {
	t.Parallel()
	span := token.Span{Start: 10, End: 12}
	a := instruction.NewConstAmount(15, span)
	if a.Value() != 15 {
		t.Errorf("want value 15, got %d", a.Value())
	}
	if a.Span() != span {
		t.Errorf("want span %v, got %v", span, a.Span())
	}
	assertPanics(t, "NewConstAmount(16)", func() {
		instruction.NewConstAmount(16, token.Span{})
	})
}

func TestShiftAmountRegisterSpan(t *testing.T) {
	t.Parallel()
	span := token.Span{Start: 4, End: 6}
	a := instruction.RegisterAmount{Reg: instruction.NewGPR(3, span)}
	if a.Span() != span {
		t.Errorf("want the register's span %v, got %v", span, a.Span())
	}
	if a.String() != "r3" {
		t.Errorf("want r3, got %s", a.String())
	}
}

func TestMemoryOperandString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		mem  instruction.MemoryOperand
		want string
	}{
		{instruction.MemoryOperand{Reg: instruction.NewGPR(0, token.Span{})}, "[r0]"},
		{instruction.MemoryOperand{Reg: instruction.NewGPR(0, token.Span{}), Increment: true}, "[r0+]"},
		{instruction.MemoryOperand{Reg: instruction.NewGPR(2, token.Span{}), Scatter: true}, "[*r2]"},
		{instruction.MemoryOperand{Reg: instruction.NewConstReg(1, token.Span{}), Scatter: true, Increment: true}, "[*c1+]"},
	}
	for _, tt := range tests {
		if tt.mem.String() != tt.want {
			t.Errorf("want %q, got %q", tt.want, tt.mem.String())
		}
	}
}

func assertPanics(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: want panic", name)
		}
	}()
	f()
}
