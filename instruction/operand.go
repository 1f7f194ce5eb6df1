package instruction

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lanevec/vasm/token"
)

// Constructors in this package treat out-of-range numeric inputs as
// caller bugs and panic: the parser validates symbolic operand text
// (register names, component letters, immediates) before building
// operands, so a bad value here means the parser is broken, not the
// user's source.

// MaxRegIndex is the highest logical index within one register class.
const MaxRegIndex = 7

const gprIndexOffset = 8

// RegSelector names one physical register by its unified index:
// 0..7 are the const registers c0..c7, 8..14 are r0..r6, and 15 is ri.
type RegSelector struct {
	idx  uint8
	span token.Span
}

func NewConstReg(idx uint8, span token.Span) RegSelector {
	if idx > MaxRegIndex {
		panic(fmt.Sprintf("const register index %d out of range", idx))
	}
	return RegSelector{idx: idx, span: span}
}

func NewGPR(idx uint8, span token.Span) RegSelector {
	if idx > MaxRegIndex {
		panic(fmt.Sprintf("gpr index %d out of range", idx))
	}
	return RegSelector{idx: idx + gprIndexOffset, span: span}
}

// Idx returns the unified register index used for codegen.
func (r RegSelector) Idx() uint8 {
	return r.idx
}

func (r RegSelector) Span() token.Span {
	return r.span
}

// IsConst reports whether the register is a const register.
func (r RegSelector) IsConst() bool {
	return r.idx <= MaxRegIndex
}

// IsGPR reports whether the register is a general purpose register.
// ri (index 15) counts as general purpose because it is writable.
func (r RegSelector) IsGPR() bool {
	return r.idx > MaxRegIndex && r.idx <= gprIndexOffset+MaxRegIndex
}

// Equal compares the register encoding, ignoring spans.
func (r RegSelector) Equal(o RegSelector) bool {
	return r.idx == o.idx
}

func (r RegSelector) String() string {
	switch {
	case r.idx <= MaxRegIndex:
		return fmt.Sprintf("c%d", r.idx)
	case r.idx < gprIndexOffset+MaxRegIndex:
		return fmt.Sprintf("r%d", r.idx-gprIndexOffset)
	default:
		return "ri"
	}
}

// SetSelector is a 4-bit lane mask: bit 0 selects x, bit 1 y, bit 2 z,
// bit 3 w. It records membership only; ordering and repetition are the
// job of SwizzleSelector.
type SetSelector struct {
	bits uint8
	span token.Span
}

func EmptySetSelector(span token.Span) SetSelector {
	return SetSelector{span: span}
}

func SetSelectorFromBits(bits uint8, span token.Span) SetSelector {
	if bits > 0b1111 {
		panic(fmt.Sprintf("set selector bits %#x out of range", bits))
	}
	return SetSelector{bits: bits, span: span}
}

// Set marks lane idx as selected and reports whether it already was,
// so a parser can diagnose duplicate component names.
func (s *SetSelector) Set(idx uint8) bool {
	if idx >= 4 {
		panic(fmt.Sprintf("lane index %d out of range", idx))
	}
	set := s.bits&(1<<idx) != 0
	s.bits |= 1 << idx
	return set
}

func (s SetSelector) Get(idx uint8) bool {
	if idx >= 4 {
		panic(fmt.Sprintf("lane index %d out of range", idx))
	}
	return s.bits&(1<<idx) != 0
}

// Bits returns the raw 4-bit mask for codegen.
func (s SetSelector) Bits() uint8 {
	return s.bits
}

func (s SetSelector) Span() token.Span {
	return s.span
}

func (s SetSelector) X() bool { return s.bits&0b0001 != 0 }
func (s SetSelector) Y() bool { return s.bits&0b0010 != 0 }
func (s SetSelector) Z() bool { return s.bits&0b0100 != 0 }
func (s SetSelector) W() bool { return s.bits&0b1000 != 0 }

// Equal compares the lane mask, ignoring spans.
func (s SetSelector) Equal(o SetSelector) bool {
	return s.bits == o.bits
}

// String renders the selected lanes in the canonical x,y,z,w order, or
// "<none>" for the empty selector.
func (s SetSelector) String() string {
	if s.bits == 0 {
		return "<none>"
	}
	var b strings.Builder
	for i := 0; i < 4; i++ {
		if s.bits&(1<<i) != 0 {
			b.WriteByte(laneName(uint8(i)))
		}
	}
	return b.String()
}

// SwizzleSelector is an ordered, repeatable selection of lanes: two
// bits per output slot, slot 0 in the low bits. Slot i holding value v
// means "output slot i reads source lane v".
type SwizzleSelector struct {
	bits uint8
	span token.Span
}

func EmptySwizzleSelector(span token.Span) SwizzleSelector {
	return SwizzleSelector{span: span}
}

// Set writes lane sel into output slot. Both arguments are truncated to
// their low two bits, so slot 4 silently aliases slot 0.
func (s *SwizzleSelector) Set(slot, sel uint8) {
	shift := (slot & 0b11) * 2
	s.bits &^= 0b11 << shift
	s.bits |= (sel & 0b11) << shift
}

// Bits returns the raw 8-bit pattern for codegen.
func (s SwizzleSelector) Bits() uint8 {
	return s.bits
}

func (s SwizzleSelector) Span() token.Span {
	return s.span
}

// Equal compares the swizzle pattern, ignoring spans.
func (s SwizzleSelector) Equal(o SwizzleSelector) bool {
	return s.bits == o.bits
}

// String renders the swizzle as four lane letters, slot 0 first, so
// the letter at position i is the lane read by output slot i.
func (s SwizzleSelector) String() string {
	return string([]byte{
		laneName(s.bits),
		laneName(s.bits >> 2),
		laneName(s.bits >> 4),
		laneName(s.bits >> 6),
	})
}

func laneName(v uint8) byte {
	return "xyzw"[v&0b11]
}

// MemoryOperand is a register-addressed memory reference. When Scatter
// is set, each lane of the register supplies its own address; otherwise
// the first word is the single base address. Increment requests
// post-increment addressing. There is no displacement field.
type MemoryOperand struct {
	Reg       RegSelector
	Scatter   bool
	Increment bool
	Span      token.Span
}

func (m MemoryOperand) String() string {
	var b strings.Builder
	b.WriteByte('[')
	if m.Scatter {
		b.WriteByte('*')
	}
	b.WriteString(m.Reg.String())
	if m.Increment {
		b.WriteByte('+')
	}
	b.WriteByte(']')
	return b.String()
}

// SetRegSelector is a register plus a lane mask: the operand unit of
// Move, Load destinations, and Store sources.
type SetRegSelector struct {
	Reg      RegSelector
	Selector SetSelector
	Span     token.Span
}

func (s SetRegSelector) String() string {
	if s.Selector.Bits() == 0 {
		return s.Reg.String()
	}
	return s.Reg.String() + "." + s.Selector.String()
}

// SwizzleRegSelector is a register plus an ordered reordering pattern:
// the operand unit of Swizzle.
type SwizzleRegSelector struct {
	Reg      RegSelector
	Selector SwizzleSelector
	Span     token.Span
}

func (s SwizzleRegSelector) String() string {
	return s.Reg.String() + "." + s.Selector.String()
}

// MaxShiftAmount is the largest immediate shift amount.
const MaxShiftAmount = 15

// ShiftAmount is the amount operand of a shift or rotate: either a
// register read at execution time or a 4-bit immediate.
type ShiftAmount interface {
	fmt.Stringer
	Span() token.Span
	shiftAmount()
}

// RegisterAmount sources the shift amount from a register.
type RegisterAmount struct {
	Reg RegSelector
}

func (a RegisterAmount) Span() token.Span {
	return a.Reg.Span()
}

func (a RegisterAmount) String() string {
	return a.Reg.String()
}

func (a RegisterAmount) shiftAmount() {}

var _ ShiftAmount = RegisterAmount{}

// ConstAmount is an immediate shift amount in 0..15.
type ConstAmount struct {
	value uint8
	span  token.Span
}

func NewConstAmount(value uint8, span token.Span) ConstAmount {
	if value > MaxShiftAmount {
		panic(fmt.Sprintf("shift amount %d out of range", value))
	}
	return ConstAmount{value: value, span: span}
}

func (a ConstAmount) Value() uint8 {
	return a.value
}

func (a ConstAmount) Span() token.Span {
	return a.span
}

// Equal compares the immediate value, ignoring spans.
func (a ConstAmount) Equal(o ConstAmount) bool {
	return a.value == o.value
}

func (a ConstAmount) String() string {
	return strconv.Itoa(int(a.value))
}

func (a ConstAmount) shiftAmount() {}

var _ ShiftAmount = ConstAmount{}
