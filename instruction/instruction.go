package instruction

import (
	"fmt"

	"github.com/lanevec/vasm/token"
)

// Instruction is one assembly statement: a kind plus the span it was
// parsed from. It is immutable once built; the parser produces one per
// statement and the encoder consumes them as-is.
type Instruction struct {
	kind Kind
	span token.Span
}

func New(kind Kind, span token.Span) Instruction {
	return Instruction{kind: kind, span: span}
}

func (i Instruction) Kind() Kind {
	return i.kind
}

func (i Instruction) Span() token.Span {
	return i.span
}

func (i Instruction) String() string {
	return i.kind.String()
}

// Kind is the closed set of instruction shapes the encoder knows how
// to emit. Each variant is a plain value with no behavior beyond
// String; all execution and encoding semantics live in the encoder.
// System and special-operation instructions are reserved for a future
// ISA revision and have no variants yet.
type Kind interface {
	fmt.Stringer
	kind()
}

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=OpSize

// OpSize is the operand width of an arithmetic or shift instruction.
// Bitwise instructions carry no size; they are whole-register.
type OpSize int

const (
	Byte OpSize = iota
	Word
)

func sizeSuffix(s OpSize) string {
	if s == Byte {
		return "b"
	}
	return "w"
}

// Move copies the lanes selected on both sides from Src to Dst.
type Move struct {
	Src SetRegSelector
	Dst SetRegSelector
}

func (k Move) String() string {
	return fmt.Sprintf("mov %v, %v", k.Src, k.Dst)
}

func (k Move) kind() {}

var _ Kind = Move{}

// Swizzle reorders the lanes of Reg in place.
type Swizzle struct {
	Reg SwizzleRegSelector
}

func (k Swizzle) String() string {
	return fmt.Sprintf("swz %v", k.Reg)
}

func (k Swizzle) kind() {}

var _ Kind = Swizzle{}

// Load reads memory into the selected lanes of Dst.
type Load struct {
	Mem MemoryOperand
	Dst SetRegSelector
}

func (k Load) String() string {
	return fmt.Sprintf("ld %v, %v", k.Dst, k.Mem)
}

func (k Load) kind() {}

var _ Kind = Load{}

// Store writes the selected lanes of Src to memory.
type Store struct {
	Src SetRegSelector
	Mem MemoryOperand
}

func (k Store) String() string {
	return fmt.Sprintf("st %v, %v", k.Src, k.Mem)
}

func (k Store) kind() {}

var _ Kind = Store{}

// Add: dst = src + dst.
type Add struct {
	Size OpSize
	Src  RegSelector
	Dst  RegSelector
}

func (k Add) String() string {
	return fmt.Sprintf("add.%s %v, %v", sizeSuffix(k.Size), k.Src, k.Dst)
}

func (k Add) kind() {}

var _ Kind = Add{}

// Sub: dst = src - dst.
type Sub struct {
	Size OpSize
	Src  RegSelector
	Dst  RegSelector
}

func (k Sub) String() string {
	return fmt.Sprintf("sub.%s %v, %v", sizeSuffix(k.Size), k.Src, k.Dst)
}

func (k Sub) kind() {}

var _ Kind = Sub{}

// SubRev: dst = dst - src.
type SubRev struct {
	Size OpSize
	Src  RegSelector
	Dst  RegSelector
}

func (k SubRev) String() string {
	return fmt.Sprintf("subr.%s %v, %v", sizeSuffix(k.Size), k.Src, k.Dst)
}

func (k SubRev) kind() {}

var _ Kind = SubRev{}

// CmpEq: dst = src == dst.
type CmpEq struct {
	Size OpSize
	Src  RegSelector
	Dst  RegSelector
}

func (k CmpEq) String() string {
	return fmt.Sprintf("cmpeq.%s %v, %v", sizeSuffix(k.Size), k.Src, k.Dst)
}

func (k CmpEq) kind() {}

var _ Kind = CmpEq{}

// CmpNeq: dst = src != dst.
type CmpNeq struct {
	Size OpSize
	Src  RegSelector
	Dst  RegSelector
}

func (k CmpNeq) String() string {
	return fmt.Sprintf("cmpneq.%s %v, %v", sizeSuffix(k.Size), k.Src, k.Dst)
}

func (k CmpNeq) kind() {}

var _ Kind = CmpNeq{}

// AddSaturate: dst = src + dst, clamped instead of wrapping.
type AddSaturate struct {
	Size OpSize
	Src  RegSelector
	Dst  RegSelector
}

func (k AddSaturate) String() string {
	return fmt.Sprintf("adds.%s %v, %v", sizeSuffix(k.Size), k.Src, k.Dst)
}

func (k AddSaturate) kind() {}

var _ Kind = AddSaturate{}

// SubSaturate: dst = src - dst, clamped instead of wrapping.
type SubSaturate struct {
	Size OpSize
	Src  RegSelector
	Dst  RegSelector
}

func (k SubSaturate) String() string {
	return fmt.Sprintf("subs.%s %v, %v", sizeSuffix(k.Size), k.Src, k.Dst)
}

func (k SubSaturate) kind() {}

var _ Kind = SubSaturate{}

// SubRevSaturate: dst = dst - src, clamped instead of wrapping.
type SubRevSaturate struct {
	Size OpSize
	Src  RegSelector
	Dst  RegSelector
}

func (k SubRevSaturate) String() string {
	return fmt.Sprintf("subrs.%s %v, %v", sizeSuffix(k.Size), k.Src, k.Dst)
}

func (k SubRevSaturate) kind() {}

var _ Kind = SubRevSaturate{}

// ShiftLeft shifts Dst left by Amount, in place.
type ShiftLeft struct {
	Size   OpSize
	Dst    RegSelector
	Amount ShiftAmount
}

func (k ShiftLeft) String() string {
	return fmt.Sprintf("shl.%s %v, %v", sizeSuffix(k.Size), k.Dst, k.Amount)
}

func (k ShiftLeft) kind() {}

var _ Kind = ShiftLeft{}

// ShiftRightLogical shifts Dst right by Amount, filling with zeros.
type ShiftRightLogical struct {
	Size   OpSize
	Dst    RegSelector
	Amount ShiftAmount
}

func (k ShiftRightLogical) String() string {
	return fmt.Sprintf("shr.%s %v, %v", sizeSuffix(k.Size), k.Dst, k.Amount)
}

func (k ShiftRightLogical) kind() {}

var _ Kind = ShiftRightLogical{}

// ShiftRightArithmetic shifts Dst right by Amount, copying the sign bit.
type ShiftRightArithmetic struct {
	Size   OpSize
	Dst    RegSelector
	Amount ShiftAmount
}

func (k ShiftRightArithmetic) String() string {
	return fmt.Sprintf("sar.%s %v, %v", sizeSuffix(k.Size), k.Dst, k.Amount)
}

func (k ShiftRightArithmetic) kind() {}

var _ Kind = ShiftRightArithmetic{}

// RotateLeft rotates Dst left by Amount, in place.
type RotateLeft struct {
	Size   OpSize
	Dst    RegSelector
	Amount ShiftAmount
}

func (k RotateLeft) String() string {
	return fmt.Sprintf("rol.%s %v, %v", sizeSuffix(k.Size), k.Dst, k.Amount)
}

func (k RotateLeft) kind() {}

var _ Kind = RotateLeft{}

// RotateRight rotates Dst right by Amount, in place.
type RotateRight struct {
	Size   OpSize
	Dst    RegSelector
	Amount ShiftAmount
}

func (k RotateRight) String() string {
	return fmt.Sprintf("ror.%s %v, %v", sizeSuffix(k.Size), k.Dst, k.Amount)
}

func (k RotateRight) kind() {}

var _ Kind = RotateRight{}

// BitAnd: dst = src & dst.
type BitAnd struct {
	Src RegSelector
	Dst RegSelector
}

func (k BitAnd) String() string {
	return fmt.Sprintf("and %v, %v", k.Src, k.Dst)
}

func (k BitAnd) kind() {}

var _ Kind = BitAnd{}

// BitOr: dst = src | dst.
type BitOr struct {
	Src RegSelector
	Dst RegSelector
}

func (k BitOr) String() string {
	return fmt.Sprintf("or %v, %v", k.Src, k.Dst)
}

func (k BitOr) kind() {}

var _ Kind = BitOr{}

// BitXor: dst = src ^ dst.
type BitXor struct {
	Src RegSelector
	Dst RegSelector
}

func (k BitXor) String() string {
	return fmt.Sprintf("xor %v, %v", k.Src, k.Dst)
}

func (k BitXor) kind() {}

var _ Kind = BitXor{}

// BitNand: dst = ^(src & dst).
type BitNand struct {
	Src RegSelector
	Dst RegSelector
}

func (k BitNand) String() string {
	return fmt.Sprintf("nand %v, %v", k.Src, k.Dst)
}

func (k BitNand) kind() {}

var _ Kind = BitNand{}

// BitNor: dst = ^(src | dst).
type BitNor struct {
	Src RegSelector
	Dst RegSelector
}

func (k BitNor) String() string {
	return fmt.Sprintf("nor %v, %v", k.Src, k.Dst)
}

func (k BitNor) kind() {}

var _ Kind = BitNor{}

// BitXnor: dst = ^(src ^ dst).
type BitXnor struct {
	Src RegSelector
	Dst RegSelector
}

func (k BitXnor) String() string {
	return fmt.Sprintf("xnor %v, %v", k.Src, k.Dst)
}

func (k BitXnor) kind() {}

var _ Kind = BitXnor{}

// UnaryBitNot: dst = ^dst.
type UnaryBitNot struct {
	Dst RegSelector
}

func (k UnaryBitNot) String() string {
	return fmt.Sprintf("not %v", k.Dst)
}

func (k UnaryBitNot) kind() {}

var _ Kind = UnaryBitNot{}
