package snarl

import "github.com/vgteam/saboten/biedged"

// Type distinguishes the two ways a snarl's boundaries can arise
// (spec.md §5): a ChainPair is two endpoints that lie on the same
// cactus cycle, a BridgePair is the two ends of a path of bridge edges
// in the bridge forest.
type Type int

const (
	ChainPair Type = iota
	BridgePair
)

func (t Type) String() string {
	if t == BridgePair {
		return "bridge-pair"
	}

	return "chain-pair"
}

// Snarl is a boundary pair plus an arbitrary payload T. Left is always
// the smaller of the two boundary ids, Right the larger (spec.md §9
// "Snarl equality": "two snarls with the same boundary pair and type
// are equal regardless of data" — canonicalizing left/right is what
// makes that equality well defined).
type Snarl[T any] struct {
	Left  biedged.ID
	Right biedged.ID
	Ty    Type
	Data  T
}

func canonical(x, y biedged.ID) (left, right biedged.ID) {
	if x <= y {
		return x, y
	}

	return y, x
}

// NewChainPair builds a ChainPair snarl with the zero value of T as
// its payload.
func NewChainPair[T any](x, y biedged.ID) Snarl[T] {
	left, right := canonical(x, y)

	return Snarl[T]{Left: left, Right: right, Ty: ChainPair}
}

// NewBridgePair builds a BridgePair snarl with the zero value of T as
// its payload.
func NewBridgePair[T any](x, y biedged.ID) Snarl[T] {
	left, right := canonical(x, y)

	return Snarl[T]{Left: left, Right: right, Ty: BridgePair}
}

// NewChainPairWith builds a ChainPair snarl carrying data.
func NewChainPairWith[T any](x, y biedged.ID, data T) Snarl[T] {
	left, right := canonical(x, y)

	return Snarl[T]{Left: left, Right: right, Ty: ChainPair, Data: data}
}

// NewBridgePairWith builds a BridgePair snarl carrying data.
func NewBridgePairWith[T any](x, y biedged.ID, data T) Snarl[T] {
	left, right := canonical(x, y)

	return Snarl[T]{Left: left, Right: right, Ty: BridgePair, Data: data}
}

// MapData returns a copy of s with its payload transformed by f. It is
// a free function rather than a method because Go methods cannot add a
// type parameter beyond the receiver's own.
func MapData[T, U any](s Snarl[T], f func(T) U) Snarl[U] {
	return Snarl[U]{Left: s.Left, Right: s.Right, Ty: s.Ty, Data: f(s.Data)}
}

// Equal reports whether two snarls share the same canonical boundary
// pair and type; payload data never participates (spec.md §9).
func Equal[T comparable](a, b Snarl[T]) bool {
	return a.Left == b.Left && a.Right == b.Right && a.Ty == b.Ty
}
