package hashcode

import "fmt"

// Code is a hash code: a 16-bit summary of a value. Codes have no
// identity beyond their number; equal values must produce equal codes,
// but distinct values are allowed to collide.
type Code uint16

// Mix combines two codes into one: (73*h1 + 51*h2) mod 65536.
// It is deterministic and pure but NOT commutative or associative, so
// every strategy fixes the order in which it mixes, and the tests pin
// the resulting codes.
func Mix(h1 Code, h2 Code) Code {
	// 73*65535 + 51*65535 fits comfortably in 32 bits.
	return Code((73*uint32(h1) + 51*uint32(h2)) % 65536)
}

func (c Code) String() string {
	return fmt.Sprintf("%d", uint16(c))
}
