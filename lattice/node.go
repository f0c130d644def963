package lattice

import (
	"encoding/binary"
	"fmt"
)

// Node is a counted pattern: the candidate plus the transactions it was
// found in.
type Node struct {
	Pat Pattern
	Txs []int32
}

func (n *Node) Pattern() Pattern {
	return n.Pat
}

func (n *Node) Support() int {
	return len(n.Txs)
}

func (n *Node) Level() int {
	return n.Pat.Level()
}

func (n *Node) String() string {
	return fmt.Sprintf("<Node %v %v>", n.Pat, len(n.Txs))
}

// Label serializes a list of ids as a length prefixed run of big endian
// uint32s. Two patterns of the same kind are equal iff their labels are.
func Label(items []int32) []byte {
	bytes := make([]byte, 4*(len(items)+1))
	binary.BigEndian.PutUint32(bytes[0:4], uint32(len(items)))
	s := 4
	e := s + 4
	for _, item := range items {
		binary.BigEndian.PutUint32(bytes[s:e], uint32(item))
		s += 4
		e = s + 4
	}
	return bytes
}

// Compare orders id lists lexicographically, shorter lists first on a
// shared prefix.
func Compare(a, b []int32) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	if len(a) < len(b) {
		return -1
	} else if len(a) > len(b) {
		return 1
	}
	return 0
}
