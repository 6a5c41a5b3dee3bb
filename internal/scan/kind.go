package scan

import (
	"fmt"
)

// Kind classifies an extracted symbol.
type Kind int

const (
	KindPackage Kind = iota
	KindMessage
	KindField
	KindEnumConstant
	KindEnum
	KindService
	KindRpc
)

type kindInfo struct {
	letter  byte
	name    string
	plural  string
	enabled bool
}

var kindTable = [...]kindInfo{
	KindPackage:      {'p', "package", "packages", true},
	KindMessage:      {'m', "message", "messages", true},
	KindField:        {'f', "field", "fields", true},
	KindEnumConstant: {'e', "enumerator", "enum constants", true},
	KindEnum:         {'g', "enum", "enum types", true},
	KindService:      {'s', "service", "services", true},
	KindRpc:          {'r', "rpc", "RPC methods", false},
}

// Letter is the single-character short code used in tag file output.
func (k Kind) Letter() byte {
	return kindTable[k].letter
}

func (k Kind) Name() string {
	return kindTable[k].name
}

func (k Kind) Plural() string {
	return kindTable[k].plural
}

// EnabledByDefault reports whether tags of this kind are emitted when no
// explicit kind selection is configured. RPC methods are opt-in.
func (k Kind) EnabledByDefault() bool {
	return kindTable[k].enabled
}

func (k Kind) String() string {
	return kindTable[k].name
}

func Kinds() []Kind {
	kinds := make([]Kind, len(kindTable))
	for i := range kindTable {
		kinds[i] = Kind(i)
	}
	return kinds
}

func KindFromLetter(letter byte) (Kind, bool) {
	for i, info := range kindTable {
		if info.letter == letter {
			return Kind(i), true
		}
	}
	return 0, false
}

func KindFromName(name string) (Kind, bool) {
	for i, info := range kindTable {
		if info.name == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// KindSet selects which kinds a sink should accept.
type KindSet map[Kind]bool

// DefaultKinds returns the kind selection implied by the kind table.
func DefaultKinds() KindSet {
	set := KindSet{}
	for _, k := range Kinds() {
		if k.EnabledByDefault() {
			set[k] = true
		}
	}
	return set
}

// KindsFromLetters builds a selection from a string of short codes, e.g.
// "pmfegsr" for everything.
func KindsFromLetters(letters string) (KindSet, error) {
	set := KindSet{}
	for i := 0; i < len(letters); i++ {
		k, ok := KindFromLetter(letters[i])
		if !ok {
			return nil, fmt.Errorf("unknown kind letter `%c`", letters[i])
		}
		set[k] = true
	}
	return set, nil
}
