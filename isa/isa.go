// Package isa defines the Stack Cats instruction alphabet.
//
// Every instruction character has a mirror partner, and the partner is its semantic inverse.
// Brackets mirror their opposite bracket; all other characters mirror themselves.
// This table is the only place where mirror pairs and loop brackets are declared.
package isa

type Op uint8

const (
	OpInvalid Op = iota

	// symmetric pairs
	OpSignOpen   // (
	OpSignClose  // )
	OpMoveLeft   // <
	OpMoveRight  // >
	OpPushLeft   // [
	OpPushRight  // ]
	OpSwapLeft   // /
	OpSwapRight  // \
	OpValueOpen  // {
	OpValueClose // }

	// self-symmetric
	OpBitNot     // !
	OpNegate     // -
	OpToggle     // *
	OpXor        // ^
	OpSub        // _
	OpSwap       // :
	OpSwapThird  // +
	OpReverseRun // |
	OpExchange   // =
	OpRotate     // X
	OpRelocate   // I
	OpReverse    // T
	OpDebug      // "

	NumOps
)

type Bracket uint8

const (
	NotBracket Bracket = iota
	SignOpen
	SignClose
	ValueOpen
	ValueClose
)

func (b Bracket) Opens() bool {
	return b == SignOpen || b == ValueOpen
}

func (b Bracket) Closes() bool {
	return b == SignClose || b == ValueClose
}

type Info struct {
	Char    byte
	Mirror  byte
	Name    string
	Bracket Bracket
}

var infos = [NumOps]Info{
	OpSignOpen:   {'(', ')', "sign loop open", SignOpen},
	OpSignClose:  {')', '(', "sign loop close", SignClose},
	OpMoveLeft:   {'<', '>', "move left", NotBracket},
	OpMoveRight:  {'>', '<', "move right", NotBracket},
	OpPushLeft:   {'[', ']', "push left", NotBracket},
	OpPushRight:  {']', '[', "push right", NotBracket},
	OpSwapLeft:   {'/', '\\', "swap left", NotBracket},
	OpSwapRight:  {'\\', '/', "swap right", NotBracket},
	OpValueOpen:  {'{', '}', "value loop open", ValueOpen},
	OpValueClose: {'}', '{', "value loop close", ValueClose},

	OpBitNot:     {'!', '!', "bitwise not", NotBracket},
	OpNegate:     {'-', '-', "negate", NotBracket},
	OpToggle:     {'*', '*', "toggle parity", NotBracket},
	OpXor:        {'^', '^', "xor", NotBracket},
	OpSub:        {'_', '_', "subtract", NotBracket},
	OpSwap:       {':', ':', "swap top two", NotBracket},
	OpSwapThird:  {'+', '+', "swap top and third", NotBracket},
	OpReverseRun: {'|', '|', "reverse run", NotBracket},
	OpExchange:   {'=', '=', "exchange neighbours", NotBracket},
	OpRotate:     {'X', 'X', "swap neighbours", NotBracket},
	OpRelocate:   {'I', 'I', "relocate and negate", NotBracket},
	OpReverse:    {'T', 'T', "reverse stack", NotBracket},
	OpDebug:      {'"', '"', "debug checkpoint", NotBracket},
}

var byChar = func() (ret [256]Op) {
	for op := OpInvalid + 1; op < NumOps; op++ {
		ret[infos[op].Char] = op
	}
	return
}()

// Lookup returns the op for an instruction character.
func Lookup(c byte) (Op, bool) {
	op := byChar[c]
	return op, op != OpInvalid
}

func (o Op) Info() Info {
	if o >= NumOps {
		return Info{}
	}
	return infos[o]
}

func (o Op) Char() byte {
	return o.Info().Char
}

func (o Op) String() string {
	if o == OpInvalid || o >= NumOps {
		return "invalid"
	}
	return infos[o].Name
}

// Mirror returns the mirror partner of c. Characters outside the alphabet mirror themselves.
func Mirror(c byte) byte {
	if op, ok := Lookup(c); ok {
		return infos[op].Mirror
	}
	return c
}

// IsPaired reports whether c has a mirror partner other than itself.
func IsPaired(c byte) bool {
	return Mirror(c) != c
}

// MirrorString mirrors every character of s and reverses the result.
func MirrorString(s string) string {
	buf := make([]byte, len(s))
	for i := range len(s) {
		buf[len(s)-1-i] = Mirror(s[i])
	}
	return string(buf)
}

// Alphabet returns every instruction character in op order.
func Alphabet() string {
	buf := make([]byte, 0, NumOps)
	for op := OpInvalid + 1; op < NumOps; op++ {
		buf = append(buf, infos[op].Char)
	}
	return string(buf)
}
