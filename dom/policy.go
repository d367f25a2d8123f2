package dom

// Policy selects how a value or key owns its string text.
type Policy uint8

const (
	// OwnPolicy holds an owned copy of the text. The default for
	// FromString, FromBytes and NameKey.
	OwnPolicy Policy = iota

	// BorrowPolicy aliases caller-owned text whose backing storage
	// outlives every tree that references it. Clones keep the alias.
	BorrowPolicy

	// OwnOnCopyPolicy aliases the text like BorrowPolicy, but the first
	// Clone takes an owned copy. The source keeps borrowing.
	OwnOnCopyPolicy
)

func (p Policy) String() string {
	s, ok := map[Policy]string{
		OwnPolicy:       "Own",
		BorrowPolicy:    "Borrow",
		OwnOnCopyPolicy: "OwnOnCopy",
	}[p]
	if ok {
		return s
	}
	return "<unknown policy>"
}

// StaticString marks text whose backing storage outlives any tree that
// references it, such as a string literal or an arena the caller keeps
// alive. Constructors taking a StaticString alias the text instead of
// copying it; untyped string constants convert implicitly, anything
// else needs an explicit conversion at the call site.
type StaticString string
