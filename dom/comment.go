package dom

// CommentPlacement locates a comment relative to the value it
// annotates.
type CommentPlacement int

const (
	// CommentBefore places a comment on the lines before the value.
	CommentBefore CommentPlacement = iota
	// CommentAfterOnSameLine places a comment at the end of the value's
	// line.
	CommentAfterOnSameLine
	// CommentAfter places a comment on the lines after the value.
	CommentAfter
)

// The comment accessors are a compatibility surface. This model is
// purely semantic and stores no comments: setting is a no-op and
// querying reports none.

func (v *Value) SetComment(text string, p CommentPlacement) {}

func (v *Value) HasComment(p CommentPlacement) bool { return false }

func (v *Value) Comment(p CommentPlacement) string { return "" }
