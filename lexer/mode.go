package lexer

// Mode is the tokenizer's small explicit state: whether it is scanning
// raw HTML, PHP code, or streaming the body of a heredoc/nowdoc.
type Mode int

const (
	ModeOutOfTag Mode = iota
	ModeInTag
	ModePendingHeredoc
)

func (m Mode) String() string {
	switch m {
	case ModeOutOfTag:
		return "OutOfTag"
	case ModeInTag:
		return "InTag"
	case ModePendingHeredoc:
		return "PendingHeredoc"
	default:
		return "Unknown"
	}
}

// heredocState carries the label and nowdoc-ness of a pending heredoc
// body, consumed by the next NextToken call once the mode is
// ModePendingHeredoc.
type heredocState struct {
	label    string
	isNowdoc bool
}
