package lexer

type operatorEntry struct {
	lexeme string
	kind   TokenKind
}

// operatorTable is checked longest-lexeme-first so that e.g. "===" wins
// over "==" and "=".
var operatorTable = []operatorEntry{
	// 3-char
	{"===", TIdentical},
	{"!==", TNotIdentical},
	{"<<=", TShlEq},
	{">>=", TShrEq},
	{"**=", TStarStarEq},
	{"<=>", TSpaceship},
	{"??=", TCoalesceEq},
	{"...", TEllipsis},
	{"?->", TNullsafeArrow},
	// 2-char
	{"++", TIncrement},
	{"--", TDecrement},
	{"==", TEq},
	{"!=", TNotEq},
	{"<>", TAltNotEq},
	{"<=", TLe},
	{">=", TGe},
	{"<<", TShl},
	{">>", TShr},
	{"&&", TAndAnd},
	{"||", TOrOr},
	{"??", TCoalesce},
	{"->", TArrow},
	{"=>", TDoubleArrow},
	{"::", TDoubleColon},
	{"+=", TPlusEq},
	{"-=", TMinusEq},
	{"*=", TStarEq},
	{"/=", TSlashEq},
	{"%=", TPercentEq},
	{".=", TDotEq},
	{"&=", TAmpEq},
	{"|=", TPipeEq},
	{"^=", TCaretEq},
	{"**", TStarStar},
	{"?>", TCloseTag},
	// 1-char
	{"+", TPlus},
	{"-", TMinus},
	{"*", TStar},
	{"/", TSlash},
	{"%", TPercent},
	{".", TDot},
	{"=", TAssign},
	{"<", TLt},
	{">", TGt},
	{"!", TNot},
	{"&", TAmp},
	{"|", TPipe},
	{"^", TCaret},
	{"~", TTilde},
	{"?", TQuestion},
	{":", TColon},
	{";", TSemicolon},
	{",", TComma},
	{"@", TAt},
	{"$", TDollar},
	{"\\", TBackslash},
	{"(", TLParen},
	{")", TRParen},
	{"{", TLBrace},
	{"}", TRBrace},
	{"[", TLBracket},
	{"]", TRBracket},
}

// matchOperator performs a longest-match lookup at the cursor. Callers
// pass up to a 3-byte lookahead window; matchOperator checks 3, then 2,
// then 1 characters.
func matchOperator(window string) (operatorEntry, bool) {
	for length := 3; length >= 1; length-- {
		if len(window) < length {
			continue
		}
		candidate := window[:length]
		for _, op := range operatorTable {
			if len(op.lexeme) == length && op.lexeme == candidate {
				return op, true
			}
		}
	}
	return operatorEntry{}, false
}
