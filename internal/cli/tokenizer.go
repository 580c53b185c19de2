package cli

// tokenizer is a read cursor over the normalized token list with
// front-removal semantics. Lookahead is strictly one token: peek
// classifies the front token without consuming it, and consumePeeked
// removes it once the caller has acted on the peeked value.
type tokenizer struct {
	args []string
}

func newTokenizer(args []string) *tokenizer {
	return &tokenizer{args: args}
}

func (t *tokenizer) hasMore() bool {
	return len(t.args) > 0
}

// pop removes and classifies the front token. Callers must check
// hasMore first.
func (t *tokenizer) pop() token {
	tok := classify(t.args[0])
	t.args = t.args[1:]
	return tok
}

func (t *tokenizer) peek() (token, bool) {
	if len(t.args) == 0 {
		return token{}, false
	}
	return classify(t.args[0]), true
}

func (t *tokenizer) consumePeeked() {
	t.args = t.args[1:]
}

// rawPop removes and returns the front token verbatim, with no
// classification. Used exclusively for pass-through flag values,
// which must be stored exactly as given even when they look like
// flags themselves.
func (t *tokenizer) rawPop(flag string) (string, error) {
	if len(t.args) == 0 {
		return "", usageErr(ImplyUsage, "expected argument following '%s'", flag)
	}
	arg := t.args[0]
	t.args = t.args[1:]
	return arg, nil
}
