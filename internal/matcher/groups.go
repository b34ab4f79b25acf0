package matcher

// AssignGroupNumbers walks tokens in source order and assigns each
// CaptureGroup a unique, contiguous index starting at 1.
//
// Alternation branches are numbered by pre-order traversal of ALL branches,
// not just the first — the "(b), preferred" resolution of the REDESIGN FLAG
// in the spec's group-numbering open question. This means `((a)|(b))` assigns
// index 1 to the outer group and distinct indices 2 and 3 to the two branch
// groups.
func AssignGroupNumbers(tokens []Token) {
	counter := 1
	assignGroupNumbers(tokens, &counter)
}

func assignGroupNumbers(tokens []Token, counter *int) {
	for i := range tokens {
		assignOne(&tokens[i], counter)
	}
}

func assignOne(tok *Token, counter *int) {
	switch tok.Kind {
	case KindCaptureGroup:
		tok.Group = *counter
		*counter++
		assignGroupNumbers(tok.Inner, counter)
	case KindAlternation:
		for bi := range tok.Branches {
			assignGroupNumbers(tok.Branches[bi], counter)
		}
	case KindQuantifier, KindExactRepetition, KindRangeRepetition:
		assignOne(tok.Wrapped, counter)
	}
}
