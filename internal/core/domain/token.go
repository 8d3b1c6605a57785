package domain

// Spelling records how a flag argument was written on the command line.
type Spelling uint8

const (
	// SpellingNone marks a flag without an argument.
	SpellingNone Spelling = iota
	// SpellingJoined marks an argument glued to the flag name, as in -Idir.
	SpellingJoined
	// SpellingSeparate marks an argument given as the next token, as in -I dir.
	SpellingSeparate
)

// String returns a short name for the spelling.
func (s Spelling) String() string {
	switch s {
	case SpellingJoined:
		return "joined"
	case SpellingSeparate:
		return "separate"
	default:
		return "none"
	}
}

// FlagToken is a parsed flag together with its argument, if any.
type FlagToken struct {
	Name     string
	Value    string
	HasValue bool
	Spelling Spelling
	Spec     FlagSpec
}

// Args reproduces the command line tokens the flag was parsed from.
func (f FlagToken) Args() []string {
	switch {
	case !f.HasValue:
		return []string{f.Name}
	case f.Spelling == SpellingSeparate:
		return []string{f.Name, f.Value}
	default:
		return []string{f.Name + f.Value}
	}
}

// Token is either a flag or a plain argument such as a source or object file.
type Token struct {
	Flag  *FlagToken
	Plain string
}

// IsFlag reports whether the token is a flag.
func (t Token) IsFlag() bool {
	return t.Flag != nil
}

// Args reproduces the command line tokens of t.
func (t Token) Args() []string {
	if t.Flag != nil {
		return t.Flag.Args()
	}
	return []string{t.Plain}
}
