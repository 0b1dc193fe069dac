// Package language defines syntax language descriptions consumed by the lexer:
// word lists, comment delimiters, fold tokens and character classes.
package language

// Definition describes a single language for styling and folding purposes.
// The zero value is a valid (empty) language that styles everything as
// default text.
type Definition struct {
	Name          string   `yaml:"name"`
	Extensions    []string `yaml:"extensions"`
	CaseSensitive bool     `yaml:"case_sensitive"`

	// Word lists by style category.
	Keywords   []string `yaml:"keywords"`
	Constants  []string `yaml:"constants"`
	Types      []string `yaml:"types"`
	Properties []string `yaml:"properties"`
	Functions  []string `yaml:"functions"`

	// Preprocessor directive prefix, eg. "#". Empty disables preprocessor
	// styling and fold keywords.
	Preprocessor string `yaml:"preprocessor"`

	// Block comment delimiters. CommentBegin and CommentEnd are parallel
	// lists indexed together.
	CommentBegin []string `yaml:"comment_begin"`
	CommentEnd   []string `yaml:"comment_end"`

	// Line comment prefixes and the doc comment prefix. DocComment is
	// checked before LineComment so "///" can shadow "//".
	LineComment []string `yaml:"line_comment"`
	DocComment  string   `yaml:"doc_comment"`

	// Generic fold delimiters, eg. "{" and "}".
	BlockBegin string `yaml:"block_begin"`
	BlockEnd   string `yaml:"block_end"`

	// Fold keywords. PPBlockBegin/End apply to preprocessor words
	// (eg. #ifdef/#endif), WordBlockBegin/End to plain words (eg. do/loop).
	// All are matched lowercase.
	PPBlockBegin   []string `yaml:"pp_block_begin"`
	PPBlockEnd     []string `yaml:"pp_block_end"`
	WordBlockBegin []string `yaml:"word_block_begin"`
	WordBlockEnd   []string `yaml:"word_block_end"`

	// Optional character class overrides. Empty keeps the lexer defaults.
	WordChars     string `yaml:"word_chars"`
	OperatorChars string `yaml:"operator_chars"`

	// CallStyling enables call-aware function styling: identifiers are only
	// styled as functions when followed by "(".
	CallStyling bool `yaml:"call_styling"`
}

// Validate normalizes a definition so it is safe to hand to the lexer.
// Mismatched comment delimiter lists are truncated to the shorter length
// rather than rejected.
func (d *Definition) Validate() {
	if len(d.CommentBegin) != len(d.CommentEnd) {
		n := min(len(d.CommentBegin), len(d.CommentEnd))
		d.CommentBegin = d.CommentBegin[:n]
		d.CommentEnd = d.CommentEnd[:n]
	}
}
