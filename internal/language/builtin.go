package language

// Builtin language definitions. User definitions loaded from YAML can
// override these by registering under the same name.

// ZScript returns the definition for the ZScript scripting language.
// Function styling is call-aware: an identifier is only styled as a function
// when followed by "(".
func ZScript() *Definition {
	return &Definition{
		Name:          "zscript",
		Extensions:    []string{".zs", ".zsc", ".zscript"},
		CaseSensitive: false,
		CallStyling:   true,
		Keywords: []string{
			"abstract", "action", "array", "break", "case", "class", "const",
			"continue", "default", "do", "else", "enum", "extend", "fail",
			"false", "final", "flagdef", "for", "foreach", "goto", "if", "in",
			"is", "let", "loop", "mixin", "native", "new", "none", "null",
			"out", "override", "play", "private", "property", "protected",
			"readonly", "replaces", "return", "self", "states", "static",
			"stop", "struct", "super", "switch", "transient", "true", "ui",
			"until", "version", "virtual", "virtualscope", "wait", "while",
		},
		Types: []string{
			"bool", "color", "double", "float", "int", "int16", "int8",
			"map", "name", "sound", "spriteid", "state", "statelabel",
			"string", "textureid", "uint", "uint16", "uint8", "vector2",
			"vector3", "void", "voidptr",
		},
		Constants: []string{
			"defaultalpha", "double_epsilon", "flt_epsilon", "m_e", "m_pi",
		},
		Functions: []string{
			"abs", "acos", "asin", "atan", "atan2", "ceil", "clamp", "cos",
			"cosh", "exp", "floor", "log", "log10", "max", "min", "random",
			"randompick", "round", "sin", "sinh", "sqrt", "tan", "tanh",
		},
		Preprocessor: "#",
		CommentBegin: []string{"/*"},
		CommentEnd:   []string{"*/"},
		LineComment:  []string{"//"},
		DocComment:   "///",
		BlockBegin:   "{",
		BlockEnd:     "}",
		PPBlockBegin: []string{"#region"},
		PPBlockEnd:   []string{"#endregion"},
	}
}

// CStyle returns a generic C-like definition used as a fallback for common
// source files.
func CStyle() *Definition {
	return &Definition{
		Name:          "cstyle",
		Extensions:    []string{".c", ".h", ".cpp", ".hpp", ".cc", ".cs", ".acs"},
		CaseSensitive: true,
		Keywords: []string{
			"break", "case", "const", "continue", "default", "do", "else",
			"enum", "for", "goto", "if", "return", "sizeof", "static",
			"struct", "switch", "typedef", "union", "while",
		},
		Types: []string{
			"bool", "char", "double", "float", "int", "long", "short",
			"signed", "unsigned", "void",
		},
		Constants:    []string{"false", "null", "true"},
		Preprocessor: "#",
		CommentBegin: []string{"/*"},
		CommentEnd:   []string{"*/"},
		LineComment:  []string{"//"},
		DocComment:   "///",
		BlockBegin:   "{",
		BlockEnd:     "}",
		PPBlockBegin: []string{"#if", "#ifdef", "#ifndef", "#region"},
		PPBlockEnd:   []string{"#endif", "#endregion"},
	}
}

// Builtins returns all builtin definitions.
func Builtins() []*Definition {
	return []*Definition{ZScript(), CStyle()}
}
