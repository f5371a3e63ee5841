//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package highlight

const cOperators = "+-*/%=<>!&|^~?:;,.()[]{}"

var cKeywords = []string{
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"inline", "int", "long", "register", "restrict", "return", "short",
	"signed", "sizeof", "static", "struct", "switch", "typedef", "union",
	"unsigned", "void", "volatile", "while", "_Bool", "_Complex",
	"_Alignas", "_Alignof", "_Atomic", "_Generic", "_Noreturn",
	"_Static_assert", "_Thread_local", "bool", "true", "false",
}

var cTypes = []string{
	"size_t", "ssize_t", "ptrdiff_t", "intptr_t", "uintptr_t",
	"int8_t", "int16_t", "int32_t", "int64_t",
	"uint8_t", "uint16_t", "uint32_t", "uint64_t",
	"FILE", "va_list", "wchar_t", "off_t",
}

// C returns the grammar of C.
func C() Grammar {
	return Grammar{
		Name:        "c",
		Keywords:    cKeywords,
		Types:       cTypes,
		Directive:   '#',
		LineComment: "//",
		BlockOpen:   "/*",
		BlockClose:  "*/",
		Quotes:      `"`,
		CharQuote:   '\'',
		Operators:   cOperators,
		Functions:   true,
		Macros:      true,
	}
}

// CPP returns the grammar of C++.
func CPP() Grammar {
	g := C()
	g.Name = "cpp"
	g.Keywords = append(append([]string{}, cKeywords...),
		"alignas", "alignof", "and", "asm", "catch", "class", "co_await",
		"co_return", "co_yield", "concept", "consteval", "constexpr",
		"constinit", "const_cast", "decltype", "delete", "dynamic_cast",
		"explicit", "export", "friend", "mutable", "namespace", "new",
		"noexcept", "not", "nullptr", "operator", "or", "override", "final",
		"private", "protected", "public", "reinterpret_cast", "requires",
		"static_assert", "static_cast", "template", "this", "thread_local",
		"throw", "try", "typeid", "typename", "using", "virtual", "wchar_t",
		"char8_t", "char16_t", "char32_t",
	)
	g.Types = append(append([]string{}, cTypes...),
		"string", "vector", "map", "unordered_map", "set", "unique_ptr",
		"shared_ptr", "string_view", "optional", "array", "pair", "tuple",
	)
	g.Raw = RawCpp
	g.Generics = true
	return g
}

// Go returns the grammar of Go.
func Go() Grammar {
	return Grammar{
		Name: "go",
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
			"interface", "map", "package", "range", "return", "select",
			"struct", "switch", "type", "var", "true", "false", "nil", "iota",
		},
		Types: []string{
			"bool", "byte", "complex64", "complex128", "error", "float32",
			"float64", "int", "int8", "int16", "int32", "int64", "rune",
			"string", "uint", "uint8", "uint16", "uint32", "uint64",
			"uintptr", "any", "comparable",
		},
		LineComment: "//",
		BlockOpen:   "/*",
		BlockClose:  "*/",
		Quotes:      `"`,
		CharQuote:   '\'',
		RawQuotes:   "`",
		Operators:   cOperators,
		Functions:   true,
		Generics:    false,
	}
}

// Rust returns the grammar of Rust.
func Rust() Grammar {
	return Grammar{
		Name: "rust",
		Keywords: []string{
			"as", "async", "await", "break", "const", "continue", "crate",
			"dyn", "else", "enum", "extern", "false", "fn", "for", "if",
			"impl", "in", "let", "loop", "match", "mod", "move", "mut", "pub",
			"ref", "return", "self", "Self", "static", "struct", "super",
			"trait", "true", "type", "unsafe", "use", "where", "while",
		},
		Types: []string{
			"bool", "char", "str", "i8", "i16", "i32", "i64", "i128", "isize",
			"u8", "u16", "u32", "u64", "u128", "usize", "f32", "f64",
			"String", "Vec", "Option", "Result", "Box", "Rc", "Arc",
		},
		LineComment:    "//",
		BlockOpen:      "/*",
		BlockClose:     "*/",
		NestedComments: true,
		Quotes:         `"`,
		CharQuote:      '\'',
		Lifetimes:      true,
		Raw:            RawHash,
		Operators:      cOperators + "#@",
		Functions:      true,
		Generics:       true,
		Macros:         true,
	}
}

// JavaScript returns the grammar of JavaScript and TypeScript.
func JavaScript() Grammar {
	return Grammar{
		Name: "javascript",
		Keywords: []string{
			"async", "await", "break", "case", "catch", "class", "const",
			"continue", "debugger", "default", "delete", "do", "else",
			"export", "extends", "false", "finally", "for", "from", "function",
			"if", "import", "in", "instanceof", "let", "new", "null", "of",
			"return", "static", "super", "switch", "this", "throw", "true",
			"try", "typeof", "undefined", "var", "void", "while", "yield",
			"interface", "type", "enum", "implements",
		},
		Types: []string{
			"number", "string", "boolean", "any", "unknown", "never",
			"object", "Array", "Promise", "Map", "Set",
		},
		LineComment: "//",
		BlockOpen:   "/*",
		BlockClose:  "*/",
		Quotes:      `"'`,
		RawQuotes:   "`",
		Operators:   cOperators,
		IdentExtra:  "$",
		Functions:   true,
		Macros:      true,
	}
}

// Shell returns the grammar of POSIX shells.
func Shell() Grammar {
	return Grammar{
		Name: "shell",
		Keywords: []string{
			"if", "then", "else", "elif", "fi", "for", "while", "until", "do",
			"done", "case", "esac", "in", "function", "return", "local",
			"export", "readonly", "shift", "break", "continue", "exit",
			"select", "time",
		},
		LineComment:   "#",
		CommentAtWord: true,
		Quotes:        `"`,
		LiteralQuotes: "'",
		RawQuotes:     "",
		Operators:     "|&;<>()=!",
		Variables:     true,
		TrailingSpace: true,
	}
}

// Lisp returns the grammar of Lisp dialects.
func Lisp() Grammar {
	return Grammar{
		Name: "lisp",
		Keywords: []string{
			"define", "defun", "defmacro", "defvar", "lambda", "let", "let*",
			"letrec", "if", "cond", "case", "when", "unless", "and", "or",
			"not", "begin", "progn", "do", "quote", "set!", "setq", "else",
		},
		LineComment:   ";",
		BlockOpen:     "#|",
		BlockClose:    "|#",
		Quotes:        `"`,
		Operators:     "()'`,",
		IdentExtra:    "-+*/<>=!?:.%&^~",
		TrailingSpace: true,
	}
}
