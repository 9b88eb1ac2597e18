// Package token defines lexical token kinds and trivia for Visual Basic source.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Keywords are matched case-insensitively; Token.Text keeps the spelling used in the file.
//   - Statement-terminating newlines are EOL tokens. Blank lines, whole-line comments
//     and preprocessor directives are leading Trivia of the next token.
//   - Built-in type names (Integer, String, Object, ...) and contextual words
//     (Strict, Explicit, On, Off, Await, From, Key, ...) are identifiers.
package token
