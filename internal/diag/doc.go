// Package diag defines the diagnostic model for the front-end phases.
//
// Lexer and parser problems (unterminated literals, unbalanced blocks, I/O
// failures) are Diagnostics. Rule findings are not: they live in package
// rules and are rendered by the report layer. A Bag holding any SevError
// diagnostic marks the input as unparseable, and the engine then refuses
// to run rules for it.
//
// Producers emit through a Reporter so they do not depend on storage;
// BagReporter collects into a Bag, which supports sorting and deduplication.
package diag
