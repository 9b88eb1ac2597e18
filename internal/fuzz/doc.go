// Package fuzztests holds fuzz harnesses for the analysis pipeline
// (source -> lexer -> parser -> rules). They look for panics, hangs and
// findings without a line on arbitrary input.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
