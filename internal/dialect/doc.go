// Package dialect collects lightweight signals about which language a file is
// written in. The lexer records keyword and token-pair evidence; the driver
// combines it with the file extension to refuse sources that are really C#.
//
// Evidence collection never changes how tokens are produced.
package dialect
