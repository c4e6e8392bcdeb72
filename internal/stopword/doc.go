// Package stopword filters common words out of the token stream.
//
// The stopword set is the union of three sources, merged in order:
//
//  1. A built-in default English list, embedded in the binary.
//  2. An optional file, one stopword per line. If the path is given
//     explicitly and missing, that is an error; the conventional fallback
//     location (stopwords.txt one directory above the executable) is
//     merged silently when present.
//  3. Inline extra stopwords from the command line.
//
// All entries are trimmed and lowercased before insertion; the set is
// immutable once built.
package stopword
