// Package alphabet maps the 26 Latin letters to indices 0..25 and back.
//
// It also provides the lenient input filter used before text reaches the
// cipher engine: non-letters are dropped and lowercase letters are folded to
// uppercase.
package alphabet
