// Package source provides rune-offset span tracking shared by the lexer,
// parser and diagnostic printer.
package source

import "fmt"

// Span identifies a half-open range [Start, End) of rune offsets into a
// File's contents.
type Span struct {
	start int
	end   int
}

// NewSpan constructs a span over [start, end).
func NewSpan(start, end int) Span {
	return Span{start, end}
}

// Start returns the starting offset of this span.
func (s Span) Start() int { return s.start }

// End returns the (exclusive) ending offset of this span.
func (s Span) End() int { return s.end }

// Length returns the number of runes covered by this span.
func (s Span) Length() int { return s.end - s.start }

// Line describes a single physical line of a File.
type Line struct {
	text   []rune
	span   Span
	number int
}

// String returns the text of this line.
func (l Line) String() string { return string(l.text[l.span.start:l.span.end]) }

// Number returns the 1-based line number.
func (l Line) Number() int { return l.number }

// Start returns the offset of the first rune of this line in the file.
func (l Line) Start() int { return l.span.start }

// Column computes the 1-based column of an absolute offset known to lie on
// this line.
func (l Line) Column(offset int) int { return offset - l.span.start + 1 }

// File wraps the contents of a single OpenQASM source unit.
type File struct {
	name     string
	contents []rune
}

// NewFile constructs a File from raw bytes, decoding them as UTF-8.
func NewFile(name string, contents []byte) *File {
	return &File{name: name, contents: []rune(string(contents))}
}

// Name returns the name this file was constructed with (a path, or a
// placeholder such as "<source>").
func (f *File) Name() string { return f.name }

// Contents returns the decoded rune slice backing this file.
func (f *File) Contents() []rune { return f.contents }

// Len returns the number of runes in this file.
func (f *File) Len() int { return len(f.contents) }

// FindFirstEnclosingLine returns the physical line containing the start of
// span. If span starts beyond the end of the file, the last line is
// returned.
func (f *File) FindFirstEnclosingLine(span Span) Line {
	index := span.start
	num := 1
	start := 0

	for i := 0; i < len(f.contents); i++ {
		if i == index {
			end := findEndOfLine(index, f.contents)
			return Line{f.contents, Span{start, end}, num}
		} else if f.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}

	return Line{f.contents, Span{start, len(f.contents)}, num}
}

func findEndOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}

	return len(text)
}

// SyntaxError is the common shape of every position-carrying error produced
// by the front end.
type SyntaxError struct {
	File    *File
	Span    Span
	Message string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.File == nil {
		return fmt.Sprintf("%d:%d: %s", e.Span.start, e.Span.end, e.Message)
	}

	line := e.File.FindFirstEnclosingLine(e.Span)

	return fmt.Sprintf("%s:%d:%d: %s", e.File.Name(), line.Number(), line.Column(e.Span.start), e.Message)
}
