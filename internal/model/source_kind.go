package model

// SourceKind identifies which kind of input files a corpus directory
// resolved to. Exactly one kind is processed per run: LaTeX sources take
// precedence over PDFs, which take precedence over Markdown.
type SourceKind int

const (
	// SourceNone means no input files were resolved yet.
	SourceNone SourceKind = iota

	// SourceLaTeX means the corpus consists of .tex files.
	SourceLaTeX

	// SourcePDF means the corpus consists of .pdf files.
	SourcePDF

	// SourceMarkdown means the corpus consists of .md files.
	SourceMarkdown
)

// String returns a human-readable name for the source kind.
func (k SourceKind) String() string {
	switch k {
	case SourceLaTeX:
		return "latex"
	case SourcePDF:
		return "pdf"
	case SourceMarkdown:
		return "markdown"
	default:
		return "none"
	}
}

// Pattern returns the glob pattern matching files of this kind.
func (k SourceKind) Pattern() string {
	switch k {
	case SourceLaTeX:
		return "*.tex"
	case SourcePDF:
		return "*.pdf"
	case SourceMarkdown:
		return "*.md"
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler so the kind serializes
// as its name in JSON reports instead of a bare integer.
func (k SourceKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
