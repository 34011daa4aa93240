package combine

// MatchedFile is a file that survived exclude and include filtering.
type MatchedFile struct {
	Path     string // Root joined with RelPath; used as the document heading.
	Root     string // Root directory the file was found under.
	RelPath  string // Slash-separated path relative to Root.
	Language string // Fence language tag; empty when the extension is unknown.
}

// Result summarizes one gather run.
type Result struct {
	Files   []MatchedFile // Files written to the document, in discovery order.
	Skipped []string      // Paths whose content could not be embedded.
	Output  string        // Path of the written document.
}
