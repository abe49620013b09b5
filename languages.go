package nanohighlight

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed rules/*.nanorc
var rulesFS embed.FS

// Language describes one highlighting ruleset shipped with nano-highlight.
type Language struct {
	ID         string   // python, javascript, html, css
	Name       string   // display name used in the rule header and the report
	Extensions []string // file extensions the ruleset's syntax line matches

	content []byte // set by loadRules
}

// Languages is the fixed set of rulesets, in include order.
var Languages = []*Language{
	{ID: "python", Name: "Python", Extensions: []string{".py"}},
	{ID: "javascript", Name: "JavaScript", Extensions: []string{".js"}},
	{ID: "html", Name: "HTML", Extensions: []string{".html", ".htm"}},
	{ID: "css", Name: "CSS", Extensions: []string{".css"}},
}

// FileName returns the rule file's base name, e.g. "python.nanorc".
func (l *Language) FileName() string {
	return l.ID + ".nanorc"
}

// IncludePath is the ~-relative path the master config uses to load l.
func (l *Language) IncludePath() string {
	return "~/.nano/" + l.FileName()
}

// Content returns the embedded rule text for l.
func (l *Language) Content() []byte {
	return l.content
}

func init() {
	loadRules()
}

// loadRules attaches each Language's embedded ruleset.  A Language without a
// rules/<id>.nanorc file, or a file without a Language, is a build mistake,
// so it panics rather than surfacing at write time.
func loadRules() {
	seen := make(map[string]bool, len(Languages))
	for _, l := range Languages {
		b, err := rulesFS.ReadFile("rules/" + l.FileName())
		if err != nil {
			panic(fmt.Sprintf("ruleset %s: %v", l.ID, err))
		}
		l.content = b
		seen[l.FileName()] = true
	}
	ents, err := fs.ReadDir(rulesFS, "rules")
	if err != nil {
		panic(fmt.Sprintf("rules: %v", err))
	}
	for _, e := range ents {
		if !seen[e.Name()] {
			panic(fmt.Sprintf("rules/%s has no Language entry", e.Name()))
		}
	}
}

// describe formats l for the report: "Python (*.py)".
func (l *Language) describe() string {
	globs := make([]string, len(l.Extensions))
	for i, ext := range l.Extensions {
		globs[i] = "*" + ext
	}
	return fmt.Sprintf("%s (%s)", l.Name, strings.Join(globs, ", "))
}

// LanguageByID returns the Language with the given id, or nil if unknown.
func LanguageByID(id string) *Language {
	for _, l := range Languages {
		if l.ID == id {
			return l
		}
	}
	return nil
}
