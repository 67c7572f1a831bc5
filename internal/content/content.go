// Package content holds the copy shown on each stage page.
package content

import (
	_ "embed"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/bbdl/internal/stage"
)

//go:embed pages.toml
var pagesTOML []byte

// Field is one free-text input on a stage page.
type Field struct {
	Key         string `toml:"key"`
	Title       string `toml:"title"`
	Prompt      string `toml:"prompt"`
	Placeholder string `toml:"placeholder"`
}

// Page is the copy for one working stage.
type Page struct {
	Stage       stage.Stage `toml:"stage"`
	Description string      `toml:"description"`
	Intro       string      `toml:"intro"`
	Card        string      `toml:"card"`
	Call        string      `toml:"call"`
	Back        bool        `toml:"back"`     // whether the page offers "previous stage"
	Continue    bool        `toml:"continue"` // whether the page offers "next stage"
	Patterns    string      `toml:"patterns"`
	Fields      []Field     `toml:"field"`
}

// Home is the copy for the landing page.
type Home struct {
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
	Process  string `toml:"process"`
}

// Book is the complete site copy.
type Book struct {
	Home  Home   `toml:"home"`
	Pages []Page `toml:"page"`
}

// Default returns the embedded copy. It panics on a malformed embed.
func Default() *Book {
	b, err := Parse(pagesTOML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded pages: %v", err))
	}
	return b
}

// Parse decodes site copy from TOML.
func Parse(data []byte) (*Book, error) {
	var b Book
	if err := toml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing pages: %w", err)
	}
	return &b, nil
}

// Page returns the copy for s. Home and unknown stages yield an empty page.
func (b *Book) Page(s stage.Stage) Page {
	for _, p := range b.Pages {
		if p.Stage == s {
			return p
		}
	}
	return Page{Stage: s}
}
