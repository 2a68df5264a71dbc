package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/session"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Session *session.Session
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract and print a document's text"`
	Ask     AskCmd     `cmd:"" help:"Ask questions about a document"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File string `arg:"" type:"existingfile" help:"Document file (pdf, docx, txt, png, jpg, jpeg, tiff, bmp)"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	File     string `arg:"" type:"existingfile" help:"Document file to ask about"`
	Question string `arg:"" optional:"" help:"Question to ask; omit for an interactive loop"`
	History  bool   `help:"Print the session history after answering"`
}

// ingestFile loads a file and ingests it into the session using its
// extension-derived format.
func ingestFile(s *session.Session, path string) error {
	format, err := docqa.ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return docqa.Errorf(docqa.EINVALID, "reading %s: %v", path, err)
	}
	doc := &docqa.Document{Data: data, Format: format}
	if err := doc.Validate(); err != nil {
		return err
	}
	return s.Ingest(doc.Data, doc.Format)
}
