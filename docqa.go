// Package docqa provides a document question-answering pipeline.
// It extracts plain text from uploaded documents (PDF, DOCX, plain text,
// and images via OCR), augments questions with best-effort web search
// context, and synthesizes answers with a Gemini model, falling back to
// a secondary model on failure.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., gemini/, serper/, gosseract/).
package docqa
