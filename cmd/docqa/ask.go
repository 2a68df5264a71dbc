package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/docqa"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	if err := ingestFile(deps.Session, c.File); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docqa.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "Document loaded successfully!")

	if c.Question != "" {
		if err := c.askOne(deps, c.Question); err != nil {
			return err
		}
	} else if err := c.loop(deps); err != nil {
		return err
	}

	if c.History {
		printHistory(deps.Stdout, deps.Session.History())
	}
	return nil
}

// askOne answers a single question.
func (c *AskCmd) askOne(deps *Dependencies, question string) error {
	answer, err := deps.Session.Ask(deps.Ctx, question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docqa.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nAnswer: %s\n", answer)
	return nil
}

// loop reads questions from stdin until "quit" or EOF. A failed question
// is reported and the loop continues; the session stays usable.
func (c *AskCmd) loop(deps *Dependencies) error {
	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "\nEnter your question (or 'quit' to exit): ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if strings.EqualFold(question, "quit") {
			break
		}

		answer, err := deps.Session.Ask(deps.Ctx, question)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error getting answer: %s\n", docqa.ErrorMessage(err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "\nAnswer: %s\n", answer)
	}
	return scanner.Err()
}

// printHistory writes records most recent first, matching how the
// interactive shells display previous exchanges.
func printHistory(w io.Writer, records []docqa.QARecord) {
	if len(records) == 0 {
		return
	}

	fmt.Fprintln(w, "\nPrevious Questions & Answers")
	for i := len(records) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "\nQ: %s\nA: %s\n", records[i].Question, records[i].Answer)
	}
}
