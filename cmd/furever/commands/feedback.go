package commands

import (
	"context"
	"fmt"

	"github.com/furevercare/furever/internal/feedback"
)

// FeedbackCmd submits and reviews feedback entries.
type FeedbackCmd struct {
	Submit FeedbackSubmitCmd `cmd:"" help:"Submit a feedback entry"`
	List   FeedbackListCmd   `cmd:"" help:"List feedback entries, newest first"`
}

// FeedbackSubmitCmd records one entry in the feedback journal.
type FeedbackSubmitCmd struct {
	Category string `default:"General" help:"Feedback category"`
	Rating   int    `default:"5" help:"Rating from 1 to 5"`
	Message  string `arg:"" help:"Feedback message"`
}

func (f *FeedbackSubmitCmd) Run(g *Global) error {
	journal, err := feedback.Open(g.FeedbackPath())
	if err != nil {
		return err
	}
	defer journal.Close()

	name := "Anonymous"
	if identity, ok := g.Store.Identity(); ok {
		name = identity.Name
	}

	entry, err := journal.Submit(context.Background(), feedback.Entry{
		Name:     name,
		Category: f.Category,
		Rating:   f.Rating,
		Message:  f.Message,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Thanks for your feedback, %s! (recorded as %s)\n", name, entry.ID)
	return nil
}

// FeedbackListCmd prints the journal.
type FeedbackListCmd struct{}

func (f *FeedbackListCmd) Run(g *Global) error {
	journal, err := feedback.Open(g.FeedbackPath())
	if err != nil {
		return err
	}
	defer journal.Close()

	entries, err := journal.List(context.Background())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No feedback yet.")
		return nil
	}

	g.Renderer.Section("Feedback 💬")
	for _, e := range entries {
		fmt.Printf("%s  %s [%s] %d/5\n", e.CreatedAt.Format("2006-01-02 15:04"), e.Name, e.Category, e.Rating)
		fmt.Printf("    %s\n", e.Message)
	}
	return nil
}
