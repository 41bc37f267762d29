package commands

import "github.com/furevercare/furever/internal/content"

// AboutCmd prints the about page.
type AboutCmd struct{}

func (a *AboutCmd) Run(g *Global) error {
	g.Renderer.Text(content.RenderText([]byte(content.About)))
	return nil
}

// ContactCmd prints the contact page.
type ContactCmd struct{}

func (c *ContactCmd) Run(g *Global) error {
	g.Renderer.Text(content.RenderText([]byte(content.Contact)))
	return nil
}
