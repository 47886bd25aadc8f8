// Package console runs the interactive command loop: load an image, apply
// filters one at a time, save the result.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ironsheep/image-filters/internal/filter"
	"github.com/ironsheep/image-filters/internal/imaging"
	"github.com/ironsheep/image-filters/internal/preview"
)

// ErrNoImage is reported when a command needs an image and none is loaded.
var ErrNoImage = errors.New("no image loaded, use 'load' or 'new' first")

// Console reads commands from in and writes prompts and results to out.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	engine  *filter.Engine
	preview preview.Renderer
	img     *imaging.Buffer
}

// New returns a console driving engine. A nil renderer disables previews.
func New(in io.Reader, out io.Writer, engine *filter.Engine, renderer preview.Renderer) *Console {
	if renderer == nil {
		renderer = preview.Nop{}
	}
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		engine:  engine,
		preview: renderer,
	}
}

// Image returns the working image, or nil before the first load.
func (c *Console) Image() *imaging.Buffer { return c.img }

// Run executes commands until quit, end of input, or ctx is cancelled.
// Command failures are printed and do not stop the loop.
func (c *Console) Run(ctx context.Context) error {
	c.usage()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok := c.prompt("Enter a command:")
		if !ok {
			return c.in.Err()
		}
		name, arg, _ := strings.Cut(line, " ")
		if name == "" {
			continue
		}
		if name == "quit" || name == "exit" {
			return nil
		}

		if err := c.execute(ctx, strings.ToLower(name), strings.TrimSpace(arg)); err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
	}
}

func (c *Console) execute(ctx context.Context, name, arg string) error {
	switch name {
	case "help":
		c.usage()
		return nil
	case "load":
		return c.load(arg)
	case "save":
		return c.save(arg)
	case "new":
		return c.newGradient(arg)
	}

	op, ok := filter.Lookup(name)
	if !ok {
		fmt.Fprintln(c.out, "Command not found.")
		return nil
	}
	if c.img == nil {
		return ErrNoImage
	}

	var value float64
	if op.Param != nil {
		text, err := c.argument(arg, fmt.Sprintf("Enter %s (%g, %g):", op.Param.Name, op.Param.Min, op.Param.Max))
		if err != nil {
			return err
		}
		value, err = strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q", op.Param.Name, text)
		}
	}

	out, err := c.engine.Apply(ctx, name, c.img, value)
	if err != nil {
		return err
	}
	c.img = out
	return c.render()
}

func (c *Console) load(arg string) error {
	path, err := c.argument(arg, "Enter image path:")
	if err != nil {
		return err
	}
	img, err := imaging.Load(path)
	if err != nil {
		return err
	}
	c.img = img
	fmt.Fprintf(c.out, "Loaded %s (%dx%d)\n", path, img.Width(), img.Height())
	return c.render()
}

func (c *Console) save(arg string) error {
	if c.img == nil {
		return ErrNoImage
	}
	path, err := c.argument(arg, "Enter image save path:")
	if err != nil {
		return err
	}
	if err := imaging.SaveAuto(c.img, path); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Saved %s\n", path)
	return nil
}

func (c *Console) newGradient(arg string) error {
	text, err := c.argument(arg, "Enter width and height:")
	if err != nil {
		return err
	}
	var w, h int
	if _, err := fmt.Sscan(text, &w, &h); err != nil || w <= 0 || h <= 0 {
		return fmt.Errorf("invalid size %q", text)
	}
	c.img = imaging.Gradient(w, h)
	return c.render()
}

// argument returns inline if set, otherwise prompts and reads a whole line.
func (c *Console) argument(inline, prompt string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	line, ok := c.prompt(prompt)
	if !ok {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	if line == "" {
		return "", errors.New("no value given")
	}
	return line, nil
}

func (c *Console) prompt(msg string) (string, bool) {
	fmt.Fprintln(c.out, msg)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) render() error {
	if err := c.preview.Render(c.img); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

func (c *Console) usage() {
	fmt.Fprintln(c.out, "Commands:")
	fmt.Fprintln(c.out, "\tload [path]")
	fmt.Fprintln(c.out, "\tsave [path]")
	fmt.Fprintln(c.out, "\tnew [width height]")
	for _, op := range filter.Ops() {
		if op.Param != nil {
			fmt.Fprintf(c.out, "\t%s [%s]\n", op.Name, op.Param.Name)
		} else {
			fmt.Fprintf(c.out, "\t%s\n", op.Name)
		}
	}
	fmt.Fprintln(c.out, "\thelp")
	fmt.Fprintln(c.out, "\tquit")
}
