package main

import (
	"catadmin/internal/config"
	"catadmin/internal/console"
	"catadmin/internal/render"
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/sirupsen/logrus"
)

type Globals struct {
	Ctx        context.Context
	Svc        console.Service
	Prober     console.ImageProber
	Cfg        config.Config
	ConfigPath string
	Out        io.Writer
	Render     render.Renderer
	Log        logrus.FieldLogger
	Now        func() time.Time
	RunCmd     func(name string, args ...string) error
	RunForm    func(f *huh.Form) error
}

func defaultRunCmd(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func defaultRunForm(f *huh.Form) error {
	return f.Run()
}

func (g *Globals) context() context.Context {
	if g.Ctx == nil {
		return context.Background()
	}
	return g.Ctx
}

func (g *Globals) printer() *render.Printer {
	return &render.Printer{Out: g.Out, R: g.Render}
}

// newConsole builds a console that prints notices as they happen. Frames
// and details are recorded; commands print the final state themselves.
func (g *Globals) newConsole(perPage int, opts ...console.Option) *console.Console {
	if perPage == 0 {
		perPage = g.Cfg.PerPage
	}
	now := g.Now
	if now == nil {
		now = time.Now
	}
	base := []console.Option{
		console.WithPerPage(perPage),
		console.WithClock(now),
	}
	if g.Log != nil {
		base = append(base, console.WithLogger(g.Log))
	}
	return console.New(g.Svc, &console.Recorder{}, g.printer(), append(base, opts...)...)
}

func (g *Globals) runForm(f *huh.Form) error {
	if g.RunForm != nil {
		return g.RunForm(f)
	}
	return defaultRunForm(f)
}

func (g *Globals) runCmd(name string, args ...string) error {
	if g.RunCmd != nil {
		return g.RunCmd(name, args...)
	}
	return defaultRunCmd(name, args...)
}
