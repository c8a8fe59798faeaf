// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program showing a progress button driven by a simulated upload.

import (
	"log"
	"os"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/trendit/progressbutton"
)

func main() {
	go func() {
		w := app.NewWindow(
			app.Title("Progress button"),
			app.Size(unit.Dp(360), unit.Dp(160)),
		)
		if err := loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// upload is the state shared with the simulation goroutine. The button
// itself is only touched from the event loop.
type upload struct {
	mu    sync.Mutex
	state progressbutton.State
}

func (u *upload) set(s progressbutton.State) {
	u.mu.Lock()
	u.state = s
	u.mu.Unlock()
}

func (u *upload) get() progressbutton.State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

func loop(w *app.Window) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	btn, err := progressbutton.NewButton(progressbutton.DefaultStyle())
	if err != nil {
		return err
	}
	btn.Invalidate = w.Invalidate

	up := new(upload)
	go simulate(up, w.Invalidate)

	var ops op.Ops
	for {
		switch e := w.NextEvent().(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			apply(btn, up.get())
			layout.UniformInset(unit.Dp(24)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return progressbutton.ProgressButton(th, btn, label(btn.State())).Layout(gtx)
			})
			e.Frame(gtx.Ops)
		}
	}
}

// apply moves btn to s through the setters.
func apply(btn *progressbutton.Button, s progressbutton.State) {
	if btn.State() == s {
		return
	}
	switch s.Kind() {
	case progressbutton.Init:
		btn.Reset()
	case progressbutton.InProgress:
		btn.SetProgress(s.Percent())
	case progressbutton.Success:
		btn.SetSuccess()
	case progressbutton.Fail:
		btn.SetFail()
	}
}

func label(s progressbutton.State) string {
	switch s.Kind() {
	case progressbutton.InProgress:
		return "Uploading…"
	case progressbutton.Success:
		return "Uploaded"
	case progressbutton.Fail:
		return "Upload failed"
	default:
		return "Upload"
	}
}

// simulate runs uploads forever, failing every third one halfway.
func simulate(up *upload, invalidate func()) {
	for run := 1; ; run++ {
		up.set(progressbutton.InitState())
		invalidate()
		time.Sleep(time.Second)
		for p := 0; p <= 100; p += 2 {
			if run%3 == 0 && p == 50 {
				up.set(progressbutton.FailState())
				break
			}
			up.set(progressbutton.ProgressState(p))
			invalidate()
			time.Sleep(40 * time.Millisecond)
		}
		if up.get().Kind() != progressbutton.Fail {
			up.set(progressbutton.SuccessState())
		}
		invalidate()
		time.Sleep(2 * time.Second)
	}
}
