package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/fireworks/pkg/config"
)

func newTestHost(t *testing.T) (*host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(80, 40)

	h := newHost(screen, config.DefaultFireworksConfig(), hostOptions{FPS: 60, Scale: 8, Mute: true})
	t.Cleanup(h.cleanup)
	return h, screen
}

// TestHostMousePressEdge 按住鼠标只发射一次
func TestHostMousePressEdge(t *testing.T) {
	h, _ := newTestHost(t)

	events := []*tcell.EventMouse{
		tcell.NewEventMouse(10, 30, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(11, 30, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(11, 30, tcell.ButtonNone, tcell.ModNone),
		tcell.NewEventMouse(20, 30, tcell.Button1, tcell.ModNone),
	}
	for _, ev := range events {
		h.handleEvent(ev)
	}

	if got := h.fireworkSystem.LaunchCount(); got != 2 {
		t.Errorf("LaunchCount = %d, want 2", got)
	}
}

func TestHostKeys(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		wantExit bool
	}{
		{"q 退出", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"Esc 退出", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"Ctrl-C 退出", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), true},
		{"c 清空", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHost(t)
			if got := !h.handleEvent(tt.ev); got != tt.wantExit {
				t.Errorf("exit = %v, want %v", got, tt.wantExit)
			}
		})
	}
}

func TestHostToggles(t *testing.T) {
	h, _ := newTestHost(t)

	h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	if h.starfieldSystem.IsVisible() {
		t.Error("stars should be hidden after 's'")
	}

	h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	if h.player.IsMuted() {
		t.Error("'m' should unmute a muted host")
	}

	h.pointerDown(10, 30)
	h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	if h.fireworkSystem.LaunchCount() != 0 {
		t.Error("'c' should clear launches")
	}
}

// TestHostStepAndDraw 推进若干帧并绘制，发射体最终消失
func TestHostStepAndDraw(t *testing.T) {
	h, screen := newTestHost(t)
	h.pointerDown(40, 35)

	for i := 0; i < 600 && h.fireworkSystem.LaunchCount() > 0; i++ {
		h.step(1.0 / 60)
		h.draw()
	}
	if h.fireworkSystem.LaunchCount() != 0 {
		t.Errorf("LaunchCount = %d, want 0", h.fireworkSystem.LaunchCount())
	}

	if r, _, _, _ := screen.GetContent(1, 0); r != 'F' {
		t.Errorf("HUD cell = %q, want 'F'", r)
	}
}

func TestHostResize(t *testing.T) {
	h, screen := newTestHost(t)
	screen.SetSize(100, 50)
	h.handleEvent(tcell.NewEventResize(100, 50))

	if cols, rows := h.canvas.Cells(); cols != 100 || rows != 50 {
		t.Errorf("canvas cells = (%d, %d), want (100, 50)", cols, rows)
	}
}

// TestPollEventsStopsWhenDone 主循环退出后，转发 goroutine 不会卡在已满的 channel 上
func TestPollEventsStopsWhenDone(t *testing.T) {
	poll := func() tcell.Event { return tcell.NewEventInterrupt(nil) }
	events := make(chan tcell.Event) // 无人接收
	done := make(chan struct{})

	finished := make(chan struct{})
	go func() {
		pollEvents(poll, events, done)
		close(finished)
	}()

	close(done)
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("pollEvents did not return after done was closed")
	}
}

// TestPollEventsClosesOnScreenFini 屏幕关闭时关闭事件 channel
func TestPollEventsClosesOnScreenFini(t *testing.T) {
	queue := []tcell.Event{tcell.NewEventInterrupt(nil), nil}
	poll := func() tcell.Event {
		ev := queue[0]
		queue = queue[1:]
		return ev
	}
	events := make(chan tcell.Event, 4)

	pollEvents(poll, events, make(chan struct{}))

	if _, ok := <-events; !ok {
		t.Fatal("expected the forwarded event before close")
	}
	if _, ok := <-events; ok {
		t.Error("events should be closed after poll returns nil")
	}
}
