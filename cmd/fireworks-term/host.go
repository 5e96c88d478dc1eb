package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/fireworks/internal/audio"
	"github.com/gonewx/fireworks/internal/termcanvas"
	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/ecs"
	"github.com/gonewx/fireworks/pkg/entities"
	"github.com/gonewx/fireworks/pkg/systems"
)

// termScreen host 需要的 tcell.Screen 子集（测试中使用 SimulationScreen）
type termScreen interface {
	termcanvas.Screen
	Size() (int, int)
	Show()
	Clear()
	EnableMouse(...tcell.MouseFlags)
	PollEvent() tcell.Event
	Fini()
}

type hostOptions struct {
	FPS   int
	Scale float64
	Mute  bool
}

// host 终端版主循环
//
// tcell 事件在独立 goroutine 中读取并通过 channel 转发，
// 场景状态只在帧 goroutine 中访问。
type host struct {
	screen termScreen
	canvas *termcanvas.Canvas
	cfg    *config.FireworksConfig
	fps    int

	entityManager   *ecs.EntityManager
	fireworkSystem  *systems.FireworkSystem
	renderSystem    *systems.FireworkRenderSystem
	starfieldSystem *systems.StarfieldSystem

	player *audio.SpeakerPlayer
	// 上一次鼠标事件的按键状态，用于检测按下沿
	lastButtons tcell.ButtonMask
}

func newHost(screen termScreen, cfg *config.FireworksConfig, opts hostOptions) *host {
	if opts.FPS <= 0 {
		opts.FPS = config.TicksPerSecond
	}

	em := ecs.NewEntityManager()
	factory := entities.NewFireworkFactory(cfg, entities.NewRandomSource())
	cols, rows := screen.Size()

	h := &host{
		screen:          screen,
		canvas:          termcanvas.New(cols, rows, opts.Scale),
		cfg:             cfg,
		fps:             opts.FPS,
		entityManager:   em,
		fireworkSystem:  systems.NewFireworkSystem(em, factory, systems.NewEffectQueue()),
		renderSystem:    systems.NewFireworkRenderSystem(em, cfg),
		starfieldSystem: systems.NewStarfieldSystem(em, factory, time.Now().UnixNano()),
		player:          audio.NewSpeakerPlayer(audio.DefaultSampleRate, cfg.Audio.Volume),
	}
	h.starfieldSystem.EnsureSize(h.canvas.Size())

	screen.EnableMouse(tcell.MouseButtonEvents)

	h.player.RegisterClip(cfg.Audio.LaunchSound, audio.ClipLaunch)
	h.player.RegisterClip(cfg.Audio.ExplosionSound, audio.ClipExplosion)
	h.player.SetMuted(opts.Mute)
	if err := h.player.Initialize(); err != nil {
		// 没有音频设备时照常运行
		log.Printf("[Host] 音频初始化失败: %v", err)
	}

	return h
}

// run 主循环，直到用户退出
func (h *host) run() {
	ticker := time.NewTicker(time.Second / time.Duration(h.fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(h.screen.PollEvent, events, done)

	dt := 1.0 / float64(h.fps)
	for {
		select {
		case ev, ok := <-events:
			if !ok || !h.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			h.step(dt)
			h.draw()
		}
	}
}

// pollEvents 把 tcell 事件转发到 events，屏幕关闭（poll 返回 nil）时关闭 events
// done 关闭后立即返回，主循环退出后不会阻塞在发送上
func pollEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent 处理一个输入事件，返回 false 表示退出
func (h *host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'c', 'C':
				h.fireworkSystem.Clear()
			case 's', 'S':
				h.starfieldSystem.SetVisible(!h.starfieldSystem.IsVisible())
			case 'm', 'M':
				h.player.SetMuted(!h.player.IsMuted())
			}
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && h.lastButtons&tcell.Button1 == 0
		h.lastButtons = buttons
		if pressed {
			col, row := ev.Position()
			h.pointerDown(col, row)
		}
	case *tcell.EventResize:
		h.resize()
	}
	return true
}

// pointerDown 单元格坐标转换为逻辑坐标后发射
func (h *host) pointerDown(col, row int) {
	x, y := h.canvas.CellToLogical(col, row)
	_, height := h.canvas.Size()
	h.fireworkSystem.OnPointerDown(x, y, height)
}

func (h *host) resize() {
	cols, rows := h.screen.Size()
	if h.canvas.Resize(cols, rows) {
		h.starfieldSystem.EnsureSize(h.canvas.Size())
	}
}

// step 推进一帧并播放音效
func (h *host) step(dt float64) {
	h.fireworkSystem.Update(dt)
	h.starfieldSystem.Update(dt)
	h.fireworkSystem.Effects().DispatchTo(h.player)
}

func (h *host) draw() {
	h.renderSystem.DrawAfterglow(h.canvas)
	h.starfieldSystem.Draw(h.canvas)
	h.renderSystem.DrawLaunches(h.canvas)
	h.canvas.Flush(h.screen)

	hud := fmt.Sprintf(" Fireworks: %d  click: launch  c: clear  s: stars  m: mute  q: quit ", h.fireworkSystem.LaunchCount())
	if h.player.IsMuted() {
		hud += "[muted] "
	}
	termcanvas.DrawString(h.screen, 0, 0, hud, tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack))
	h.screen.Show()
}

func (h *host) cleanup() {
	h.player.Close()
	h.screen.Fini()
}
