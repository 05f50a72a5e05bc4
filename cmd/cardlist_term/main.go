// cardlist_term - 终端版卡片列表
//
// 用 tcell 把同一套布局管理器、动画和过渡调度绘制到终端中，
// 每个单元格对应 10x20 逻辑像素。
//
// 用法：
//
//	go run ./cmd/cardlist_term --scene stack --items 40
//
// 按键：1/2/3 切换 Linear/Stack/Grid，方向键和翻页键滚动，鼠标滚轮滚动，q/Esc 退出
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cardstack/pkg/config"
	"github.com/decker502/cardstack/pkg/types"
)

const (
	frameInterval = 16 * time.Millisecond
	lineScroll    = cellHeight * 2
)

var (
	sceneFlag  = flag.String("scene", "grid", "初始场景: linear | stack | grid")
	itemsFlag  = flag.Int("items", -1, "条目数量（-1 使用配置文件）")
	configFlag = flag.String("config", "", "卡片列表配置文件路径")
	logFlag    = flag.String("log", "", "日志文件路径（终端模式下默认不输出日志）")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cardlist_term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	kind, err := types.ParseSceneKind(*sceneFlag)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	cols, rows := screen.Size()
	host := newTermHost(cfg, kind, cols, rows)
	loop(screen, host)
	return nil
}

func loadConfig() (*config.CardListConfig, error) {
	cfg := config.DefaultCardListConfig()
	if *configFlag != "" {
		loaded, err := config.LoadCardListConfig(*configFlag)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if *itemsFlag >= 0 {
		cfg.Items = *itemsFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid card list config: %w", err)
	}
	return cfg, nil
}

// loop 事件和帧循环，直到用户退出
func loop(screen tcell.Screen, host *termHost) {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	scrollDelta := 0
	for {
		select {
		case ev := <-events:
			delta, quit := handleEvent(host, ev)
			if quit {
				return
			}
			scrollDelta += delta
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}

		case <-ticker.C:
			host.step(scrollDelta)
			scrollDelta = 0
			host.draw(screen)
			screen.Show()
		}
	}
}

// pollEvents 把终端事件转发到 events，done 关闭或屏幕结束（Fini）后退出
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent 处理一个终端事件，返回本次累积的滚动量和是否退出
func handleEvent(host *termHost, ev tcell.Event) (int, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		host.resize(cols, rows)

	case *tcell.EventMouse:
		switch {
		case ev.Buttons()&tcell.WheelUp != 0:
			return -lineScroll, false
		case ev.Buttons()&tcell.WheelDown != 0:
			return lineScroll, false
		}

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return 0, true
		case tcell.KeyUp:
			return -lineScroll, false
		case tcell.KeyDown:
			return lineScroll, false
		case tcell.KeyPgUp:
			return -host.Height(), false
		case tcell.KeyPgDn:
			return host.Height(), false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return 0, true
			case '1':
				host.switchScene(types.SceneLinear)
			case '2':
				host.switchScene(types.SceneStack)
			case '3':
				host.switchScene(types.SceneGrid)
			}
		}
	}
	return 0, false
}
