package ui

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/famicore/famicore/internal/nes"
)

// Controls:
//   P - pause
//   R - run one instruction and stop
//   F - run one frame and stop

const (
	gameScreenScale  = 2
	gameScreenWidth  = 256
	gameScreenHeight = 240

	debugScreenWidth  = 286
	debugScreenHeight = gameScreenHeight * gameScreenScale
)

type UI struct {
	bus *nes.Bus

	disasm      map[uint16]string
	disasmAddrs []uint16
}

func New(bus *nes.Bus) *UI {
	ui := &UI{
		bus:    bus,
		disasm: bus.Disassemble(),
	}
	ui.disasmAddrs = make([]uint16, 0, len(ui.disasm))
	for addr := range ui.disasm {
		ui.disasmAddrs = append(ui.disasmAddrs, addr)
	}
	sort.Slice(ui.disasmAddrs, func(i, j int) bool {
		return ui.disasmAddrs[i] < ui.disasmAddrs[j]
	})
	return ui
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.bus.TogglePause()
	}

	if ui.bus.Paused() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			ui.bus.StepInstruction()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF) {
			ui.bus.StepFrame()
		}
		return nil
	}

	ui.bus.StepFrame()
	return nil
}

func (ui *UI) Draw(screen *ebiten.Image) {
	info := ui.bus.DebugInfo()

	var infoStr strings.Builder
	fmt.Fprintf(&infoStr, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&infoStr, " STATUS: %s\n", info.StatusString())
	fmt.Fprintf(&infoStr, " PC: $%04X\n", info.PC)
	fmt.Fprintf(&infoStr, " A: $%02X [%03d]", info.A, info.A)
	fmt.Fprintf(&infoStr, " X: $%02X [%03d]", info.X, info.X)
	fmt.Fprintf(&infoStr, " Y: $%02X [%03d]\n", info.Y, info.Y)
	fmt.Fprintf(&infoStr, " SP: $%02X\n", info.SP)
	fmt.Fprintf(&infoStr, " CYC: %d\n\n", info.TotalCycles)

	for _, line := range ui.disasmWindow(info.PC, 7) {
		infoStr.WriteString(line + "\n")
	}

	debugScreenOffsetX := float32(gameScreenWidth * gameScreenScale)
	vector.DrawFilledRect(screen, debugScreenOffsetX, 0, debugScreenWidth, debugScreenHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, infoStr.String(), int(debugScreenOffsetX), 0)

	img := ebiten.NewImageFromImage(ui.bus.Screen())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(gameScreenScale, gameScreenScale)
	screen.DrawImage(img, op)
}

// disasmWindow returns the instructions around pc, the current one marked
// with an asterisk. The disassembly is static, so an instruction decoded
// from self-modified memory may drift from what actually runs.
func (ui *UI) disasmWindow(pc uint16, around int) []string {
	i := sort.Search(len(ui.disasmAddrs), func(i int) bool {
		return ui.disasmAddrs[i] >= pc
	})

	lines := make([]string, 0, 2*around+1)
	for j := i - around; j <= i+around; j++ {
		if j < 0 || j >= len(ui.disasmAddrs) {
			continue
		}
		marker := " "
		if ui.disasmAddrs[j] == pc {
			marker = "*"
		}
		lines = append(lines, marker+ui.disasm[ui.disasmAddrs[j]])
	}
	return lines
}

func (ui *UI) Layout(_, _ int) (int, int) {
	return gameScreenWidth*gameScreenScale + debugScreenWidth, gameScreenHeight * gameScreenScale
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(gameScreenWidth*gameScreenScale+debugScreenWidth, gameScreenHeight*gameScreenScale)
	ebiten.SetWindowTitle("famicore")
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}
