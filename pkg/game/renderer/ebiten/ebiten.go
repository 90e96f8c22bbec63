package ebiten

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	engineinput "dungeondaily/pkg/engine/input"
	"dungeondaily/pkg/game/renderer"
)

// New creates a new Ebiten renderer. Zero option fields take the defaults.
func New(opts Options, log zerolog.Logger) *EbitenRenderer {
	if opts.Width <= 0 {
		opts.Width = defaultWindowWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultWindowHeight
	}
	if opts.TileSize <= 0 {
		opts.TileSize = defaultTileSize
	}
	if opts.Title == "" {
		opts.Title = "DungeonDaily"
	}

	return &EbitenRenderer{
		windowWidth:  opts.Width,
		windowHeight: opts.Height,
		title:        opts.Title,
		tileSize:     min(max(opts.TileSize, minTileSize), maxTileSize),
		defaultTile:  min(max(opts.TileSize, minTileSize), maxTileSize),
		inputChan:    make(chan engineinput.Intent, inputBufferSize),
		done:         make(chan struct{}),
		swipe:        engineinput.NewSwipeDetector(opts.SwipeThreshold),
		debouncer:    engineinput.Debouncer{Interval: debounceInterval},
		log:          log,
	}
}

// Init loads fonts and configures the window. Only the first call has any
// effect, so it is safe to call before Run and again from the game loop.
func (e *EbitenRenderer) Init() {
	e.initOnce.Do(func() {
		if err := e.loadFonts(); err != nil {
			e.log.Error().Err(err).Msg("font loading failed, board text disabled")
		}

		ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
		ebiten.SetWindowTitle(e.title)
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	})
}

// GetInput blocks until the window produces an intent. Once the window has
// closed every call returns a quit.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.done:
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
}

// StyleText returns the text unchanged; colours come from the draw calls
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// Run opens the window on the calling goroutine and runs loop on another.
// Call Init first.
// It returns once the window is closed and loop has finished. Closing the
// window makes GetInput report a quit; loop returning closes the window.
func (e *EbitenRenderer) Run(loop func() error) error {
	var eg errgroup.Group

	eg.Go(func() error {
		defer e.requestClose()
		return loop()
	})

	e.log.Info().Int("width", e.windowWidth).Int("height", e.windowHeight).Msg("opening window")
	runErr := ebiten.RunGame(e)
	if errors.Is(runErr, ebiten.Termination) {
		runErr = nil
	}
	e.closeInput()

	if err := eg.Wait(); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("running window: %w", runErr)
	}
	return nil
}

// requestClose asks the next Update to end the Ebiten loop
func (e *EbitenRenderer) requestClose() {
	e.closing.Store(true)
}

// closeInput unblocks GetInput for good
func (e *EbitenRenderer) closeInput() {
	e.doneOnce.Do(func() { close(e.done) })
}

var _ renderer.Renderer = (*EbitenRenderer)(nil)
