package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
)

// engine implements the Engine interface.
// Input arrives on the window thread; the controller is integrated on the tick goroutine.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	logger *log.Logger

	window     window.Window
	camera     camera.Camera
	controller camera.OrbitController

	controllerOptions []camera.CameraControllerOption

	watcherMu sync.Mutex
	watcher   *camera.ConfigWatcher

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
}

// Engine hosts an orbit-controlled camera: it forwards window input to the controller,
// integrates the controller at a fixed tick rate and applies configuration reloads.
type Engine interface {
	// Window returns the underlying window, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Camera returns the camera the controller moves.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Controller returns the orbit controller attached to the camera.
	//
	// Returns:
	//   - camera.OrbitController: the controller
	Controller() camera.OrbitController

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick, after the controller update.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// WatchConfig reloads the controller configuration whenever the YAML file at path changes.
	// A previous watch is stopped first.
	//
	// Parameters:
	//   - path: path to the YAML controller configuration
	//
	// Returns:
	//   - error: error if the file cannot be watched
	WatchConfig(path string) error

	// Run starts the tick loop and blocks until the window closes or Quit is called.
	Run()

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Without WithCamera a perspective camera at (0, 0, 5) looking at the origin is created.
// Without WithWindow the engine runs headless and the controller only receives input
// fed to it directly.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		logger:          log.Default(),
		profiler:        profiler.NewProfiler(),
		engineTickRate:  time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.camera == nil {
		e.camera = camera.NewCamera(camera.WithPosition(0, 0, 5), camera.WithLookAt(0, 0, 0))
	}

	var surface camera.InputSurface
	if e.window != nil {
		surface = e.window
		if h := e.window.Height(); h > 0 {
			e.camera.SetAspect(float64(e.window.Width()) / float64(h))
		}
	}
	controllerOptions := append([]camera.CameraControllerOption{camera.WithLogger(e.logger)}, e.controllerOptions...)
	e.controller = camera.NewOrbitController(e.camera, surface, controllerOptions...)
	e.controller.AddListener(func(ev camera.ControlEvent) {
		if ev == camera.EventChange && e.profilingEnabled.Load() {
			e.profiler.RecordChange()
		}
	})

	if e.window != nil {
		e.controller.ListenToKeyEvents(e.window)
		e.window.SetResizeCallback(func(width, height int) {
			if height > 0 {
				e.camera.SetAspect(float64(width) / float64(height))
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Controller() camera.OrbitController {
	return e.controller
}

func (e *engine) Run() {
	e.running.Store(true)
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleQuit()

	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	} else {
		<-e.quitChannel
	}

	e.wg.Wait()
	e.running.Store(false)
	e.stopWatching()
	e.controller.Dispose()
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// handleEngine runs the fixed-rate tick loop in its own goroutine.
// Listens for dynamic rate changes via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now
			e.tick(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// tick applies pending config reloads, integrates the controller and runs the user callback.
func (e *engine) tick(dt float32) {
	e.applyConfigReloads()
	e.controller.Update(dt)

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	if e.profilingEnabled.Load() {
		e.profiler.Tick()
	}
}

func (e *engine) applyConfigReloads() {
	e.watcherMu.Lock()
	w := e.watcher
	e.watcherMu.Unlock()
	if w == nil {
		return
	}

	select {
	case err, ok := <-w.Errors:
		if ok {
			e.logger.Printf("[Engine] WARNING: controller config reload failed: %v", err)
		}
	default:
	}

	if cfg, ok := w.Poll(); ok {
		if err := e.controller.SetConfig(cfg); err != nil {
			e.logger.Printf("[Engine] WARNING: rejected controller config from %s: %v", w.Path(), err)
			return
		}
		e.logger.Printf("[Engine] controller config reloaded from %s", w.Path())
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect on the next loop iteration.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)

	if !e.running.Load() {
		e.engineTickRate = newRate
		return
	}

	// Non-blocking send - if a change is already pending, replace it
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) WatchConfig(path string) error {
	w, err := camera.WatchControllerConfig(path)
	if err != nil {
		return err
	}

	e.watcherMu.Lock()
	prev := e.watcher
	e.watcher = w
	e.watcherMu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

func (e *engine) stopWatching() {
	e.watcherMu.Lock()
	w := e.watcher
	e.watcher = nil
	e.watcherMu.Unlock()

	if w != nil {
		if err := w.Close(); err != nil {
			e.logger.Printf("[Engine] WARNING: failed to stop config watcher: %v", err)
		}
	}
}

// tickInterval converts a tick rate into a ticker period, treating fps <= 0 as 60.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
