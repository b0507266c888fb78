// Package app is the hello triangle application as far as instance
// creation: a window, a Vulkan instance and an event loop.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/loov/hrtime"

	"github.com/piccicla/vulkantutorial/internal/driver"
	"github.com/piccicla/vulkantutorial/internal/support"
	"github.com/piccicla/vulkantutorial/internal/window"
)

var validationLayers = []string{"VK_LAYER_KHRONOS_validation"}

type HelloTriangleApplication struct {
	opts   Options
	logger *slog.Logger
	out    io.Writer

	window   window.Window
	driver   driver.Driver
	instance driver.Instance
}

func New(opts Options) *HelloTriangleApplication {
	app := &HelloTriangleApplication{
		opts:   opts,
		logger: opts.Logger,
		out:    opts.Out,
	}
	if app.logger == nil {
		app.logger = slog.Default()
	}
	if app.out == nil {
		app.out = os.Stdout
	}
	if app.opts.OpenWindow == nil {
		app.opts.OpenWindow = window.Open
	}
	if app.opts.OpenDriver == nil {
		app.opts.OpenDriver = driver.Open
	}
	return app
}

// Run sets everything up, blocks until the window is closed or ctx is done
// and tears everything down again.
func (app *HelloTriangleApplication) Run(ctx context.Context) error {
	err := app.initWindow()
	if err != nil {
		return err
	}
	defer app.cleanup()

	err = app.initVulkan()
	if err != nil {
		return err
	}

	return app.mainLoop(ctx)
}

func (app *HelloTriangleApplication) initWindow() error {
	w, err := app.opts.OpenWindow(app.opts.Window, app.opts.WindowConfig)
	if err != nil {
		return err
	}
	app.window = w

	app.logger.Debug("window created",
		slog.String("backend", string(app.opts.Window)),
		slog.Int("width", app.opts.WindowConfig.Width),
		slog.Int("height", app.opts.WindowConfig.Height))
	return nil
}

func (app *HelloTriangleApplication) initVulkan() error {
	d, err := app.opts.OpenDriver(app.opts.Driver, app.window.ProcAddr())
	if err != nil {
		return err
	}
	app.driver = d

	return app.createInstance()
}

func (app *HelloTriangleApplication) createInstance() error {
	info := driver.InstanceInfo{
		ApplicationName:    "Hello Triangle",
		ApplicationVersion: driver.Version{Major: 1},
		EngineName:         "No Engine",
		EngineVersion:      driver.Version{Major: 1},
		APIVersion:         driver.Version{Major: 1},
	}

	// Add extensions
	available, err := app.driver.AvailableExtensions()
	if err != nil {
		return errors.Wrap(err, "createinstance: enumerate extensions")
	}
	printNames(app.out, "available extensions:", available)

	required := app.window.RequiredInstanceExtensions()
	printNames(app.out, "window required extensions:", required)

	debugExtension := app.driver.DebugExtension()
	if app.opts.EnableValidation && debugExtension != "" {
		required = append(required, debugExtension)
	}

	if err := support.RequireExtensions(required, available); err != nil {
		return errors.Wrap(err, "createinstance")
	}
	fmt.Fprintln(app.out, "extension requirement fulfilled")
	info.Extensions = required

	// Add layers
	if app.opts.EnableValidation {
		layers, err := app.driver.AvailableLayers()
		if err != nil {
			return errors.Wrap(err, "createinstance: enumerate layers")
		}

		if err := support.RequireLayers(validationLayers, layers); err != nil {
			return errors.Wrap(err, "createinstance: cannot add validation")
		}
		info.Layers = validationLayers

		if debugExtension != "" {
			info.Debug = app.logDebug
		} else {
			app.logger.Warn("driver cannot forward validation messages",
				slog.String("driver", string(app.opts.Driver)))
		}
	}

	start := hrtime.Now()
	app.instance, err = app.driver.CreateInstance(info)
	if err != nil {
		return err
	}
	app.logger.Debug("instance created",
		slog.Int("extensions", len(info.Extensions)),
		slog.Int("layers", len(info.Layers)),
		slog.Duration("elapsed", hrtime.Since(start)))

	return nil
}

func (app *HelloTriangleApplication) mainLoop(ctx context.Context) error {
	for !app.window.ShouldClose() {
		select {
		case <-ctx.Done():
			app.logger.Info("interrupted, closing window")
			return nil
		default:
		}

		app.window.PollEvents()
	}

	return nil
}

func (app *HelloTriangleApplication) cleanup() {
	if app.instance != nil {
		app.instance.Destroy()
		app.instance = nil
	}

	if app.window != nil {
		app.window.Destroy()
		app.window = nil
	}
}

func (app *HelloTriangleApplication) logDebug(msg driver.DebugMessage) {
	level := slog.LevelWarn
	if msg.Severity == driver.SeverityError {
		level = slog.LevelError
	}
	app.logger.Log(context.Background(), level, msg.Text, slog.String("type", msg.Type))
}

func printNames(w io.Writer, header string, names []string) {
	fmt.Fprintln(w, header)
	for _, name := range names {
		fmt.Fprintf(w, "\t%s\n", name)
	}
}
