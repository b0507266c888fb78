package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/piccicla/vulkantutorial/internal/driver"
	"github.com/piccicla/vulkantutorial/internal/window"
)

type Options struct {
	Window       window.Backend
	WindowConfig window.Config
	Driver       driver.Backend

	EnableValidation bool
	Verbose          bool

	Logger *slog.Logger
	// Out receives the extension listings.
	Out io.Writer

	OpenWindow func(window.Backend, window.Config) (window.Window, error)
	OpenDriver func(driver.Backend, unsafe.Pointer) (driver.Driver, error)
}

func DefaultOptions() Options {
	return Options{
		Window:       window.SDL,
		WindowConfig: window.DefaultConfig(),
		Driver:       driver.Vkng,
	}
}

// ParseArgs reads command line flags on top of DefaultOptions. It returns
// flag.ErrHelp when help was requested.
func ParseArgs(name string, args []string, output io.Writer) (Options, error) {
	opts := DefaultOptions()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	windowBackend := fs.String("window", string(opts.Window), "windowing library: sdl or glfw")
	driverBackend := fs.String("driver", string(opts.Driver), "vulkan binding: vkng or vulkan-go")
	fs.BoolVar(&opts.Verbose, "v", false, "log debug messages")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, errors.Newf("unrecognized argument: %s", fs.Arg(0))
	}

	opts.Window = window.Backend(*windowBackend)
	switch opts.Window {
	case window.SDL, window.GLFW:
	default:
		return opts, errors.Wrapf(window.ErrUnknownBackend, "-window %q", *windowBackend)
	}

	opts.Driver = driver.Backend(*driverBackend)
	switch opts.Driver {
	case driver.Vkng, driver.VulkanGo:
	default:
		return opts, errors.Wrapf(driver.ErrUnknownBackend, "-driver %q", *driverBackend)
	}

	return opts, nil
}

// NewLogger returns a text logger on w tagged with a fresh run id.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("run", uuid.NewString()))
}

// ErrorAttr formats err with its stack trace for the fatal log line.
func ErrorAttr(err error) slog.Attr {
	return slog.String("err", fmt.Sprintf("%+v", err))
}
