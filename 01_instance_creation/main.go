package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/cockroachdb/errors"

	"github.com/piccicla/vulkantutorial/internal/app"
)

func init() {
	// SDL and GLFW both insist on the main thread
	runtime.LockOSThread()
}

func main() {
	opts, err := app.ParseArgs(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalln(err)
	}

	logger := app.NewLogger(os.Stderr, opts.Verbose)
	opts.Logger = logger
	opts.EnableValidation = false

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = app.New(opts).Run(ctx)
	stop()
	if err != nil {
		logger.Error("instance creation failed", app.ErrorAttr(err))
		os.Exit(1)
	}
}
