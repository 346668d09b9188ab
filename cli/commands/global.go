package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

type GlobalFlags struct {
	Verbose []bool `short:"v" long:"verbose" description:"Enable verbose output"`
	Options string `long:"options" description:"Read options from a TOML file"`
}

type Context struct {
	context.Context

	verbose int
	Log     *slog.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	cancels []func()

	exitCode int
}

func logLevel(verbose int) slog.Level {
	switch verbose {
	case 0:
		return slog.LevelWarn
	case 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func setup(ctx context.Context, flags *GlobalFlags) *Context {
	s := &Context{
		verbose: len(flags.Verbose),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}

	level := logLevel(s.verbose)

	dynLevel := new(slog.LevelVar)
	dynLevel.Set(level)

	s.Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: dynLevel,
	}))

	sigCh := make(chan os.Signal, 1)

	signal.Notify(sigCh, os.Interrupt, unix.SIGTERM, unix.SIGTTIN, unix.SIGTTOU)

	ctx, cancel := context.WithCancel(ctx)
	s.cancels = append(s.cancels, cancel)

	sigCtx, sigCancel := context.WithCancel(ctx)
	s.cancels = append(s.cancels, sigCancel)

	go func() {
		defer signal.Stop(sigCh)

		for {
			select {
			case <-sigCtx.Done():
				return
			case sig := <-sigCh:
				var target slog.Level

				switch sig {
				case unix.SIGTTIN:
					target = dynLevel.Level() - 4
				case unix.SIGTTOU:
					target = dynLevel.Level() + 4
				default:
					s.Log.InfoContext(sigCtx, "Signal received, shutting down")
					cancel()
					return
				}

				if target < slog.LevelDebug || target > slog.LevelError {
					continue
				}

				dynLevel.Set(target)

				s.Log.ErrorContext(sigCtx, "Log leveling changed", "level", target)
			}
		}
	}()

	s.Log.DebugContext(ctx, "Configured logging", "level", level)

	s.Context = ctx
	return s
}

func (c *Context) Close() error {
	for _, cancel := range c.cancels {
		cancel()
	}

	return nil
}

func (c *Context) SetExitCode(code int) {
	c.exitCode = code
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Stdout, format, args...)
}

