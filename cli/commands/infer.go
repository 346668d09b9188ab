package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/mitchellh/cli"
	"github.com/mitchellh/mapstructure"
	toml "github.com/pelletier/go-toml/v2"
	"miren.dev/mflags"
)

// Cmd wraps a command function with mflags parsing
type Cmd struct {
	syn, name string
	f         reflect.Value

	opts   reflect.Value
	global *GlobalFlags
	fs     *mflags.FlagSet
}

var _ cli.Command = (*Cmd)(nil)

// Infer creates a command from a function with the signature:
// func(ctx *Context, opts StructType) error
func Infer(name, syn string, f interface{}) *Cmd {
	rv := reflect.ValueOf(f)

	if rv.Kind() != reflect.Func {
		panic("must pass a function")
	}

	rt := rv.Type()

	if rt.NumIn() != 2 {
		panic("must provide two arguments only")
	}

	if rt.NumOut() != 1 {
		panic("must return one argument only")
	}

	if rt.In(0) != reflect.TypeFor[*Context]() {
		panic("first argument must be *Context")
	}

	in := rt.In(1)

	if in.Kind() != reflect.Struct {
		panic("argument must be a struct")
	}

	sv := reflect.New(in)

	fs := mflags.NewFlagSet(name)

	var globalFlags GlobalFlags

	err := fs.FromStruct(&globalFlags)
	if err != nil {
		panic(fmt.Sprintf("error parsing global flags: %v", err))
	}

	err = fs.FromStruct(sv.Interface())
	if err != nil {
		panic(fmt.Sprintf("error parsing command options: %v", err))
	}

	return &Cmd{
		syn:    syn,
		name:   name,
		f:      rv,
		global: &globalFlags,
		opts:   sv,
		fs:     fs,
	}
}

// ReadOptions fills any option named by its long flag from a TOML file.
func (w *Cmd) ReadOptions(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close()

	vals := make(map[string]any)

	dec := toml.NewDecoder(f)
	err = dec.Decode(&vals)
	if err != nil {
		return err
	}

	if err := consumeValues(w.opts.Interface(), vals); err != nil {
		return err
	}

	return consumeValues(w.global, vals)
}

// consumeValues fills the fields of target whose long flag names a key in
// vals. Keys for other commands are ignored.
func consumeValues(target any, vals map[string]any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "long",
		Squash:           true,
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return err
	}

	return dec.Decode(vals)
}

func (w *Cmd) show(out io.Writer, rv reflect.Value) {
	vals := make(map[string]any)

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		name := rv.Type().Field(i).Tag.Get("long")
		if name == "" {
			name = rv.Type().Field(i).Tag.Get("short")
		}
		if name == "" {
			continue
		}
		vals[name] = field.Interface()
	}

	data, err := toml.Marshal(vals)
	if err != nil {
		fmt.Fprintln(out, err)
	} else {
		fmt.Fprint(out, string(data))
	}
}

func (w *Cmd) clean(rv reflect.Value) error {
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		typ := rv.Type().Field(i).Tag.Get("type")
		if typ == "" {
			continue
		}

		name := rv.Type().Field(i).Tag.Get("long")
		if name == "" {
			name = rv.Type().Field(i).Tag.Get("short")
		}

		switch typ {
		case "file":
			path := field.String()
			if path == "" || path == "-" {
				continue
			}

			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("error validating %s as file: %w", name, err)
			}
		case "kind":
			val := field.String()
			if val == "" {
				continue
			}

			if _, err := kindFromFlag(val); err != nil {
				return fmt.Errorf("error validating %s: %w", name, err)
			}
		}
	}

	return nil
}

// Help returns help text for the command
func (w *Cmd) Help() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Usage: %s [options]\n\n", w.name)
	fmt.Fprintf(&buf, "%s\n\n", w.syn)
	fmt.Fprintf(&buf, "Command Options:\n")
	w.fs.VisitAll(func(f *mflags.Flag) {
		if f.Short != 0 {
			fmt.Fprintf(&buf, "  -%c, --%s\n", f.Short, f.Name)
		} else {
			fmt.Fprintf(&buf, "      --%s\n", f.Name)
		}
		fmt.Fprintf(&buf, "        %s", f.Usage)
		if f.DefValue != "" {
			fmt.Fprintf(&buf, " (default: %s)", f.DefValue)
		}
		fmt.Fprintf(&buf, "\n")
	})
	return buf.String()
}

// Synopsis returns a short description
func (w *Cmd) Synopsis() string {
	return w.syn
}

type OptsValidate interface {
	Validate(glbl *GlobalFlags) error
}

// Run implements cli.Command
func (w *Cmd) Run(args []string) int {
	if err := w.fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n\n", err)
		return cli.RunResultHelp
	}

	ctx := setup(context.Background(), w.global)
	defer ctx.Close()

	err := w.invoke(ctx)
	if err == nil {
		return 0
	}

	var code ErrExitCode
	if errors.As(err, &code) {
		return int(code)
	}

	if !errors.Is(err, context.Canceled) {
		fmt.Fprintf(ctx.Stderr, "ERROR: %s\n", err)
	}

	return 1
}

func (w *Cmd) prepare(out io.Writer) error {
	if w.global.Options != "" {
		if err := w.ReadOptions(w.global.Options); err != nil {
			return fmt.Errorf("error loading options: %w", err)
		}
	}

	err := w.clean(w.opts.Elem())
	if err != nil {
		return fmt.Errorf("error cleaning command options: %w", err)
	}

	if ov, ok := w.opts.Interface().(OptsValidate); ok {
		err = ov.Validate(w.global)
		if err != nil {
			return fmt.Errorf("error validating options: %w", err)
		}
	}

	if os.Getenv("DEBUG_CONFIG") != "" {
		fmt.Fprintln(out, "# Configuration")
		w.show(out, reflect.ValueOf(w.global).Elem())
		w.show(out, w.opts.Elem())
	}

	return nil
}

func (w *Cmd) invoke(ctx *Context) error {
	if err := w.prepare(ctx.Stderr); err != nil {
		return err
	}

	rets := w.f.Call([]reflect.Value{reflect.ValueOf(ctx), w.opts.Elem()})

	if err, ok := rets[0].Interface().(error); ok {
		if err != nil {
			return err
		}
	}

	if ctx.exitCode != 0 {
		return ErrExitCode(ctx.exitCode)
	}

	return nil
}

type ErrExitCode int

func (e ErrExitCode) Error() string {
	return fmt.Sprintf("exit code %d", e)
}

type CommandOutput struct {
	Stderr bytes.Buffer
	Stdout bytes.Buffer
}

// RunCommand invokes f as the command line would, capturing its output.
func RunCommand(f any, args ...string) (*CommandOutput, error) {
	return RunCommandWithInput(f, strings.NewReader(""), args...)
}

// RunCommandWithInput is RunCommand with stdin replaced by in.
func RunCommandWithInput(f any, in io.Reader, args ...string) (*CommandOutput, error) {
	cmd := Infer("test command", "A command being tested", f)

	var out CommandOutput

	err := cmd.fs.Parse(args)
	if err != nil {
		out.Stderr.WriteString(err.Error())
		return &out, err
	}

	ctx := setup(context.Background(), cmd.global)
	defer ctx.Close()

	ctx.Stdin = in
	ctx.Stdout = &out.Stdout
	ctx.Stderr = &out.Stderr

	err = cmd.invoke(ctx)
	return &out, err
}
