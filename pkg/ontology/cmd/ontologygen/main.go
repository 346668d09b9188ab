package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/tools/imports"
)

var (
	fInput   = flag.String("input", "", "Input schema file")
	fPkg     = flag.String("pkg", "ontology", "Package name for generated code")
	fOutput  = flag.String("output", "", "output file")
	fVerbose = flag.Bool("v", false, "log progress")
)

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *fVerbose {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *fInput == "" {
		log.Error("input file must be specified")
		os.Exit(2)
	}

	if err := run(log); err != nil {
		log.Error("schema generation failed", "input", *fInput, "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	f, err := os.Open(*fInput)
	if err != nil {
		return err
	}

	defer f.Close()

	sf, err := loadSchema(f)
	if err != nil {
		return err
	}

	log.Debug("loaded schema", "kinds", len(sf.Kinds))

	code, err := GenerateSchema(sf, *fPkg)
	if err != nil {
		return err
	}

	formatted, err := formatSource("out.go", code)
	if err != nil {
		str := err.Error()
		lines := strings.Split(code, "\n")

		var sb strings.Builder

		sb.WriteString(str)
		sb.WriteString("\n")

		for i, line := range lines {
			fmt.Fprintf(&sb, "%d: %s\n", i+1, line)
		}

		return fmt.Errorf("error formatting generated code: %s", sb.String())
	}

	if *fOutput == "" {
		fmt.Println(string(formatted))
		return nil
	}

	log.Debug("writing generated code", "output", *fOutput, "bytes", len(formatted))

	return os.WriteFile(*fOutput, formatted, 0644)
}

func formatSource(name, code string) ([]byte, error) {
	return imports.Process(name, []byte(code), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
}
