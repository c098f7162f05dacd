package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const componentsDir = "internal/components"

const tmpl = `package components

import "unigo/internal/engine"

func init() {
	engine.RegisterComponent("{{.Name}}", func(p engine.Props) (engine.Component, error) {
		return &{{.Name}}{Speed: p.Float("speed", 1)}, nil
	})
}

type {{.Name}} struct {
	engine.BaseComponent
	Speed float32
}

func ({{.Recv}} *{{.Name}}) Start() {
}

func ({{.Recv}} *{{.Name}}) Update(ctx *engine.Context) {
}
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: go run ./cmd/newscript <ComponentName>\n")
		fmt.Fprintf(os.Stderr, "Example: go run ./cmd/newscript EnemyChaser\n")
		os.Exit(1)
	}

	name := os.Args[1]
	if err := validateName(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(componentsDir, toSnakeCase(name)+".go")
	if _, err := os.Stat(outPath); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", outPath)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, []byte(render(name)), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s\n", outPath)
	fmt.Printf("Component %q registered. Add it to a scene object:\n\n", name)
	fmt.Printf("  components:\n")
	fmt.Printf("    - type: %s\n", name)
	fmt.Printf("      props:\n")
	fmt.Printf("        speed: 1.0\n")
}

func validateName(name string) error {
	if name == "" || !unicode.IsUpper(rune(name[0])) {
		return fmt.Errorf("component name must start with an uppercase letter")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("component name %q is not a Go identifier", name)
		}
	}
	return nil
}

func render(name string) string {
	content := strings.ReplaceAll(tmpl, "{{.Name}}", name)
	return strings.ReplaceAll(content, "{{.Recv}}", string(unicode.ToLower(rune(name[0]))))
}

func toSnakeCase(s string) string {
	var result []rune
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			result = append(result, '_')
		}
		result = append(result, unicode.ToLower(r))
	}
	return string(result)
}
