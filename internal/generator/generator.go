// Package generator emits Go source for a literal, statically known pattern:
// a fixed-shape result struct derived from the pattern's Schema, plus typed
// find functions over the standard regexp engine. Running the structure
// analyzer at build time turns the Schema's runtime Required/Optional
// contract into a compile-time one for callers of the generated code.
package generator

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dave/jennifer/jen"
	"github.com/sirupsen/logrus"

	"github.com/recapx/recap/internal/codegen"
	"github.com/recapx/recap/pkg/recap"
)

// Config holds the configuration for one generated pattern.
type Config struct {
	// Pattern is the regular expression to analyze.
	Pattern string

	// Name is the exported prefix for generated identifiers (e.g. "Date"
	// generates DateResult, FindDate, FindAllDate).
	Name string

	// Package is the Go package name for the generated file.
	Package string

	// OutputFile is where Write stores the generated source. Optional when
	// only Source is used.
	OutputFile string

	// GroupNames declares names for capturing groups by ordinal; inline
	// pattern names take precedence.
	GroupNames []string

	// Logger, when non-nil, receives per-slot analysis output.
	Logger *logrus.Logger
}

// Validate checks that the configuration can produce a file.
func (c Config) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if c.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if c.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// Generator builds the source for one pattern.
type Generator struct {
	config  Config
	pattern *recap.Pattern
	file    *jen.File
}

// New registers the pattern (engine compile plus schema derivation) and
// prepares a generator for it. Registration failures surface the same typed
// errors as recap.Compile.
func New(config Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	pattern, err := recap.CompileWithNames(config.Pattern, config.GroupNames)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		config:  config,
		pattern: pattern,
		file:    jen.NewFile(config.Package),
	}

	if log := config.Logger; log != nil {
		log.Debugf("pattern %q: %d capturing groups", config.Pattern, pattern.NumGroups())
		for _, slot := range pattern.Schema().Slots {
			log.Debugf("  group %d (%s): %s -> field %s",
				slot.Index, slot.Name, slot.Kind, g.fieldName(slot.Index))
		}
	}

	g.build()
	return g, nil
}

// Source renders the generated file.
func (g *Generator) Source() (string, error) {
	var buf bytes.Buffer
	if err := g.file.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render generated code: %w", err)
	}
	return buf.String(), nil
}

// Write renders the generated file to Config.OutputFile.
func (g *Generator) Write() error {
	if g.config.OutputFile == "" {
		return fmt.Errorf("no output file configured")
	}
	src, err := g.Source()
	if err != nil {
		return err
	}
	return os.WriteFile(g.config.OutputFile, []byte(src), 0o644)
}

func (g *Generator) fieldName(ordinal int) string {
	return codegen.FieldName(g.pattern.Names()[ordinal], ordinal)
}

func (g *Generator) reVar() string      { return codegen.LowerFirst(g.config.Name) + "Re" }
func (g *Generator) structName() string { return g.config.Name + "Result" }
func (g *Generator) ctorName() string   { return "new" + g.structName() }

// build assembles the whole generated file.
func (g *Generator) build() {
	g.file.HeaderComment(fmt.Sprintf("Code generated by recap for pattern %q. DO NOT EDIT.", g.config.Pattern))

	g.file.Var().Id(g.reVar()).Op("=").Qual("regexp", "MustCompile").Call(jen.Lit(g.config.Pattern))
	g.file.Line()

	g.buildResultStruct()
	g.buildFind()
	g.buildFindAll()
	g.buildCtor()
}

// buildResultStruct emits the fixed-shape result type: required groups as
// plain strings, optional groups as *string, nil when the group did not
// participate.
func (g *Generator) buildResultStruct() {
	fields := []jen.Code{
		jen.Id("Match").String().Comment("Full match"),
	}
	for _, slot := range g.pattern.Schema().Slots {
		field := jen.Id(g.fieldName(slot.Index))
		if slot.Kind == recap.OptionalSlot {
			field = field.Op("*").String().Comment("nil when the group did not participate")
		} else {
			field = field.String()
		}
		fields = append(fields, field)
	}

	g.file.Commentf("%s holds one match of the %s pattern.", g.structName(), g.config.Name)
	g.file.Type().Id(g.structName()).Struct(fields...)
	g.file.Line()
}

func (g *Generator) buildFind() {
	g.file.Commentf("Find%s returns the leftmost match of the %s pattern in input.", g.config.Name, g.config.Name)
	g.file.Func().Id("Find"+g.config.Name).
		Params(jen.Id("input").String()).
		Params(jen.Op("*").Id(g.structName()), jen.Bool()).
		Block(
			jen.Id("m").Op(":=").Id(g.reVar()).Dot("FindStringSubmatchIndex").Call(jen.Id("input")),
			jen.If(jen.Id("m").Op("==").Nil()).Block(
				jen.Return(jen.Nil(), jen.False()),
			),
			jen.Return(jen.Id(g.ctorName()).Call(jen.Id("input"), jen.Id("m")), jen.True()),
		)
	g.file.Line()
}

func (g *Generator) buildFindAll() {
	g.file.Commentf("FindAll%s returns successive non-overlapping matches of the %s pattern.", g.config.Name, g.config.Name)
	g.file.Comment("If n > 0 it returns at most n matches; n <= 0 returns them all.")
	g.file.Func().Id("FindAll"+g.config.Name).
		Params(jen.Id("input").String(), jen.Id("n").Int()).
		Params(jen.Index().Op("*").Id(g.structName())).
		Block(
			jen.Id("ms").Op(":=").Id(g.reVar()).Dot("FindAllStringSubmatchIndex").Call(jen.Id("input"), jen.Id("n")),
			jen.If(jen.Id("ms").Op("==").Nil()).Block(
				jen.Return(jen.Nil()),
			),
			jen.Id("out").Op(":=").Make(jen.Index().Op("*").Id(g.structName()), jen.Lit(0), jen.Len(jen.Id("ms"))),
			jen.For(jen.List(jen.Id("_"), jen.Id("m")).Op(":=").Range().Id("ms")).Block(
				jen.Id("out").Op("=").Append(jen.Id("out"), jen.Id(g.ctorName()).Call(jen.Id("input"), jen.Id("m"))),
			),
			jen.Return(jen.Id("out")),
		)
	g.file.Line()
}

// buildCtor emits the span-table-to-struct constructor. It encodes the same
// Required/Optional contract the runtime extractor checks: required spans
// are sliced unconditionally, optional spans are guarded.
func (g *Generator) buildCtor() {
	body := []jen.Code{
		jen.Id("r").Op(":=").Op("&").Id(g.structName()).Values(jen.Dict{
			jen.Id("Match"): jen.Id("input").Index(jen.Id("m").Index(jen.Lit(0)), jen.Id("m").Index(jen.Lit(1))),
		}),
	}

	for _, slot := range g.pattern.Schema().Slots {
		lo, hi := 2*slot.Index, 2*slot.Index+1
		value := jen.Id("input").Index(jen.Id("m").Index(jen.Lit(lo)), jen.Id("m").Index(jen.Lit(hi)))
		if slot.Kind == recap.OptionalSlot {
			body = append(body,
				jen.If(jen.Id("m").Index(jen.Lit(lo)).Op(">=").Lit(0)).Block(
					jen.Id("v").Op(":=").Add(value),
					jen.Id("r").Dot(g.fieldName(slot.Index)).Op("=").Op("&").Id("v"),
				),
			)
		} else {
			body = append(body,
				jen.Id("r").Dot(g.fieldName(slot.Index)).Op("=").Add(value),
			)
		}
	}
	body = append(body, jen.Return(jen.Id("r")))

	g.file.Func().Id(g.ctorName()).
		Params(jen.Id("input").String(), jen.Id("m").Index().Int()).
		Params(jen.Op("*").Id(g.structName())).
		Block(body...)
}
