package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/recapx/recap/internal/generator"
)

func newGenerateCmd() *cobra.Command {
	var (
		manifestPath string
		pattern      string
		name         string
		pkg          string
		output       string
		groupNames   []string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate typed Go accessors for patterns",
		Long: `Generate typed Go accessors for patterns.

With --pattern, generates a single file from the flags. Otherwise the
patterns come from a TOML manifest (--manifest, ./recap.toml, or the
XDG config location, in that order).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pattern != "" {
				return generateOne(generator.Config{
					Pattern:    pattern,
					Name:       name,
					Package:    pkg,
					OutputFile: output,
					GroupNames: groupNames,
					Logger:     log,
				})
			}
			path, err := findManifest(manifestPath)
			if err != nil {
				return err
			}
			return generateFromManifest(path)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Manifest file (default ./recap.toml)")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Pattern to generate for (bypasses the manifest)")
	cmd.Flags().StringVar(&name, "name", "", "Exported identifier prefix for --pattern")
	cmd.Flags().StringVar(&pkg, "package", "", "Go package name for --pattern")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file for --pattern")
	cmd.Flags().StringArrayVar(&groupNames, "group-name", nil, "Declare a group name by ordinal (repeatable)")
	return cmd
}

func generateOne(config generator.Config) error {
	g, err := generator.New(config)
	if err != nil {
		return err
	}
	if config.OutputFile == "" {
		src, err := g.Source()
		if err != nil {
			return err
		}
		fmt.Print(src)
		return nil
	}
	if err := g.Write(); err != nil {
		return err
	}
	log.Infof("wrote %s", config.OutputFile)
	return nil
}

func generateFromManifest(path string) error {
	m, err := LoadManifest(path)
	if err != nil {
		return err
	}
	base := filepath.Dir(path)

	if m.OutDir != "" {
		if err := os.MkdirAll(filepath.Join(base, m.OutDir), 0o755); err != nil {
			return err
		}
	}

	for _, p := range m.Patterns {
		out := m.OutputFile(base, p)
		log.Debugf("generating %s from %q", out, p.Pattern)
		err := generateOne(generator.Config{
			Pattern:    p.Pattern,
			Name:       p.Name,
			Package:    m.Package,
			OutputFile: out,
			GroupNames: p.GroupNames,
			Logger:     log,
		})
		if err != nil {
			return fmt.Errorf("pattern %s: %w", p.Name, err)
		}
	}
	log.Infof("generated %d file(s)", len(m.Patterns))
	return nil
}
