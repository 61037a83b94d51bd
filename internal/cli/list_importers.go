package cli

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/mrlokans/pointskeeper/internal/cubepoints"
	"github.com/mrlokans/pointskeeper/internal/importer"
)

// ListImportersCommand prints the registered importer backends.
type ListImportersCommand struct{}

func NewListImportersCommand() *ListImportersCommand {
	return &ListImportersCommand{}
}

func (cmd *ListImportersCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list-importers", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list-importers\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List the available importer backends.\n")
	}

	return fs.Parse(args)
}

func (cmd *ListImportersCommand) Run() error {
	// Listing only reads descriptors; the factories never run, so the
	// backends are registered without opening either database.
	registry := importer.NewRegistry()
	registry.OnRegister(func(r *importer.Registry) {
		cubepoints.Register(r, cubepoints.Deps{}, importer.NewStaticHost(), importer.NewValidators())
	})

	descriptors := registry.Get()

	slugs := make([]string, 0, len(descriptors))
	for slug := range descriptors {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	for _, slug := range slugs {
		fmt.Printf("%s\t%s\n", slug, descriptors[slug].Name)
	}

	return nil
}
