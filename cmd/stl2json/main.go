// stl2json converts an STL mesh into a single-group scene triangle asset.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Faultbox/sceneview/internal/assets"
	"github.com/Faultbox/sceneview/internal/stl"
)

func main() {
	out := flag.String("o", "", "Output JSON path (default: input name with .json)")
	shininess := flag.Float64("n", 11, "Specular exponent of the generated material")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}
	input := flag.Arg(0)
	output := *out
	if output == "" {
		output = strings.TrimSuffix(input, ".stl") + ".json"
	}

	mesh, err := stl.Load(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	format := "ASCII"
	if mesh.Binary {
		format = "binary"
	}
	fmt.Printf("Read %s (%s STL, %d facets)\n", input, format, len(mesh.Facets))

	mat := stl.DefaultMaterial()
	mat.N = float32(*shininess)
	group := mesh.ToGroup(mat)

	data, err := json.MarshalIndent([]assets.RawGroup{group}, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", output)
	fmt.Printf("  vertices:  %d\n", len(group.Vertices))
	fmt.Printf("  triangles: %d\n", len(group.Triangles))
}

func printUsage() {
	fmt.Println(`stl2json - convert an STL mesh to a sceneview triangle asset

Usage:
  stl2json [-o out.json] [-n 11] <input.stl>

Vertices and normals are converted from Z-up to Y-up.

Examples:
  stl2json model.stl
  stl2json -o scene.json -n 25 model.stl`)
}
