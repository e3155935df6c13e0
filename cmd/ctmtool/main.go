// ctmtool is a CLI utility for inspecting and converting OpenCTM mesh files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katiya-cw/OpenCTM/internal/config"
	"github.com/katiya-cw/OpenCTM/internal/logger"
	"github.com/katiya-cw/OpenCTM/internal/objfile"
	"github.com/katiya-cw/OpenCTM/pkg/ctm"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "info":
		cmdInfo(args)
	case "obj2ctm":
		cmdObjToCTM(cfg, args)
	case "ctm2obj":
		cmdCTMToObj(args)
	case "config-init":
		cmdConfigInit(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`ctmtool - OpenCTM mesh file utility

Usage:
  ctmtool [global flags] <command> [options]

Commands:
  info <file.ctm>                     Show mesh information
  obj2ctm [-normals] <in.obj> <out.ctm>  Convert Wavefront OBJ to CTM
  ctm2obj <in.ctm> <out.obj>          Convert CTM to Wavefront OBJ
  config-init [path]                  Write a default config file

Global flags:
  -config <path>     Config file (default: ctmtool.yaml)
  -method <m>        Compression method: raw, mg1, mg2
  -precision <p>     Vertex precision for mg2
  -comment <s>       File comment
  -debug             Debug logging

Examples:
  ctmtool info bunny.ctm
  ctmtool -method mg2 -precision 0.001 obj2ctm bunny.obj bunny.ctm
  ctmtool ctm2obj bunny.ctm bunny.obj`)
}

// fatalCTM reports a pending context error and exits.
func fatalCTM(what string, code ctm.ErrorCode) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", what, code)
	os.Exit(1)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: ctmtool info <file.ctm>")
		os.Exit(1)
	}

	imp := ctm.NewImporter()
	defer imp.Close()

	imp.Load(args[0])
	if code := imp.Err(); code != ctm.ErrNone {
		fatalCTM("loading "+args[0], code)
	}

	fmt.Printf("File:       %s\n", args[0])
	fmt.Printf("Vertices:   %d\n", imp.GetInteger(ctm.VertexCount))
	fmt.Printf("Triangles:  %d\n", imp.GetInteger(ctm.TriangleCount))
	fmt.Printf("Normals:    %v\n", imp.GetInteger(ctm.HasNormals) == 1)

	texCount := imp.GetInteger(ctm.TexMapCount)
	fmt.Printf("Tex maps:   %d\n", texCount)
	for i := uint32(0); i < texCount; i++ {
		name := imp.GetString(ctm.TexMap1 + ctm.Property(i))
		fmt.Printf("  [%d] %q\n", i, name)
	}

	attribCount := imp.GetInteger(ctm.AttribMapCount)
	fmt.Printf("Attr maps:  %d\n", attribCount)
	for i := uint32(0); i < attribCount; i++ {
		name := imp.GetString(ctm.AttribMap1 + ctm.Property(i))
		fmt.Printf("  [%d] %q\n", i, name)
	}

	if comment := imp.GetString(ctm.FileComment); comment != "" {
		fmt.Printf("Comment:    %q\n", comment)
	}
}

func cmdObjToCTM(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("obj2ctm", flag.ExitOnError)
	genNormals := fs.Bool("normals", false, "Compute normals when the OBJ has none")
	rel := fs.Float64("rel", float64(cfg.Defaults.RelPrecision), "Relative vertex precision (0 = use absolute)")
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: ctmtool obj2ctm [-normals] [-rel r] <in.obj> <out.ctm>")
		os.Exit(1)
	}

	mesh, err := objfile.ParseFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if mesh.Normals == nil && *genNormals {
		mesh.ComputeNormals()
	}

	method, ok := methodFromName(cfg.Defaults.Method)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown method %q\n", cfg.Defaults.Method)
		os.Exit(1)
	}

	exp := ctm.NewExporter()
	defer exp.Close()

	exp.DefineMesh(mesh.Vertices, mesh.Indices, mesh.Normals)
	if code := exp.Err(); code != ctm.ErrNone {
		fatalCTM("defining mesh", code)
	}

	if mesh.TexCoords != nil {
		if exp.AddTexMap(mesh.TexCoords, "uv") == ctm.PropNone {
			fatalCTM("adding texture map", exp.Err())
		}
	}

	exp.SetCompressionMethod(method)
	if *rel > 0 {
		exp.SetVertexPrecisionRel(float32(*rel))
	} else {
		exp.SetVertexPrecision(cfg.Defaults.Precision)
	}
	if cfg.Defaults.Comment != "" {
		exp.SetComment(cfg.Defaults.Comment)
	}
	if code := exp.Err(); code != ctm.ErrNone {
		fatalCTM("configuring export", code)
	}

	exp.Save(fs.Arg(1))
	if code := exp.Err(); code != ctm.ErrNone {
		fatalCTM("saving "+fs.Arg(1), code)
	}

	logger.Sugar.Infow("converted",
		"input", fs.Arg(0),
		"output", fs.Arg(1),
		"method", method.String(),
		"vertices", mesh.VertexCount(),
		"triangles", mesh.TriangleCount(),
	)
	fmt.Printf("Wrote %s (%d vertices, %d triangles, %s)\n",
		fs.Arg(1), mesh.VertexCount(), mesh.TriangleCount(), method)
}

func cmdCTMToObj(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: ctmtool ctm2obj <in.ctm> <out.obj>")
		os.Exit(1)
	}

	imp := ctm.NewImporter()
	defer imp.Close()

	imp.Load(args[0])
	if code := imp.Err(); code != ctm.ErrNone {
		fatalCTM("loading "+args[0], code)
	}

	mesh := &objfile.Mesh{
		Vertices: imp.GetFloatArray(ctm.Vertices),
		Indices:  imp.GetIntegerArray(ctm.Indices),
		Normals:  imp.GetFloatArray(ctm.Normals),
	}
	if imp.GetInteger(ctm.TexMapCount) > 0 {
		mesh.TexCoords = imp.GetFloatArray(ctm.TexMap1)
	}

	if err := objfile.WriteFile(args[1], mesh); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d vertices, %d triangles)\n",
		args[1], mesh.VertexCount(), mesh.TriangleCount())
}

func cmdConfigInit(args []string) {
	cfg := config.Default()

	var err error
	if len(args) > 0 {
		err = cfg.SaveTo(args[0])
	} else {
		err = cfg.Save()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Wrote default config")
}

func methodFromName(name string) (ctm.Method, bool) {
	switch name {
	case "raw":
		return ctm.MethodRaw, true
	case "mg1", "":
		return ctm.MethodMG1, true
	case "mg2":
		return ctm.MethodMG2, true
	default:
		return 0, false
	}
}
