package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mvx3/csscolor"
	"github.com/mvx3/csscolor/internal/cli"
	"github.com/mvx3/csscolor/internal/imaging"
	"github.com/mvx3/csscolor/internal/server"
	"github.com/mvx3/csscolor/internal/swatch"
)

func main() {
	cfg, err := cli.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.ServeAddr != "" {
		log, err := zap.NewProduction()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer log.Sync()

		if err := server.New(log).ListenAndServe(cfg.ServeAddr); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
		return
	}

	hex, err := csscolor.ToHex(cfg.Value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.All {
		for _, f := range csscolor.Formats() {
			out, err := csscolor.FromHex(hex, f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("%-6s %s\n", f, out)
		}
	} else {
		out, err := csscolor.FromHex(hex, cfg.Target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
	}

	if cfg.SwatchPath != "" {
		r, g, b, err := csscolor.RGB(hex)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		img := swatch.Render(r, g, b, hex, swatch.DefaultConfig())
		if err := imaging.SavePNG(cfg.SwatchPath, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Swatch written: %s\n", cfg.SwatchPath)
	}
}
