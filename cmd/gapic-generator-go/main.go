// Copyright (c) 2026 The gapic-generator-go Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// gapic-generator-go renders a YAML service model into a Go client package.
//
//	gapic-generator-go -model api.yaml -out ./testapi
package main

import (
	"flag"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/landrito/gapic-generator-go/internal/gen"
	"github.com/landrito/gapic-generator-go/internal/schema"
)

func main() {
	modelPath := flag.String("model", "", "path to the YAML service model")
	outDir := flag.String("out", ".", "directory the client package is written into")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger, *modelPath, *outDir); err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}
}

func run(logger *zap.Logger, modelPath, outDir string) error {
	if modelPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	api, err := schema.Load(modelPath)
	if err != nil {
		return err
	}
	logger.Info("loaded service model",
		zap.String("api", api.Naming.Name),
		zap.Int("services", len(api.Services)),
	)

	files, err := gen.Generate(api)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for _, file := range files {
		target := filepath.Join(outDir, file.Name)
		if err := os.WriteFile(target, file.Content, 0o644); err != nil {
			return err
		}
		logger.Info("wrote", zap.String("file", target), zap.Int("bytes", len(file.Content)))
	}
	return nil
}
