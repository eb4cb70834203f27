//-----------------------------------------------------------------------------
// Copyright (c) 2023-present The rstree authors
//
// This file is part of rstree.
//
// rstree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Command rstree parses structured list markup and writes the resulting
// syntax tree in a chosen encoding.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/term"

	"codeberg.org/rstree/rstree/encoder"
	"codeberg.org/rstree/rstree/input"
	"codeberg.org/rstree/rstree/logger"
	"codeberg.org/rstree/rstree/parser"

	_ "codeberg.org/rstree/rstree/encoder/rstenc"
	_ "codeberg.org/rstree/rstree/encoder/szenc"
	_ "codeberg.org/rstree/rstree/encoder/textenc"
	_ "codeberg.org/rstree/rstree/parser/markdown"
	_ "codeberg.org/rstree/rstree/parser/plain"
	_ "codeberg.org/rstree/rstree/parser/rst"
)

func main() {
	var (
		syntax = flag.String("syntax", "rst", "input syntax: "+strings.Join(parser.GetSyntaxes(), ", "))
		enc    = flag.String("enc", encoder.GetDefaultEncoding(), "output encoding: "+strings.Join(encoder.GetEncodings(), ", "))
		watch  = flag.Bool("watch", false, "re-parse the file on every change")
		level  = flag.String("log-level", "info", "log level")
	)
	flag.Parse()

	log := logger.New(logger.NewLogWriterAdapter(os.Stderr), "rstree")
	if lv := logger.ParseLevel(*level); lv.IsValid() {
		log.SetLevel(lv)
	}

	e := encoder.Create(*enc)
	if e == nil {
		log.Fatal().Str("encoding", *enc).
			Str("available", strings.Join(encoder.GetEncodings(), ", ")).
			Msg("Unknown encoding")
		os.Exit(1)
	}

	switch flag.NArg() {
	case 0:
		if *watch {
			log.Fatal().Msg("-watch needs a file argument")
			os.Exit(1)
		}
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("Read stdin")
			os.Exit(1)
		}
		if err := process(src, *syntax, e); err != nil {
			log.Fatal().Err(err).Msg("Write failed")
			os.Exit(1)
		}
	case 1:
		name := flag.Arg(0)
		if err := processFile(name, *syntax, e); err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("Process failed")
			os.Exit(1)
		}
		if *watch {
			if err := watchFile(log, name, *syntax, e); err != nil {
				log.Fatal().Err(err).Str("file", name).Msg("Watch failed")
				os.Exit(1)
			}
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: rstree [flags] [file]")
		flag.PrintDefaults()
		os.Exit(2)
	}
}

func processFile(name, syntax string, e encoder.Encoder) error {
	src, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	return process(src, syntax, e)
}

func process(src []byte, syntax string, e encoder.Encoder) error {
	bs := parser.ParseBlocks(input.NewInput(src), syntax)
	if _, err := e.WriteBlocks(os.Stdout, &bs); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

// watchFile re-parses name whenever it changes. The parent directory is
// watched as well, since editors often replace the file on save.
func watchFile(log *logger.Logger, name, syntax string, e encoder.Encoder) error {
	absPath, err := filepath.Abs(name)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err = watcher.Add(filepath.Dir(absPath)); err != nil {
		return err
	}
	if err = watcher.Add(absPath); err != nil {
		log.Warn().Err(err).Str("file", absPath).Msg("Watch file")
	}
	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Name != absPath {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if interactive {
				fmt.Printf("--- %s\n", name)
			}
			if err = processFile(name, syntax, e); err != nil {
				log.Error().Err(err).Str("file", name).Msg("Process failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("Watcher")
		}
	}
}
