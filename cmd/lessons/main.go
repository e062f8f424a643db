// Package main starts the hypermedia lessons HTTP service.
//
// This process serves every lesson module under one address so browser
// tests hit a single origin with a shared reset hook.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	lessonscmd "github.com/hypermedia-lab/lessons/internal/cmd/lessons"
)

func main() {
	cfg, err := lessonscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[LESSONS] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := lessonscmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
