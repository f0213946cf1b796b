// Package main seeds the tag vocabulary into the Brain database.
//
// Tags have no HTTP creation path: the vocabulary is fixed and loaded here,
// either from the built-in defaults or from a file with one title per line.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/secondbrain-app/brain-server/internal/config"
	"github.com/secondbrain-app/brain-server/internal/logger"
	"github.com/secondbrain-app/brain-server/internal/service"
	"github.com/secondbrain-app/brain-server/internal/store"
)

// defaultTags is the built-in vocabulary used when no file is given.
var defaultTags = []string{
	"productivity",
	"ideas",
	"learning",
	"reading-list",
	"reference",
	"inspiration",
	"work",
	"personal",
}

func main() {
	tagsFile := flag.String("tags-file", "", "File with one tag title per line (optional)")

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	titles := defaultTags
	if *tagsFile != "" {
		titles, err = readTagsFile(*tagsFile)
		if err != nil {
			log.Fatalf("Failed to read tags file: %v", err)
		}
	}

	db, err := store.New(filepath.Join(cfg.Data.BasePath, "db"), log.Logger)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	tagService := service.NewTagService(db, log.Logger)

	ctx := context.Background()
	inserted := 0
	for _, title := range titles {
		created, err := tagService.Seed(ctx, title)
		if err != nil {
			log.Fatalf("Failed to seed tag %q: %v", title, err)
		}
		if created {
			inserted++
		}
	}

	log.Info("Tag seeding complete",
		"requested", len(titles),
		"inserted", inserted,
		"skipped", len(titles)-inserted,
	)
}

// readTagsFile reads one tag title per line, skipping blanks and # comments.
func readTagsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var titles []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		titles = append(titles, line)
	}
	return titles, scanner.Err()
}
