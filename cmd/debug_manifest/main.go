package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path"
	"strings"

	"basemedia/core/baseset"
	"basemedia/core/config"
	"basemedia/core/media"
	"basemedia/core/storage"
	"basemedia/feature/basesets"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Reads one manifest from the configured media source and prints how each
// declared file checks out.
func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: debug_manifest <manifest path relative to the media root>")
	}
	rel := os.Args[1]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	var kind baseset.Kind
	found := false
	for _, k := range basesets.Kinds() {
		if strings.EqualFold(path.Ext(rel), k.Extension) {
			kind, found = k, true
		}
	}
	if !found {
		log.Fatalf("%s has no base set extension", rel)
	}

	logg, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}

	var src basesets.Source
	if cfg.Media.Source == media.SourceStorage {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			log.Fatal(err)
		}
		src = basesets.NewBucketSource(client, cfg.Storage.Bucket, cfg.Media.Prefix, logg)
	} else {
		src, err = basesets.NewDiskSource(afero.NewOsFs(), cfg.Media.Root, cfg.Media.DigestCacheSize, logg)
		if err != nil {
			log.Fatal(err)
		}
	}

	reg := baseset.NewRegistry(baseset.Options{
		Kind:     kind,
		Loader:   src.Loader(),
		Checker:  src.Checker(),
		Logger:   logg,
		Language: cfg.Media.Language,
	})

	fmt.Printf("=== %s manifest %s (%s) ===\n", kind.Name, rel, src.Name())
	outcome, err := reg.Add(context.Background(), src.Path(rel), src.BasePathLen())
	if err != nil {
		log.Fatalf("%s: %v", outcome, err)
	}

	set := reg.Accepted()[0]
	fmt.Printf("Name: %s (%s) version %d, fallback %v\n", set.Name, set.ShortName, set.Version, set.Fallback)
	fmt.Printf("Files: %d found, %d valid of %d\n", set.FoundFiles, set.ValidFiles, set.NumFiles())
	fmt.Printf("Folded MD5: %s\n", set.Digest())

	files := make([]map[string]string, 0, len(set.Files))
	for _, f := range set.Files {
		fmt.Printf("  %-10s %-10s %s\n", f.Slot, f.Status, f.Path)
		files = append(files, map[string]string{
			"slot":   f.Slot,
			"path":   f.Path,
			"status": f.Status.String(),
			"md5":    f.Digest.String(),
		})
	}

	data, _ := json.MarshalIndent(files, "", "  ")
	if err := os.WriteFile("debug_manifest.json", data, 0644); err != nil {
		log.Fatal(err)
	}
	fmt.Println("\nDebug complete. Check debug_manifest.json for details.")
}
