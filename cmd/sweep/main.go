// Command sweep empties the media folders in the storage backend. Besides
// full resets it is the reclamation path for orphaned variants: a partially
// failed multi-variant upload leaves unreferenced objects behind, and this
// sweep removes them in bulk.
//
// Usage:
//
//	sweep                  # list what would be deleted
//	sweep -delete          # actually delete
//	sweep -folders hero    # restrict to specific folders (comma-separated)
package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/goldenpaws/service/internal/config"
	"github.com/goldenpaws/service/internal/storage"
)

// defaultFolders is the fixed set of namespaces the site uploads into.
var defaultFolders = []string{
	"hero",
	"about",
	"gallery",
	"parents",
	"parents_alternates",
	"puppies",
}

func main() {
	doDelete := flag.Bool("delete", false, "delete the listed objects (dry run without it)")
	folderList := flag.String("folders", "", "comma-separated folders to sweep (default: all)")
	flag.Parse()

	cfg := config.Load()

	store, err := storage.NewMinioStorage(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StorageRegion,
		cfg.StorageUseSSL,
	)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	folders := defaultFolders
	if *folderList != "" {
		folders = strings.Split(*folderList, ",")
	}

	ctx := context.Background()
	total := 0
	for _, folder := range folders {
		folder = strings.TrimSpace(folder)
		if folder == "" {
			continue
		}

		keys, err := store.List(ctx, folder+"/")
		if err != nil {
			log.Fatalf("list %q: %v", folder, err)
		}
		if len(keys) == 0 {
			log.Printf("%s: empty", folder)
			continue
		}

		log.Printf("%s: %d object(s)", folder, len(keys))
		for _, key := range keys {
			if !*doDelete {
				log.Printf("  would delete %s", key)
				continue
			}
			if err := store.Delete(ctx, key); err != nil {
				log.Fatalf("delete %q: %v", key, err)
			}
			total++
		}
	}

	if *doDelete {
		log.Printf("deleted %d object(s)", total)
	} else {
		log.Println("dry run; re-run with -delete to remove the listed objects")
	}
}
