package main

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/rjeczalik/notify"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/index"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

func fileWatcher(idx *index.BleveIndexer, libPath string, favoritesRepo *model.FavoriteRepository, shareLinksRepo *model.ShareLinkRepository, summariesRepo *model.SummaryRepository) {
	log.Printf("Starting file watcher on %s\n", libPath)
	c := make(chan notify.EventInfo, 1)
	if err := notify.Watch(libPath, c, notify.InCloseWrite, notify.InMovedTo, notify.InMovedFrom, notify.InDelete); err != nil {
		log.Fatal(err)
	}

	defer notify.Stop(c)

	for ei := range c {
		if ei.Event() == notify.InCloseWrite || ei.Event() == notify.InMovedTo {
			if err := idx.AddFile(ei.Path()); err != nil {
				log.Printf("Error indexing new file: %s\n", ei.Path())
			}
		}
		if ei.Event() == notify.InDelete || ei.Event() == notify.InMovedFrom {
			if err := idx.RemoveFile(ei.Path()); err != nil {
				log.Printf("Error removing file from index: %s\n", ei.Path())
			}
			// Normalize path: remove library path prefix, same as RemoveFile does
			documentPath := strings.Replace(ei.Path(), libPath, "", 1)
			documentPath = strings.TrimPrefix(documentPath, string(filepath.Separator))
			if err := favoritesRepo.RemoveDocument(documentPath); err != nil {
				log.Printf("Error removing file %s from favorites table: %s\n", documentPath, err)
			}
			if err := shareLinksRepo.RemoveDocument(documentPath); err != nil {
				log.Printf("Error removing file %s from share links table: %s\n", documentPath, err)
			}
			if err := summariesRepo.RemoveDocument(documentPath); err != nil {
				log.Printf("Error removing file %s from summaries table: %s\n", documentPath, err)
			}
		}
	}
}
