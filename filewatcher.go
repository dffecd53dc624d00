//go:build !linux

package main

import (
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/index"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

func fileWatcher(idx *index.BleveIndexer, libPath string, favoritesRepo *model.FavoriteRepository, shareLinksRepo *model.ShareLinkRepository, summariesRepo *model.SummaryRepository) {
}
