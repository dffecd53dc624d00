package webserver

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed embedded
var embedded embed.FS

func mustSubFS(dir string) fs.FS {
	sub, err := fs.Sub(embedded, dir)
	if err != nil {
		log.Fatal(err)
	}
	return sub
}

// TranslationsFS exposes the embedded translation dictionaries so the
// application entry point can build the message printers from them.
func TranslationsFS() fs.FS {
	return mustSubFS("embedded/translations")
}
