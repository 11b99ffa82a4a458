// filepath: internal/web/web.go
// Package web serves the static portfolio site from the public directory.
package web

import (
	"bytes"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"portfolio/internal/logging"

	"github.com/gorilla/mux"
)

// siteHandler serves the static site from a filesystem, falling back to
// index.html for unknown paths so client-side routing keeps working.
type siteHandler struct {
	contentFS fs.FS
	indexPath string
}

func (h siteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqPath := r.URL.Path
	if strings.HasPrefix(reqPath, "/") {
		reqPath = reqPath[1:]
	}

	// 'path.Clean' for FS paths, not 'filepath.Clean'
	filePath := path.Clean(reqPath)
	if filePath == "" || filePath == "." {
		filePath = h.indexPath
	}

	file, err := h.contentFS.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			indexBytes, err := fs.ReadFile(h.contentFS, h.indexPath)
			if err != nil {
				http.NotFound(w, r)
				return
			}
			http.ServeContent(w, r, h.indexPath, time.Time{}, bytes.NewReader(indexBytes))
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		logging.Log.Errorf("web: error opening file %s: %v", filePath, err)
		return
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		logging.Log.Errorf("web: error stating file %s: %v", filePath, err)
		return
	}
	if fileInfo.IsDir() {
		http.NotFound(w, r)
		return
	}

	// http.ServeContent needs an io.ReadSeeker; fs.File does not
	// guarantee one, so fall back to a memory buffer when missing.
	seeker, ok := file.(io.ReadSeeker)
	if !ok {
		fileBytes, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			logging.Log.Errorf("web: error reading file %s: %v", filePath, err)
			return
		}
		http.ServeContent(w, r, filePath, fileInfo.ModTime(), bytes.NewReader(fileBytes))
		return
	}

	http.ServeContent(w, r, filePath, fileInfo.ModTime(), seeker)
}

// AddRoutes mounts the static site handler at the router root.
func AddRoutes(router *mux.Router, publicDir string) {
	site := siteHandler{
		contentFS: os.DirFS(publicDir),
		indexPath: "index.html",
	}
	router.PathPrefix("/").Handler(site)
}
