package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/baharkarakas/portfolio-api/internal/api/httpx"
)

const BackgroundImage = "aibg.jpg"

// StaticImage serves Dir/aibg.jpg. Any failure to open a regular file is
// reported as 404.
type StaticImage struct {
	Dir string
}

func (h StaticImage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f, err := os.Open(filepath.Join(h.Dir, BackgroundImage))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound, "Image not found", nil)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound, "Image not found", nil)
		return
	}
	w.Header().Set("Content-Type", "image/jpeg")
	http.ServeContent(w, r, BackgroundImage, info.ModTime(), f)
}
