package http

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
)

const indexFile = "index.html"

// serveStatic serves files of the public directory. Paths that do not name a
// file fall back to index.html so that client-side routes resolve.
func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request) {
	if h.app.PublicDir == "" {
		apiNotFound(w, r)
		return
	}

	root := os.DirFS(h.app.PublicDir)
	name := path.Clean("/" + r.URL.Path)[1:]
	if name == "" {
		name = indexFile
	}

	info, err := fs.Stat(root, name)
	if err == nil && info.IsDir() {
		name = path.Join(name, indexFile)
		info, err = fs.Stat(root, name)
	}
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrInvalid) {
			h.logger.Err(err).Str("func", "*Handler.serveStatic").Str("path", name).Msg("error reading static file")
		}
		name = indexFile
	}

	f, err := root.Open(name)
	if err != nil {
		apiNotFound(w, r)
		return
	}
	defer f.Close()

	info, err = f.Stat()
	if err != nil || info.IsDir() {
		apiNotFound(w, r)
		return
	}

	content, ok := f.(io.ReadSeeker)
	if !ok {
		apiNotFound(w, r)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), content)
}
