package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
)

const assetCacheControl = "public, max-age=604800, stale-while-revalidate=86400"

// AssetsWithCache serves the site stylesheet, navigate script, favicon and
// trust-strip logos from dir. Every file gets a week of browser caching and
// an ETag derived from its contents at startup, so a redeploy with changed
// assets invalidates them. Mount it behind http.StripPrefix("/assets", ...).
func AssetsWithCache(dir string) http.Handler {
	files := os.DirFS(dir)
	etags := assetETags(files)
	server := http.FileServer(http.FS(files))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		h := w.Header()
		h.Set("Vary", "Accept-Encoding")
		h.Set("Cache-Control", assetCacheControl)
		if et, ok := etags[strings.TrimPrefix(r.URL.Path, "/")]; ok {
			h.Set("ETag", et)
			if r.Header.Get("If-None-Match") == et {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		server.ServeHTTP(w, r)
	})
}

// assetETags hashes every regular file under files, keyed by slash path.
// Unreadable files are served without an ETag.
func assetETags(files fs.FS) map[string]string {
	etags := make(map[string]string)
	_ = fs.WalkDir(files, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if et, err := contentETag(files, name); err == nil {
			etags[name] = et
		}
		return nil
	})
	return etags
}

func contentETag(files fs.FS, name string) (string, error) {
	f, err := files.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return `"` + hex.EncodeToString(h.Sum(nil)[:8]) + `"`, nil
}
