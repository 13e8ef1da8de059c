package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pdv-reports-api/pkg/apiErrors"
)

// StaticPage serve <dir>/<page>.html. Se o cliente aceitar gzip e existir
// o arquivo .gz pré-comprimido, ele é servido no lugar.
func StaticPage(dir, page string) http.HandlerFunc {
	htmlPath := filepath.Join(dir, page+".html")
	gzPath := htmlPath + ".gz"

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")

		if acceptsGzip(r.Header.Values("Accept-Encoding")) && fileExists(gzPath) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("Content-Encoding", "gzip")
			http.ServeFile(w, r, gzPath)
			return
		}

		if !fileExists(htmlPath) {
			logrus.WithField("path", htmlPath).Warn("Página estática não encontrada")
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Página não encontrada", nil)
			return
		}

		http.ServeFile(w, r, htmlPath)
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// acceptsGzip interpreta Accept-Encoding com pesos. "gzip;q=0" recusa o gzip
// mesmo que "*" esteja presente.
func acceptsGzip(headers []string) bool {
	gzip, wildcard := -1.0, -1.0

	for _, header := range headers {
		for _, part := range strings.Split(header, ",") {
			coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
			weight := 1.0
			for _, param := range strings.Split(params, ";") {
				key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
				if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
					continue
				}
				q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
				if err != nil {
					q = 0
				}
				weight = q
			}

			switch strings.ToLower(strings.TrimSpace(coding)) {
			case "gzip", "x-gzip":
				gzip = weight
			case "*":
				wildcard = weight
			}
		}
	}

	if gzip >= 0 {
		return gzip > 0
	}
	return wildcard > 0
}
