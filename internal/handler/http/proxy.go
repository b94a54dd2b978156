package http

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"

	"github.com/MKhiriev/rjs-config-gen/internal/logger"
)

// loaderTag is injected into every HTML page served through the proxy.
var loaderTag = []byte(`<script src="` + reservedPrefix + `/loaders.js"></script>`)

// newProxy returns a reverse proxy to target. HTML responses are rewritten
// to load the loader shim; everything else is streamed unchanged.
func newProxy(target *url.URL) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			// bodies must arrive uncompressed for the injection to work
			pr.Out.Header.Set("Accept-Encoding", "identity")
		},
		ModifyResponse: injectLoader,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.FromRequest(r).Err(err).Str("path", r.URL.Path).Msg("error proxying request to origin")
			w.WriteHeader(http.StatusBadGateway)
		},
	}
}

// injectLoader adds loaderTag to HTML responses before </head>, before
// </body> when there is no head, or at the very end otherwise.
func injectLoader(resp *http.Response) error {
	if !isHTML(resp) {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return err
	}

	body = injectTag(body, loaderTag)

	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))
	resp.Header.Set("Content-Length", strconv.Itoa(len(body)))
	// the page changed, validators from the origin no longer hold
	resp.Header.Del("ETag")
	resp.Header.Del("Last-Modified")
	return nil
}

func isHTML(resp *http.Response) bool {
	if resp.Request != nil && resp.Request.Method == http.MethodHead {
		return false
	}
	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusNotModified:
		return false
	}
	if enc := resp.Header.Get("Content-Encoding"); enc != "" && enc != "identity" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "text/html"
}

func injectTag(body, tag []byte) []byte {
	lower := bytes.ToLower(body)

	i := bytes.Index(lower, []byte("</head>"))
	if i < 0 {
		i = bytes.LastIndex(lower, []byte("</body>"))
	}
	if i < 0 {
		return append(body, tag...)
	}

	out := make([]byte, 0, len(body)+len(tag))
	out = append(out, body[:i]...)
	out = append(out, tag...)
	return append(out, body[i:]...)
}
