package models

// RequestRecord is one HTTP exchange observed while the proxy served pages.
// Records are immutable once appended to the ledger. New fields must be
// optional so that older seed files stay loadable.
type RequestRecord struct {
	// Seq is the ledger-assigned arrival counter. It is monotonic and
	// never derived from wall-clock time.
	Seq uint64 `json:"seq"`

	// Method is the HTTP method of the observed request.
	Method string `json:"method"`

	// Path is the request path, without the query string.
	Path string `json:"path"`

	// Query is the raw query string, if any.
	Query string `json:"query,omitempty"`

	// Referrer is the Referer header of the request. For script requests
	// it identifies the page that triggered the load.
	Referrer string `json:"referrer,omitempty"`

	// ContentType is the request Content-Type header, if any.
	ContentType string `json:"content_type,omitempty"`

	// UserAgent is the User-Agent header of the request.
	UserAgent string `json:"user_agent,omitempty"`
}

// SeedData is the externally visible shape of the request ledger. It is
// both the format of seed files and the body of the seed endpoint.
type SeedData struct {
	// ReqLog holds the records in arrival order.
	ReqLog []RequestRecord `json:"req_log"`
}
