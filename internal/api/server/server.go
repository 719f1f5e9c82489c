package server

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
)

// Header and idle timeouts for the notification API. Handler latency
// itself is bounded by the retry budget on the mail transport.
const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = time.Minute
)

// New builds the HTTP server serving the notification API.
func New(addr string, router *ginext.Engine) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
}
