package gateway

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"customer_portal/pkg/logger"
)

// ProxyPath is the catch-all route parameter carrying the remainder of the
// customer-scoped path.
const ProxyPath = "path"

const upstreamPrefix = "/api"

// Proxy forwards every customer-scoped request to the upstream customer
// service: the customer prefix is replaced by the upstream API prefix, the
// rest of the path and the query string pass through unchanged, and the
// upstream status and body are relayed verbatim. No retries, no caching, no
// body transformation.
type Proxy struct {
	target *url.URL
	log    logger.ILogger
}

func NewProxy(target string, log logger.ILogger) (*Proxy, error) {
	remote, err := url.Parse(target)
	if err != nil {
		return nil, err
	}
	return &Proxy{target: remote, log: log}, nil
}

// Handler proxies one request. The caller's Authorization header travels
// byte-for-byte when present; Content-Type defaults to JSON only when the
// caller sent none.
func (p *Proxy) Handler(c *gin.Context) {
	proxy := httputil.NewSingleHostReverseProxy(p.target)
	proxy.Director = func(req *http.Request) {
		req.Host = p.target.Host
		req.URL.Scheme = p.target.Scheme
		req.URL.Host = p.target.Host
		req.URL.Path = upstreamPrefix + ensureLeadingSlash(c.Param(ProxyPath))
		req.URL.RawQuery = c.Request.URL.RawQuery

		if req.Header.Get("Content-Type") == "" {
			req.Header.Set("Content-Type", "application/json")
		}
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		p.log.Error("upstream unreachable", logger.Error(err))
		w.WriteHeader(http.StatusBadGateway)
	}

	proxy.ServeHTTP(c.Writer, c.Request)
}

func ensureLeadingSlash(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
