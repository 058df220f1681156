// Package http is the transport layer under httpkit: the chi router seam,
// JSON envelope writers, binding adapters, the server and the profiler mount
package http

import (
	"encoding/json"
	stdhttp "net/http"

	pnet "gadash/internal/platform/net"
)

// Envelope is the body every endpoint answers with
type Envelope = pnet.Envelope

// JSON writes v with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondOK writes a success envelope around data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	status, env := pnet.OK(data, pnet.RequestID(r.Context()))
	JSON(w, status, env)
}

// RespondError writes a failure envelope with the status mapped from err
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := pnet.Error(err, pnet.RequestID(r.Context()))
	JSON(w, status, env)
}

// Response is what a return style handler produces. A Body holding an error
// becomes a failure envelope; anything else is wrapped as data.
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK is a 200 around data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// NoContent is a bare 204
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error is a failure response; the status comes from the error code
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a return style handler to net/http
func Handle(h func(*stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).writeTo(w, r)
	}
}

func (resp Response) writeTo(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}
	switch resp.Status {
	case stdhttp.StatusNoContent:
		w.WriteHeader(stdhttp.StatusNoContent)
	case 0:
		RespondOK(w, r, resp.Body)
	default:
		_, env := pnet.OK(resp.Body, pnet.RequestID(r.Context()))
		JSON(w, resp.Status, env)
	}
}
