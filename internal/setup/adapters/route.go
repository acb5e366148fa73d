package adapters

import (
	"io"
	"net/http"

	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
)

// AdaptRoute bridges a presentation controller into a net/http handler.
func AdaptRoute(controller presentationProtocols.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request := presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		}

		response := controller.Handle(request)

		// Controllers answer JSON unless they say otherwise (the XLSX
		// export sets its own Content-Type).
		w.Header().Set("Content-Type", "application/json")
		for key, values := range response.Headers {
			for _, value := range values {
				w.Header().Set(key, value)
			}
		}

		w.WriteHeader(response.StatusCode)
		if response.Body != nil {
			defer response.Body.Close()
			io.Copy(w, response.Body)
		}
	}
}
