package server

import (
	"html/template"
	"net/http"
)

var adminTmpl = template.Must(template.New("admin").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>api routes</title>
<style>
body { font-family: monospace; margin: 2rem; }
table { border-collapse: collapse; }
td, th { border: 1px solid #999; padding: 4px 10px; text-align: left; }
th { background: #eee; }
code { white-space: pre; }
</style>
</head>
<body>
<h1>Routes on {{.Addr}}</h1>
<table>
<tr><th>Method</th><th>Pattern</th><th>Summary</th><th>Example body</th></tr>
{{range .Routes}}<tr>
<td>{{.Method}}</td>
<td>{{.Pattern}}</td>
<td>{{.Summary}}</td>
<td>{{if .ExampleBody}}<code>{{.ExampleBody}}</code>{{end}}</td>
</tr>
{{end}}</table>
</body>
</html>
`))

type adminPageData struct {
	Addr   string
	Routes []RouteDoc
}

func RegisterAdminUI(mux *http.ServeMux, rr *RouteRegistry, addr string) {
	// JSON list (handy for tooling)
	mux.HandleFunc("GET /_/admin/routes.json", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rr.List())
	})

	// HTML
	mux.HandleFunc("GET /_/admin", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		data := adminPageData{
			Addr:   addr,
			Routes: rr.List(),
		}

		if err := adminTmpl.Execute(w, data); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
	})
}
