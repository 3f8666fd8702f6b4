package cli

import (
	"text/template"

	"github.com/iudanet/learnsync/internal/models"
)

const timeLayout = "2006-01-02 15:04:05"

// statusView данные команды status
type statusView struct {
	User           *models.User
	SessionExpires string
	LastSync       string
	Pending        int
	Online         bool
	ServerSession  bool
}

var statusTemplate = template.Must(template.New("status").Parse(`=== Status ===

{{- if .User }}
User:            {{ .User.FullName }} <{{ .User.Email }}>
Role:            {{ .User.Role }}
Account sync:    {{ .User.SyncStatus }}
{{- if .SessionExpires }}
Session expires: {{ .SessionExpires }}
Server session:  {{ if .ServerSession }}active{{ else }}offline{{ end }}
{{- end }}
{{- else }}
Not logged in
{{- end }}
Network:         {{ if .Online }}online{{ else }}offline{{ end }}
Pending changes: {{ .Pending }}
Last sync:       {{ if .LastSync }}{{ .LastSync }}{{ else }}never{{ end }}
`))

var profileTemplate = template.Must(template.New("profile").Parse(`
=== Profile ===

Name:     {{ .FullName }}
Email:    {{ .Email }}
Role:     {{ .Role }}
{{- if .Phone }}
Phone:    {{ .Phone }}
{{- end }}
{{- if .Location }}
Location: {{ .Location }}
{{- end }}
{{- if .Bio }}
Bio:      {{ .Bio }}
{{- end }}
Sync:     {{ .SyncStatus }}
`))

var usersTemplate = template.Must(template.New("users").Parse(`=== Users on this device ===
{{ range . }}
[{{ .ID }}] {{ .Email }}
  Name:   {{ .FullName }}
  Role:   {{ .Role }}
  Sync:   {{ .SyncStatus }}{{ if .ServerID }} ({{ .ServerID }}){{ end }}
  Active: {{ .IsActive }}
{{- end }}
`))

// courseView данные команды course
type courseView struct {
	ID       string
	Title    string
	CachedAt string
	Modules  []moduleView
}

type moduleView struct {
	ID    string
	Title string
	Items []itemView
}

type itemView struct {
	ID    string
	Title string
}

var courseTemplate = template.Must(template.New("course").Parse(`
=== {{ if .Title }}{{ .Title }}{{ else }}{{ .ID }}{{ end }} ===

ID:     {{ .ID }}
Cached: {{ .CachedAt }}
{{ range .Modules }}
Module {{ .ID }}{{ if .Title }}: {{ .Title }}{{ end }}
{{- range .Items }}
  {{ .ID }}{{ if .Title }}  {{ .Title }}{{ end }}
{{- end }}
{{- end }}
`))
