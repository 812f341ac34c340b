package api

import (
	"github.com/matt-g-everett/lifecompass/config"
	"github.com/matt-g-everett/lifecompass/scene"
	"github.com/matt-g-everett/lifecompass/sequencer"
)

type pageData struct {
	Page            config.Page
	Snapshot        sequencer.Snapshot
	Scenes          []scene.Descriptor
	ProgressPercent float64
	ShowQR          bool
}

const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Page.Lang}}" dir="{{.Page.Dir}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="description" content="{{.Page.Description}}">
{{- if .Snapshot.Playing}}
<meta http-equiv="refresh" content="1">
{{- end}}
<title>{{.Page.Title}}</title>
<style>
body { margin: 0; min-height: 100vh; display: flex; flex-direction: column; align-items: center; justify-content: center; background: linear-gradient(#000, #111827, #000); color: #fff; font-family: sans-serif; }
h1 { font-size: 4rem; background: linear-gradient(to right, #fde68a, #fbbf24, #fde68a); -webkit-background-clip: text; color: transparent; margin-bottom: 1rem; }
.subtitle { font-size: 1.75rem; color: #d1d5db; }
.stage { position: relative; width: min(56rem, 95vw); aspect-ratio: 16 / 9; background: #000; border-radius: 1rem; overflow: hidden; }
.stage img { width: 100%; height: 100%; image-rendering: pixelated; }
.progress { position: absolute; top: 0; left: 0; right: 0; height: 4px; background: #1f2937; }
.progress div { height: 100%; background: #f59e0b; }
.caption { position: absolute; inset-inline: 0; bottom: 0; padding: 2rem; background: linear-gradient(to top, rgba(0,0,0,.9), rgba(0,0,0,.7), transparent); font-size: 2rem; font-weight: bold; text-align: center; }
button { border: 0; border-radius: 9999px; font-weight: bold; cursor: pointer; color: #fff; }
.start { padding: 1rem 3rem; font-size: 1.25rem; background: linear-gradient(to right, #f59e0b, #d97706); }
.reset { margin-top: 1rem; padding: .75rem 2rem; background: #1f2937; }
.timeline { margin-top: 3rem; color: #6b7280; text-align: center; }
.timeline span { display: inline-block; margin: .25rem; padding: .5rem .75rem; font-size: .75rem; background: rgba(31,41,55,.5); border-radius: .25rem; }
</style>
</head>
<body>
{{- if .Snapshot.Playing}}
<div class="stage">
  <img src="/frame.png" alt="">
  <div class="progress"><div style="width: {{printf "%.0f" .ProgressPercent}}%"></div></div>
  {{- with .Snapshot.Scene}}
  <p class="caption" data-scene="{{.ID}}">{{.Caption}}</p>
  {{- end}}
</div>
<form method="post" action="/reset"><button class="reset" type="submit">{{.Page.ResetLabel}}</button></form>
{{- else}}
<main class="hero">
  <h1>{{.Page.Heading}}</h1>
  <p class="subtitle">{{.Page.Subtitle}}</p>
  <form method="post" action="/start"><button class="start" type="submit">{{.Page.StartLabel}}</button></form>
</main>
<section class="timeline">
  <p>{{.Page.ScenesLabel}}</p>
  {{- range $i, $s := .Scenes}}
  <span>{{$s.ID}}. {{$s.Description}}</span>
  {{- end}}
</section>
{{- if .ShowQR}}
<img class="qr" src="/qr.png" alt="QR" width="128" height="128">
{{- end}}
{{- end}}
</body>
</html>
`
