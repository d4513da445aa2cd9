package web

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/sweeney/traffic-light/internal/gpio"
	"github.com/sweeney/traffic-light/internal/lamps"
	"github.com/sweeney/traffic-light/internal/signal"
	"github.com/sweeney/traffic-light/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta http-equiv="refresh" content="1">
<title>Traffic Light</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.lamp { display: inline-block; width: 18px; height: 18px; border-radius: 50%; margin-right: 8px; vertical-align: middle; background: #ddd; }
.lamp.red-on { background: #d22; }
.lamp.yellow-on { background: #dc2; }
.lamp.green-on { background: #2a2; }
.connected { color: green; }
.disconnected { color: red; }
</style>
</head>
<body>
<h1>Traffic Light</h1>

<h2>Signal</h2>
<table>
<tr><th>Red</th><td><span class="lamp{{if .RedOn}} red-on{{end}}"></span>{{if .RedOn}}ON{{else}}OFF{{end}}</td></tr>
<tr><th>Yellow</th><td><span class="lamp{{if .YellowOn}} yellow-on{{end}}"></span>{{if .YellowOn}}ON{{else}}OFF{{end}}</td></tr>
<tr><th>Green</th><td><span class="lamp{{if .GreenOn}} green-on{{end}}"></span>{{if .GreenOn}}ON{{else}}OFF{{end}}</td></tr>
<tr><th>Phase</th><td>{{.Phase}}</td></tr>
<tr><th>Hold</th><td>{{.HoldMS}}ms (in phase {{uptime .InPhase}})</td></tr>
</table>

<h2>Connectivity</h2>
<table>
<tr><th>MQTT</th><td class="{{if .MQTTConnected}}connected{{else}}disconnected{{end}}">{{if .MQTTConnected}}connected{{else}}disconnected{{end}}</td></tr>
<tr><th>Broker</th><td>{{.Config.Broker}}</td></tr>
</table>

<h2>Transition Counts</h2>
<table>
<tr><th>Red entered</th><td>{{.Counts.Red}}</td></tr>
<tr><th>Yellow entered</th><td>{{.Counts.Yellow}}</td></tr>
<tr><th>Green entered</th><td>{{.Counts.Green}}</td></tr>
</table>

<h2>System</h2>
<table>
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
<tr><th>Started</th><td>{{.StartTime.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>
<tr><th>Red hold</th><td>{{.Config.RedMS}}ms</td></tr>
<tr><th>Yellow hold</th><td>{{.Config.YellowMS}}ms</td></tr>
<tr><th>Green hold</th><td>{{.Config.GreenMS}}ms</td></tr>
<tr><th>Heartbeat</th><td>{{if eq .Config.HeartbeatMs 0}}disabled{{else}}{{.Config.HeartbeatMs}}ms{{end}}</td></tr>
<tr><th>Pins (R/Y/G)</th><td>{{.Config.PinRed}}/{{.Config.PinYellow}}/{{.Config.PinGreen}}</td></tr>
<tr><th>HTTP</th><td>{{.Config.HTTPAddr}}</td></tr>
</table>

<p><a href="/index.json">JSON</a></p>
</body>
</html>
`

func renderHTML(w io.Writer, snap status.Snapshot) {
	states := lamps.States(snap.Phase)
	data := struct {
		status.Snapshot
		Uptime   time.Duration
		InPhase  time.Duration
		RedOn    bool
		YellowOn bool
		GreenOn  bool
	}{
		Snapshot: snap,
		Uptime:   snap.Uptime(),
		InPhase:  snap.InPhase(),
		RedOn:    signal.ToBool(states[gpio.LampRed]),
		YellowOn: signal.ToBool(states[gpio.LampYellow]),
		GreenOn:  signal.ToBool(states[gpio.LampGreen]),
	}
	indexTmpl.Execute(w, data)
}
