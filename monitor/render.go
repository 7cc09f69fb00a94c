package monitor

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

const (
	// DisplayWidth is the width every dashboard line is padded to, so a
	// shorter line fully overwrites a longer one drawn before it.
	DisplayWidth = 55

	// StaleBlockAge is how old the last block may be before the node is reported as stalled
	StaleBlockAge = 1800 * time.Second
)

const (
	statusActive     = "active"
	statusConnecting = "connecting"
	statusStale      = "No block received for over 30 minutes"
	statusUnknown    = "unavailable"

	separator = "──────────────────────────────────────────────────────"
	helpLine  = " Press V to toggle stats. Esc key to exit."
)

var logo = []string{
	"           ██╗██╗  ██╗██╗ █████╗ ███╗   ██╗           ",
	"           ██║╚██╗██╔╝██║██╔══██╗████╗  ██║           ",
	"           ██║ ╚███╔╝ ██║███████║██╔██╗ ██║           ",
	"           ██║ ██╔██╗ ██║██╔══██║██║╚██╗██║           ",
	"           ██║██╔╝ ██╗██║██║  ██║██║ ╚████║           ",
	"           ╚═╝╚═╝  ╚═╝╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝           ",
}

type styles struct {
	warning lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		warning: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

type line struct {
	text string
	warn bool
}

// statusText returns the node status and whether it is a warning.
// A stale last block takes precedence over a missing connection.
func statusText(s Snapshot, now time.Time) (string, bool) {
	if now.Unix()-s.LastBlockTime > int64(StaleBlockAge/time.Second) {
		return statusStale, true
	}
	if s.IncomingConnections+s.OutgoingConnections < 1 {
		return statusConnecting, false
	}
	return statusActive, false
}

func elapsed(d time.Duration) string {
	secs := int64(d / time.Second)
	return fmt.Sprintf(" Running for %d days %dh %dm %ds", secs/86400, secs/3600%24, secs/60%60, secs%60)
}

// banner is always three lines so the rest of the layout never moves
func (m *Monitor) banner(snap Snapshot, ok bool, newVersion string) []line {
	switch {
	case newVersion != "":
		return []line{
			{" An update (" + newVersion + ") of Ixian Seeder is available", true},
			{" Please visit https://www.ixian.io", true},
			{},
		}
	case ok && !snap.Connectable && snap.OutgoingConnections == 0:
		lines := []line{
			{" Your node isn't connectable from the internet.", true},
			{" Please set-up port forwarding for port " + strconv.Itoa(snap.PublicPort) + ".", true},
			{},
		}
		if snap.PublicAddress != "" {
			lines[2] = line{" Make sure you can connect to: " + snap.PublicAddress, true}
		}
		return lines
	}
	return []line{
		{text: " Thank you for running an Ixian Seeder node."},
		{text: " For help please visit https://www.ixian.io"},
		{},
	}
}

func (m *Monitor) frame(snap Snapshot, ok bool, newVersion string, now time.Time) []line {
	lines := make([]line, 0, 24)
	for _, l := range logo {
		lines = append(lines, line{text: l})
	}
	lines = append(lines,
		line{text: fmt.Sprintf(" %53s", m.opts.Version+" BETA ")},
		line{text: fmt.Sprintf(" http://localhost:%d/", m.opts.APIPort)},
		line{text: separator},
	)
	lines = append(lines, m.banner(snap, ok, newVersion)...)
	lines = append(lines, line{text: separator})

	status, warn := statusUnknown, false
	connections, presences := "-/-", "-"
	if ok {
		status, warn = statusText(snap, now)
		in := "-"
		if snap.ServerRunning {
			in = strconv.Itoa(snap.IncomingConnections)
		}
		connections = in + "/" + strconv.Itoa(snap.OutgoingConnections)
		presences = strconv.Itoa(snap.Presences)
	}

	lines = append(lines,
		line{text: " Status:               " + status, warn: warn},
		line{},
		line{text: " Connections (I/O):    " + connections},
		line{text: " Presences:            " + presences},
		line{},
		line{text: separator},
		line{text: elapsed(now.Sub(m.startTime))},
		line{},
		line{text: helpLine},
	)
	return lines
}

// render writes frame in a single write. A full frame clears the screen
// first, other frames draw over the previous one from the top left corner.
func (m *Monitor) render(frame []line, full bool) error {
	var buf bytes.Buffer
	screen := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	if full {
		screen.ClearScreen()
	} else {
		screen.MoveCursor(1, 1)
	}

	for _, l := range frame {
		text := runewidth.FillRight(l.text, DisplayWidth)
		if l.warn {
			text = m.styles.warning.Render(text)
		}
		buf.WriteString(text)
		buf.WriteByte('\n')
	}

	_, err := m.opts.Out.Write(buf.Bytes())
	return err
}
