package widget

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/gallery/api"
)

type StatusType string

const (
	StatusInfo    StatusType = "accent"
	StatusSuccess StatusType = "success"
	StatusWarning StatusType = "warning"
	StatusError   StatusType = "error"
	StatusUnknown StatusType = "unknown"
)

var statusTypes = []StatusType{StatusInfo, StatusSuccess, StatusWarning, StatusError, StatusUnknown}

type Status struct {
	Condition string
	Reason    string
	Type      StatusType
}

func NewStatus(cond string, reason string, typ StatusType) *Status {
	return &Status{Condition: cond, Reason: reason, Type: typ}
}

// LevelStatus maps the severity of a log line to a badge.
func LevelStatus(level api.LogLevel) *Status {
	switch level {
	case api.LevelInfo:
		return &Status{Condition: "INFO", Type: StatusInfo}
	case api.LevelWarning:
		return &Status{Condition: "WARN", Type: StatusWarning}
	case api.LevelError:
		return &Status{Condition: "ERROR", Type: StatusError, Reason: "Failed operation"}
	case api.LevelDebug:
		return &Status{Condition: "DEBUG", Type: StatusUnknown}
	}
	return &Status{Type: StatusUnknown}
}

func (status *Status) Label() *gtk.Label {
	label := gtk.NewLabel("")
	label.SetHAlign(gtk.AlignStart)
	label.SetVAlign(gtk.AlignStart)
	label.AddCSSClass("status-badge")
	status.Apply(label)
	return label
}

// Apply restyles a badge made by Label. Panels are recycled, so stale classes are removed.
func (status *Status) Apply(label *gtk.Label) {
	for _, typ := range statusTypes {
		label.RemoveCSSClass(string(typ))
	}
	label.SetText(status.Condition)
	label.SetTooltipText(status.Reason)
	if status.Type != StatusUnknown {
		label.AddCSSClass(string(status.Type))
	}
}
