package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
)

// StateInspector shows every field of the current snapshot, read-only.
type StateInspector struct {
	cache *ReflectionCache
}

func NewStateInspector() *StateInspector {
	return &StateInspector{cache: globalReflectionCache}
}

func (si *StateInspector) Render(snap game.Snapshot) {
	if !imgui.BeginV("State Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Status: %s", snap.Status))
	if snap.HasActive {
		imgui.Text(fmt.Sprintf("Active: %s", snap.ActiveKind))
	} else {
		imgui.Text("Active: none")
	}
	imgui.Separator()

	for _, field := range si.cache.Describe(snap) {
		si.renderField(field)
	}

	imgui.End()
}

func (si *StateInspector) renderField(field FieldValue) {
	if len(field.Children) == 0 {
		imgui.Text(fmt.Sprintf("%s: %s", field.Name, field.Text))
		return
	}

	if isFlat(field) {
		imgui.Text(fmt.Sprintf("%s: %s", field.Name, Summary(field)))
		return
	}

	if imgui.TreeNodeStr(fmt.Sprintf("%s %s", field.Name, field.Text)) {
		for _, child := range field.Children {
			si.renderField(child)
		}
		imgui.TreePop()
	}
}

// isFlat reports whether every child of field is a leaf.
func isFlat(field FieldValue) bool {
	for _, child := range field.Children {
		if len(child.Children) > 0 {
			return false
		}
	}
	return true
}

// Summary renders a field and its leaf children on one line, for example
// "{X: 4, Y: 1}" for a struct or "[0 0 2 2]" for a list.
func Summary(field FieldValue) string {
	if len(field.Children) == 0 {
		return field.Text
	}

	parts := make([]string, len(field.Children))
	for i, child := range field.Children {
		parts[i] = Summary(child)
	}

	if strings.HasPrefix(field.Text, "[") {
		return "[" + strings.Join(parts, " ") + "]"
	}
	for i, child := range field.Children {
		parts[i] = child.Name + ": " + parts[i]
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
