package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/portals/content"
	"github.com/zucenko/portals/engine"
)

func TestCommandValidate(t *testing.T) {
	tests := []struct {
		cmd   Command
		valid bool
	}{
		{Command{Type: CommandTouch, Direction: "up"}, true},
		{Command{Type: CommandTouch}, true},
		{Command{Type: CommandTouch, Direction: "north"}, false},
		{Command{Type: CommandResume, Portal: "skills"}, true},
		{Command{Type: CommandResume}, true},
		{Command{Type: CommandResume, Portal: "blog"}, false},
		{Command{Type: CommandExit}, true},
		{Command{Type: CommandStart}, true},
		{Command{Type: "jump"}, false},
	}
	for _, tt := range tests {
		err := tt.cmd.Validate()
		if tt.valid {
			assert.NoError(t, err, "%+v", tt.cmd)
		} else {
			assert.Error(t, err, "%+v", tt.cmd)
		}
	}
}

func TestCommandDecode(t *testing.T) {
	var c Command
	require.NoError(t, json.Unmarshal([]byte(`{"type":"touch","direction":"left","Client":"x"}`), &c))
	assert.Equal(t, engine.DirLeft, c.TouchDirection())
	assert.Empty(t, c.Client)

	require.NoError(t, json.Unmarshal([]byte(`{"type":"resume","portal":"about"}`), &c))
	assert.Equal(t, content.About, c.ResumeKind())
}

func TestEventEncoding(t *testing.T) {
	b, err := json.Marshal(Event{Type: EventPortalEnter, Portal: "projects"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"portal_enter","portal":"projects"}`, string(b))
}

func TestNewSnapshot(t *testing.T) {
	s := NewSnapshot("game", engine.Status{
		State:    engine.Paused,
		X:        10,
		Y:        20,
		Facing:   engine.DirLeft,
		Nearby:   content.Skills,
		Cooldown: content.KindNone,
	}, content.Skills)
	assert.Equal(t, Snapshot{
		Mode:    "game",
		State:   "PAUSED",
		X:       10,
		Y:       20,
		Facing:  "left",
		Nearby:  "skills",
		Overlay: "skills",
	}, s)
}

func TestNewPortalInfos(t *testing.T) {
	infos := NewPortalInfos(content.DefaultPortals())
	require.Len(t, infos, 4)
	assert.Equal(t, PortalInfo{ID: "experience", Label: infos[0].Label, Col: 10, Row: 2, Color: "#ff6b6b"}, infos[0])
}

func TestNewPage(t *testing.T) {
	lib := content.Default()
	p := NewPage(content.Projects, lib.Page(content.Projects))
	assert.Equal(t, "projects", p.Portal)
	assert.NotEmpty(t, p.Title)
	assert.NotEmpty(t, p.Paragraphs)
}
