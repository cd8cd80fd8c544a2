package model

import (
	"fmt"

	"github.com/zucenko/portals/content"
	"github.com/zucenko/portals/engine"
)

// NewSnapshot converts an engine status. overlay is the kind whose page is
// open, KindNone when none is.
func NewSnapshot(mode string, st engine.Status, overlay content.Kind) Snapshot {
	return Snapshot{
		Mode:     mode,
		State:    st.State.Name(),
		X:        st.X,
		Y:        st.Y,
		Facing:   st.Facing.String(),
		Moving:   st.Moving,
		Nearby:   st.Nearby.ID(),
		Cooldown: st.Cooldown.ID(),
		Overlay:  overlay.ID(),
	}
}

func NewPortalInfos(defs []content.PortalDef) []PortalInfo {
	infos := make([]PortalInfo, 0, len(defs))
	for _, d := range defs {
		infos = append(infos, PortalInfo{
			ID:    d.Kind.ID(),
			Label: d.Label,
			Col:   d.Col,
			Row:   d.Row,
			Color: fmt.Sprintf("#%02x%02x%02x", d.Color.R, d.Color.G, d.Color.B),
		})
	}
	return infos
}

func NewPage(kind content.Kind, p content.Page) Page {
	return Page{
		Portal:     kind.ID(),
		Title:      p.Heading(),
		Paragraphs: content.Paragraphs(p),
	}
}
