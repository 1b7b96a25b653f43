package render

import "github.com/javanhut/RavenGrid/menu"

func (r *Renderer) renderMenu(m *menu.Menu, width, height int, proj [16]float32) {
	panelWidth := min(max(float32(width)*0.5, 420), float32(width)-20)
	panelHeight := min(max(float32(height)*0.6, 320), float32(height)-20)
	if panelWidth <= 0 || panelHeight <= 0 {
		return
	}

	panelX := (float32(width) - panelWidth) / 2
	panelY := (float32(height) - panelHeight) / 2

	// Dim the sheet behind the panel
	r.drawRect(0, 0, float32(width), float32(height), [4]float32{0.0, 0.0, 0.0, 0.6}, proj)

	r.drawRect(panelX, panelY, panelWidth, panelHeight, r.theme.Header, proj)
	r.drawOutline(panelX, panelY, panelWidth, panelHeight, 2, r.theme.Cursor, proj)

	marginX := float32(20)
	contentX := panelX + marginX
	contentWidth := panelWidth - marginX*2

	lineHeight := r.cellHeight * 1.5
	headerY := panelY + 35
	separatorY := headerY + lineHeight*0.5

	footerHeight := float32(60)
	if m.InputMode() {
		footerHeight = lineHeight*3 + 40
	}
	if m.StatusMessage != "" {
		footerHeight += lineHeight
	}

	contentStartY := separatorY + lineHeight*0.8
	contentEndY := panelY + panelHeight - footerHeight
	visibleItems := max(1, int((contentEndY-contentStartY)/lineHeight))

	r.drawText(contentX, headerY, m.GetTitle(), r.theme.Cursor, proj)
	r.drawRect(contentX, separatorY, contentWidth, 1, r.theme.Foreground, proj)

	labelWidth := contentWidth - r.cellWidth*2 - 5
	row := 0
	for i, item := range m.Items {
		if i < m.ScrollOffset {
			continue
		}
		if row >= visibleItems {
			break
		}
		y := contentStartY + float32(row)*lineHeight
		row++

		// Empty items are separators
		if item.Label == "" {
			continue
		}

		label := r.fitText(item.Label, labelWidth)
		if i == m.SelectedIndex {
			r.drawRect(contentX, y-lineHeight+8, contentWidth, lineHeight, r.theme.Accent, proj)
			r.drawText(contentX+5, y, ">", r.theme.Cursor, proj)
			r.drawText(contentX+r.cellWidth*2+5, y, label, r.theme.Cursor, proj)
		} else {
			r.drawText(contentX+r.cellWidth*2+5, y, label, r.theme.Foreground, proj)
		}
	}

	footerTextY := panelY + panelHeight - 20
	footerSepY := footerTextY - lineHeight

	if m.InputMode() {
		inputAreaY := footerSepY - lineHeight*2
		r.drawText(contentX+5, inputAreaY, r.fitText(m.GetInputPrompt(), contentWidth), r.theme.Foreground, proj)

		inputBoxY := inputAreaY + lineHeight*0.3
		r.drawRect(contentX, inputBoxY, contentWidth, lineHeight, r.theme.Background, proj)
		r.drawText(contentX+8, inputBoxY+lineHeight*0.75, r.fitText(m.GetInputBuffer()+"_", contentWidth-16), r.theme.Cursor, proj)
	}

	if m.StatusMessage != "" {
		statusY := footerSepY - lineHeight*0.3
		if m.InputMode() {
			statusY = footerSepY - lineHeight*2.6
		}
		r.drawText(contentX, statusY, r.fitText(m.StatusMessage, contentWidth), r.theme.Cursor, proj)
	}

	r.drawRect(contentX, footerSepY, contentWidth, 1, r.theme.GridLine, proj)

	footerText := "Up/Down | Enter | Esc"
	if m.InputMode() {
		footerText = "Enter: confirm | Esc: cancel"
	}
	r.drawText(contentX, footerTextY, r.fitText(footerText, contentWidth), r.theme.HeaderText, proj)
}
