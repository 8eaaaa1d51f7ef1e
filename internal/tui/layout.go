package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and
// height lines tall. This keeps lipgloss.JoinHorizontal panes stable.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")

	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i := range lines {
		ln := lines[i]
		w := xansi.StringWidth(ln)
		if w > width {
			if width <= 0 {
				ln = ""
			} else if width == 1 {
				ln = xansi.Cut(ln, 0, 1)
			} else {
				ln = xansi.Cut(ln, 0, width-1) + "…"
			}
			w = xansi.StringWidth(ln)
		}
		if w < width {
			ln = ln + strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}

	return strings.Join(lines, "\n")
}

func truncateToWidth(s string, w int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= w {
		return s
	}
	if w <= 1 {
		return "…"
	}
	return xansi.Cut(s, 0, w-1) + "…"
}

// wrapPlainText word-wraps s to maxW columns, hard-cutting words wider than
// the pane. Returns at least one line.
func wrapPlainText(s string, maxW int) []string {
	if maxW <= 0 {
		return []string{""}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{""}
	}

	words := strings.Fields(s)
	lines := make([]string, 0, 4)
	cur := ""
	curW := 0

	for _, w := range words {
		wordW := xansi.StringWidth(w)
		if cur == "" {
			for wordW > maxW {
				lines = append(lines, xansi.Cut(w, 0, maxW))
				w = xansi.Cut(w, maxW, wordW)
				wordW = xansi.StringWidth(w)
			}
			cur = w
			curW = wordW
			continue
		}
		if curW+1+wordW <= maxW {
			cur = cur + " " + w
			curW = curW + 1 + wordW
			continue
		}
		lines = append(lines, cur)
		cur = ""
		curW = 0
		for wordW > maxW {
			lines = append(lines, xansi.Cut(w, 0, maxW))
			w = xansi.Cut(w, maxW, wordW)
			wordW = xansi.StringWidth(w)
		}
		cur = w
		curW = wordW
	}

	if cur != "" || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}
