package export

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

const (
	fontName = "Times New Roman"
	fontSize = 12
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)
)

// WriteMinutesDocx renders the minutes markdown followed by an action item list.
func (e *implExporter) WriteMinutesDocx(title, markdown string, items []models.ActionItem) (string, error) {
	f, err := e.create(PrefixMinutes, "docx")
	if err != nil {
		return "", err
	}
	p := f.Name()
	f.Close()

	doc, err := godocx.NewDocument()
	if err != nil {
		os.Remove(p)
		return "", fmt.Errorf("create docx: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	addMarkdown(doc, markdown)

	if len(items) > 0 {
		addStyledRun(doc.AddParagraph(""), "Action Items", true, 14)
		for _, it := range items {
			addRichText(doc.AddParagraph(""), fmt.Sprintf("%d. %s", it.ID, actionLine(it)))
		}
	}

	if err := doc.SaveTo(p); err != nil {
		os.Remove(p)
		return "", fmt.Errorf("save docx: %w", err)
	}
	return p, nil
}

// listIndent is made of non-breaking spaces so Word keeps it.
const listIndent = "\u00a0\u00a0\u00a0\u00a0"

// block is one rendered markdown line.
type block struct {
	text    string
	heading bool
	size    uint64
}

// parseMarkdownLine maps a markdown line to a paragraph. Bullets and numbered
// items become indented list lines. ok is false for blank lines and rules.
func parseMarkdownLine(line string) (block, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed == "---" {
		return block{}, false
	}

	if m := reHeading.FindStringSubmatch(trimmed); m != nil {
		return block{text: m[2], heading: true, size: headingSize(len(m[1]))}, true
	}
	if m := reBullet.FindStringSubmatch(trimmed); m != nil {
		return block{text: listIndent + "• " + m[1], size: fontSize}, true
	}
	if m := reNumbered.FindStringSubmatch(trimmed); m != nil {
		return block{text: listIndent + m[1] + ". " + m[2], size: fontSize}, true
	}
	return block{text: trimmed, size: fontSize}, true
}

func addMarkdown(doc *docx.RootDoc, markdown string) {
	for _, line := range strings.Split(markdown, "\n") {
		b, ok := parseMarkdownLine(line)
		if !ok {
			continue
		}
		if b.heading {
			addStyledRun(doc.AddParagraph(""), b.text, true, b.size)
			continue
		}
		addRichText(doc.AddParagraph(""), b.text)
	}
}

func actionLine(it models.ActionItem) string {
	var meta []string
	if it.Owner != nil {
		meta = append(meta, "**Owner:** "+*it.Owner)
	}
	if it.Deadline != nil {
		meta = append(meta, "**Due:** "+*it.Deadline)
	}
	if len(meta) == 0 {
		return it.Action
	}
	return it.Action + " (" + strings.Join(meta, ", ") + ")"
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	case 3:
		return 13
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(cleanInline(text)).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText splits **bold** spans into separate runs.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	return strings.ReplaceAll(s, "`", "")
}
