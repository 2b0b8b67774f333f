package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"
)

const copyButton = `<button class="copy-code-button" type="button" aria-label="Copy code to clipboard">Copy</button>`

// PostProcess runs the final pass over an assembled HTML fragment:
// every <pre><code class="language-X"> block is syntax highlighted and
// gains a copy-to-clipboard control. The pass is idempotent, blocks
// that already carry a copy button are left alone.
func (m *Manager) PostProcess(htmlContent string) string {
	const openMarker = `<pre><code class="language-`
	const closeTag = `</code></pre>`

	var result strings.Builder
	remaining := htmlContent

	for {
		idx := strings.Index(remaining, openMarker)
		if idx == -1 {
			result.WriteString(remaining)
			break
		}
		closeIdx := strings.Index(remaining[idx:], closeTag)
		if closeIdx == -1 {
			result.WriteString(remaining)
			break
		}
		closeIdx += idx

		block := remaining[idx : closeIdx+len(closeTag)]
		result.WriteString(remaining[:idx])
		result.WriteString(m.highlightBlock(block))
		remaining = remaining[closeIdx+len(closeTag):]
	}

	return result.String()
}

// highlightBlock rewrites one <pre><code class="language-X"> block into
// its highlighted form with a copy button. On any parse failure the
// original block is returned with just the button injected.
func (m *Manager) highlightBlock(block string) string {
	lang, code, ok := splitCodeBlock(block)
	if !ok {
		return injectCopyButton(block)
	}

	fence := fmt.Sprintf("```%s\n%s\n```\n", lang, code)
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(fence), &buf); err != nil {
		return injectCopyButton(block)
	}
	return injectCopyButton(strings.TrimSpace(buf.String()))
}

// splitCodeBlock extracts the language tag and the unescaped source
// text from a block produced by CodeFactory.
func splitCodeBlock(block string) (lang, code string, ok bool) {
	const openMarker = `<pre><code class="language-`
	const closeTag = `</code></pre>`

	rest := strings.TrimPrefix(block, openMarker)
	if rest == block {
		return "", "", false
	}
	quote := strings.Index(rest, `">`)
	if quote == -1 {
		return "", "", false
	}
	lang = rest[:quote]
	code = strings.TrimSuffix(rest[quote+2:], closeTag)
	if lang == "" || strings.ContainsAny(lang, "<> \n") {
		return "", "", false
	}
	return lang, html.UnescapeString(code), true
}

// injectCopyButton places the copy control right after the opening
// <pre> tag unless the block already has one.
func injectCopyButton(block string) string {
	if strings.Contains(block, `class="copy-code-button"`) {
		return block
	}
	preEnd := strings.Index(block, ">")
	if preEnd == -1 || !strings.HasPrefix(block, "<pre") {
		return block
	}
	return block[:preEnd+1] + copyButton + block[preEnd+1:]
}
