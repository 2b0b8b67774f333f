package render

import (
	"errors"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"go.uber.org/zap"

	"showfolio/internal/content"
)

var errSubSectionNeedsRenderer = errors.New("subsection factory requires a renderer callback")

// Manager owns the ordered factory list and dispatches content nodes to
// the first factory that claims the node's type. Unknown or missing
// types are logged once per node and skipped so one malformed node
// never aborts a page render.
type Manager struct {
	factories []Factory
	logger    *zap.Logger
	md        goldmark.Markdown
}

// NewManager builds a manager with the default factory set registered
// in a stable order.
func NewManager(logger *zap.Logger) *Manager {
	m := &Manager{
		logger: logger,
		md: goldmark.New(goldmark.WithExtensions(
			highlighting.NewHighlighting(highlighting.WithStyle("github")),
		)),
	}
	m.Register(
		NewParagraphFactory(),
		NewSubheadingFactory(),
		NewImageFactory(),
		NewListFactory(),
		NewCodeFactory(),
		NewFAQFactory(),
		NewSubSectionFactory(),
	)
	return m
}

// Register appends factories to the dispatch list. Earlier factories
// win when two claim the same type.
func (m *Manager) Register(factories ...Factory) {
	m.factories = append(m.factories, factories...)
}

// CreateComponent renders one content node under sectionID. It returns
// the empty string, after logging a single warning, when the node has
// no type or no registered factory claims it.
func (m *Manager) CreateComponent(item *content.Node, sectionID string, render RenderFunc) string {
	if item == nil || item.Type == "" {
		m.logger.Warn("skipping content node without a type", zap.String("section", sectionID))
		return ""
	}
	for _, f := range m.factories {
		if !f.CanCreate(item.Type) {
			continue
		}
		if sub, ok := f.(*SubSectionFactory); ok {
			out, err := sub.CreateNested(item, sectionID, render)
			if err != nil {
				m.logger.Error("rendering subsection",
					zap.String("section", sectionID),
					zap.String("subsection", item.ID),
					zap.Error(err))
				return ""
			}
			return out
		}
		return f.Create(item)
	}
	m.logger.Warn("no factory for content node type",
		zap.String("type", item.Type),
		zap.String("section", sectionID))
	return ""
}

// RenderNodes renders a node sequence under parentID. It is also the
// RenderFunc handed to subsection factories, so nesting recurses
// through the same dispatch path.
func (m *Manager) RenderNodes(nodes []content.Node, parentID string) string {
	var b strings.Builder
	for i := range nodes {
		b.WriteString(m.CreateComponent(&nodes[i], parentID, m.RenderNodes))
	}
	return b.String()
}
