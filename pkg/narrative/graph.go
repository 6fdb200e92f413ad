package narrative

import "github.com/umputun/makro/pkg/domain"

// BuildGraph links sources to their content and content to tagged entities.
// Entity nodes are shared between items by entity id.
func BuildGraph(items []domain.ContentItem, sources []domain.Source) domain.Graph {
	g := domain.Graph{Nodes: []domain.GraphNode{}, Links: []domain.GraphLink{}}

	sourceNodes := make(map[string]string, len(sources))
	for _, s := range sources {
		id := "source-" + s.ID
		sourceNodes[s.ID] = id
		g.Nodes = append(g.Nodes, domain.GraphNode{ID: id, Label: s.Name, Type: "source", Group: string(s.Type)})
	}

	entityNodes := map[string]bool{}
	for _, it := range items {
		contentID := "content-" + it.ID
		label := it.Title
		if label == "" {
			label = "Untitled"
		}
		g.Nodes = append(g.Nodes, domain.GraphNode{ID: contentID, Label: label, Type: "content", Group: string(it.ContentType)})

		if srcID, ok := sourceNodes[it.SourceID]; ok && it.SourceID != "" {
			g.Links = append(g.Links, domain.GraphLink{Source: srcID, Target: contentID, Type: "source-content"})
		}

		for _, e := range it.Entities {
			entityID := "entity-" + e.ID
			if !entityNodes[e.ID] {
				entityNodes[e.ID] = true
				g.Nodes = append(g.Nodes, domain.GraphNode{ID: entityID, Label: e.Name, Type: "entity", Group: string(e.Type)})
			}
			g.Links = append(g.Links, domain.GraphLink{Source: contentID, Target: entityID, Type: "content-entity"})
		}
	}
	return g
}
